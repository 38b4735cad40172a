// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupCatalogRoutes sets up product and category routes
func SetupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(db, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.GET("/slug/:slug", productHandler.GetProductBySlug)
	}

	rg.GET("/categories", productHandler.GetCategories)
}

// SetupCartRoutes sets up session cart routes
func SetupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg, logger)

	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:id", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// SetupInquiryRoutes sets up the order inquiry submission route
func SetupInquiryRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	inquiryHandler := handlers.NewInquiryHandler(db, redisClient, cfg, logger)

	rg.POST("/queries", inquiryHandler.SubmitInquiry)
}

// SetupVisitorRoutes sets up the visitor beacon route
func SetupVisitorRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	visitorHandler := handlers.NewVisitorHandler(db, redisClient, cfg, logger)

	rg.POST("/visits", visitorHandler.RecordVisit)
}

// SetupAdminRoutes sets up the admin API, gated by the static admin key
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	productHandler := handlers.NewProductHandler(db, cfg)
	inquiryHandler := handlers.NewInquiryHandler(db, redisClient, cfg, logger)
	visitorHandler := handlers.NewVisitorHandler(db, redisClient, cfg, logger)

	admin := rg.Group("/admin")
	admin.Use(middleware.AdminKey(cfg))
	{
		admin.POST("/products", productHandler.AdminCreateProduct)
		admin.PUT("/products/:id", productHandler.AdminUpdateProduct)
		admin.DELETE("/products/:id", productHandler.AdminDeleteProduct)

		admin.GET("/inquiries", inquiryHandler.AdminListInquiries)
		admin.GET("/inquiries/:id", inquiryHandler.AdminGetInquiry)
		admin.PUT("/inquiries/:id/status", inquiryHandler.AdminUpdateInquiryStatus)
		admin.GET("/inquiries/:id/pdf", inquiryHandler.AdminGetInquiryPDF)

		admin.GET("/visits/summary", visitorHandler.AdminGetSummary)
	}
}
