// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/inquiry"
	"github.com/your-org/storefront-backend/internal/domain/visitor"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs gorm auto migrations for all entities
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database migrations...")

	err := m.db.AutoMigrate(
		&catalog.Category{},
		&catalog.Product{},
		&inquiry.Inquiry{},
		&inquiry.Line{},
		&visitor.Visit{},
	)
	if err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	log.Println("✅ Database migrations completed")
	return nil
}

// CreateIndexes creates additional indexes not covered by struct tags
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products (category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_featured ON products (is_featured) WHERE is_featured = true",
		"CREATE INDEX IF NOT EXISTS idx_order_inquiries_status_created ON order_inquiries (status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_visits_created_at_day ON visits (created_at, visitor_id)",
	}

	for _, idx := range indexes {
		if err := m.db.Exec(idx).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData seeds categories and the starter catalog in development
func (m *Migration) SeedInitialData() error {
	if err := m.seedCategories(); err != nil {
		return err
	}
	return m.seedProducts()
}

func (m *Migration) seedCategories() error {
	var count int64
	m.db.Model(&catalog.Category{}).Count(&count)
	if count > 0 {
		return nil
	}

	categories := []catalog.Category{
		{Name: "Basics", Slug: "basics", Description: "Everyday essentials", SortOrder: 1, IsActive: true},
		{Name: "Graphic", Slug: "graphic", Description: "Printed and graphic tees", SortOrder: 2, IsActive: true},
		{Name: "Polo", Slug: "polo", Description: "Polo shirts", SortOrder: 3, IsActive: true},
		{Name: "Athletic", Slug: "athletic", Description: "Performance wear", SortOrder: 4, IsActive: true},
		{Name: "Eco", Slug: "eco", Description: "Sustainable fabrics", SortOrder: 5, IsActive: true},
		{Name: "Long Sleeve", Slug: "longsleeve", Description: "Long sleeve styles", SortOrder: 6, IsActive: true},
	}

	if err := m.db.Create(&categories).Error; err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Printf("✅ Seeded %d categories", len(categories))
	return nil
}

func (m *Migration) seedProducts() error {
	var count int64
	m.db.Model(&catalog.Product{}).Count(&count)
	if count > 0 {
		return nil
	}

	categoryID := func(slug string) uint {
		var cat catalog.Category
		if err := m.db.Where("slug = ?", slug).First(&cat).Error; err != nil {
			return 0
		}
		return cat.ID
	}

	discounted := func(cents int64) *int64 { return &cents }

	products := []catalog.Product{
		{
			Name:          "Classic Cotton T-Shirt",
			Slug:          "classic-cotton-t-shirt",
			Description:   "Premium 100% cotton t-shirt with a comfortable regular fit. Perfect for everyday wear with soft, breathable fabric that gets better with every wash.",
			Price:         2999,
			DiscountPrice: discounted(2499),
			CategoryID:    categoryID("basics"),
			Sizes:         []string{"XS", "S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Black", "White", "Navy", "Gray"},
			Images:        []string{"/placeholder.svg", "/placeholder.svg", "/placeholder.svg"},
			Thumbnail:     "/placeholder.svg",
			InStock:       true,
			IsActive:      true,
			IsFeatured:    true,
			Rating:        4.5,
			ReviewCount:   127,
		},
		{
			Name:        "Vintage Graphic Tee",
			Slug:        "vintage-graphic-tee",
			Description: "Retro-inspired graphic t-shirt with distressed print. Made from soft cotton blend for ultimate comfort and style.",
			Price:       3299,
			CategoryID:  categoryID("graphic"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White", "Heather Gray"},
			Images:      []string{"/placeholder.svg", "/placeholder.svg"},
			Thumbnail:   "/placeholder.svg",
			InStock:     true,
			IsActive:    true,
			IsFeatured:  true,
			Rating:      4.7,
			ReviewCount: 89,
		},
		{
			Name:          "Premium Polo Shirt",
			Slug:          "premium-polo-shirt",
			Description:   "Elegant polo shirt crafted from premium pique cotton. Features classic collar and button placket for a sophisticated look.",
			Price:         5599,
			DiscountPrice: discounted(4599),
			CategoryID:    categoryID("polo"),
			Sizes:         []string{"S", "M", "L", "XL", "XXL"},
			Colors:        []string{"Navy", "White", "Black", "Forest Green"},
			Images:        []string{"/placeholder.svg", "/placeholder.svg", "/placeholder.svg"},
			Thumbnail:     "/placeholder.svg",
			InStock:       true,
			IsActive:      true,
			IsFeatured:    true,
			Rating:        4.8,
			ReviewCount:   203,
		},
		{
			Name:        "Sports Performance Tee",
			Slug:        "sports-performance-tee",
			Description: "High-performance athletic t-shirt with moisture-wicking technology. Perfect for workouts and active lifestyle.",
			Price:       2899,
			CategoryID:  categoryID("athletic"),
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "Navy", "Red", "Blue"},
			Images:      []string{"/placeholder.svg", "/placeholder.svg"},
			Thumbnail:   "/placeholder.svg",
			InStock:     true,
			IsActive:    true,
			IsFeatured:  true,
			Rating:      4.6,
			ReviewCount: 156,
		},
		{
			Name:        "Organic Cotton Basic",
			Slug:        "organic-cotton-basic",
			Description: "Eco-friendly t-shirt made from 100% organic cotton. Sustainable fashion without compromising on comfort.",
			Price:       2299,
			CategoryID:  categoryID("eco"),
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Natural", "Black", "Navy"},
			Images:      []string{"/placeholder.svg", "/placeholder.svg"},
			Thumbnail:   "/placeholder.svg",
			InStock:     true,
			IsActive:    true,
			Rating:      4.4,
			ReviewCount: 98,
		},
		{
			Name:        "Long Sleeve Henley",
			Slug:        "long-sleeve-henley",
			Description: "Classic henley with long sleeves and button placket. Perfect for layering or wearing alone in cooler weather.",
			Price:       3899,
			CategoryID:  categoryID("longsleeve"),
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Gray", "Navy", "Black", "Burgundy"},
			Images:      []string{"/placeholder.svg", "/placeholder.svg", "/placeholder.svg"},
			Thumbnail:   "/placeholder.svg",
			InStock:     true,
			IsActive:    true,
			Rating:      4.3,
			ReviewCount: 74,
		},
	}

	if err := m.db.Create(&products).Error; err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Printf("✅ Seeded %d products", len(products))
	return nil
}
