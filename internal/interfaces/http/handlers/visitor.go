// internal/interfaces/http/handlers/visitor.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/visitor"
	"gorm.io/gorm"
)

// VisitorHandler handles visitor telemetry endpoints
type VisitorHandler struct {
	visitorService *visitor.Service
}

// NewVisitorHandler creates a new visitor handler
func NewVisitorHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *VisitorHandler {
	return &VisitorHandler{
		visitorService: visitor.NewService(db, redisClient, cfg, logger),
	}
}

// RecordVisit handles POST /visits
//
// The endpoint is a beacon: recording is best-effort and the client
// always gets 202 once the payload parses.
func (h *VisitorHandler) RecordVisit(c *gin.Context) {
	var req visitor.RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.visitorService.Record(c.Request.Context(), &req, c.Request.UserAgent(), c.ClientIP())

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Visit recorded",
	})
}

// AdminGetSummary handles GET /admin/visits/summary
func (h *VisitorHandler) AdminGetSummary(c *gin.Context) {
	summary, err := h.visitorService.GetSummary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve visit summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Visit summary retrieved successfully",
		"data":    summary,
	})
}
