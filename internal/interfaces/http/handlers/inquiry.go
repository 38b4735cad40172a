// internal/interfaces/http/handlers/inquiry.go
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/inquiry"
	"github.com/your-org/storefront-backend/internal/pkg/email"
	"github.com/your-org/storefront-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// InquiryHandler handles order inquiry endpoints
type InquiryHandler struct {
	inquiryService *inquiry.Service
	pdfService     *pdf.Service
	config         *config.Config
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) *InquiryHandler {
	storage := cart.NewRedisStorage(redisClient, cfg.Cart.SessionTTL)
	cartStore := cart.NewStore(storage, logger)

	var notifier inquiry.Notifier
	if cfg.Email.Enabled {
		notifier = email.NewService(cfg)
	}

	return &InquiryHandler{
		inquiryService: inquiry.NewService(db, cartStore, notifier, cfg, logger),
		pdfService:     pdf.NewService(cfg),
		config:         cfg,
	}
}

// SubmitInquiry handles POST /queries
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	sessionID, err := c.Cookie(h.config.Cart.SessionCookie)
	if err != nil || sessionID == "" {
		// A brand new session has nothing in its cart yet, but the flow
		// is the same either way
		sessionID = uuid.New().String()
	}

	var req inquiry.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	inq, err := h.inquiryService.Submit(c.Request.Context(), sessionID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Query submitted successfully! We will contact you shortly to confirm your order.",
		"data":    inq,
	})
}

// AdminListInquiries handles GET /admin/inquiries
func (h *InquiryHandler) AdminListInquiries(c *gin.Context) {
	var req inquiry.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.inquiryService.List(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiries retrieved successfully",
		"data":    response,
	})
}

// AdminGetInquiry handles GET /admin/inquiries/:id
func (h *InquiryHandler) AdminGetInquiry(c *gin.Context) {
	id, ok := h.parseInquiryID(c)
	if !ok {
		return
	}

	inq, err := h.inquiryService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Inquiry not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry retrieved successfully",
		"data":    inq,
	})
}

// AdminUpdateInquiryStatus handles PUT /admin/inquiries/:id/status
func (h *InquiryHandler) AdminUpdateInquiryStatus(c *gin.Context) {
	id, ok := h.parseInquiryID(c)
	if !ok {
		return
	}

	var req struct {
		Status inquiry.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	inq, err := h.inquiryService.UpdateStatus(id, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inquiry status updated successfully",
		"data":    inq,
	})
}

// AdminGetInquiryPDF handles GET /admin/inquiries/:id/pdf
func (h *InquiryHandler) AdminGetInquiryPDF(c *gin.Context) {
	id, ok := h.parseInquiryID(c)
	if !ok {
		return
	}

	inq, err := h.inquiryService.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Inquiry not found",
		})
		return
	}

	sheet, err := h.pdfService.GenerateOrderSheet(inq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate order sheet",
		})
		return
	}

	filename := fmt.Sprintf("order-sheet-%s.pdf", inq.Reference)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", sheet.Bytes())
}

func (h *InquiryHandler) parseInquiryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid inquiry ID",
		})
		return 0, false
	}
	return uint(id), true
}
