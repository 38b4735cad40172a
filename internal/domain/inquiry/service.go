// internal/domain/inquiry/service.go
package inquiry

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"gorm.io/gorm"
)

// Notifier delivers new-inquiry notifications to staff. Delivery is
// best effort; the inquiry is already durable when it runs.
type Notifier interface {
	NotifyNewInquiry(ctx context.Context, inq *Inquiry) error
}

// Service handles order inquiry business logic
type Service struct {
	db        *gorm.DB
	cartStore *cart.Store
	notifier  Notifier
	config    *config.Config
	logger    *logrus.Logger
}

// NewService creates a new inquiry service. notifier may be nil when
// email notifications are disabled.
func NewService(db *gorm.DB, cartStore *cart.Store, notifier Notifier, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		db:        db,
		cartStore: cartStore,
		notifier:  notifier,
		config:    cfg,
		logger:    logger,
	}
}

// SubmitRequest represents the checkout inquiry form
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address"`
	Message string `json:"message"`
}

// ListRequest represents inquiry list query parameters
type ListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Status string `form:"status"`
}

// ListResponse represents a paginated inquiry listing
type ListResponse struct {
	Inquiries []Inquiry `json:"inquiries"`
	Total     int64     `json:"total"`
	Page      int       `json:"page"`
	Limit     int       `json:"limit"`
}

// Submit turns the session's cart into a durable order inquiry, clears
// the cart, and fires a staff notification.
func (s *Service) Submit(ctx context.Context, sessionID string, req *SubmitRequest) (*Inquiry, error) {
	currentCart, err := s.cartStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if len(currentCart.Lines) == 0 {
		return nil, fmt.Errorf("cannot submit an inquiry for an empty cart")
	}

	lines, total := linesFromCart(currentCart.Lines)

	inq := &Inquiry{
		CustomerName: req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Message:      req.Message,
		Status:       StatusNew,
		ItemCount:    currentCart.Totals.TotalQuantity,
		TotalAmount:  total,
		Lines:        lines,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(inq).Error; err != nil {
			return fmt.Errorf("failed to create inquiry: %w", err)
		}
		// Reference embeds the row ID, so it is set after the insert
		inq.Reference = inq.GenerateReference()
		if err := tx.Model(inq).Update("reference", inq.Reference).Error; err != nil {
			return fmt.Errorf("failed to set inquiry reference: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The inquiry is durable; clearing the cart and notifying staff are
	// best effort from here
	if _, err := s.cartStore.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("reference", inq.Reference).
			Warn("Failed to clear cart after inquiry submission")
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyNewInquiry(ctx, inq); err != nil {
			s.logger.WithError(err).WithField("reference", inq.Reference).
				Warn("Failed to send inquiry notification")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"reference":    inq.Reference,
		"item_count":   inq.ItemCount,
		"total_amount": inq.TotalAmount,
	}).Info("Order inquiry submitted")

	return inq, nil
}

// List retrieves inquiries with optional status filtering
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	var inquiries []Inquiry
	var total int64

	query := s.db.Model(&Inquiry{})

	if req.Status != "" {
		status := Status(req.Status)
		if !status.IsValid() {
			return nil, fmt.Errorf("invalid status filter: %s", req.Status)
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	offset := (req.Page - 1) * req.Limit

	err := query.Preload("Lines").
		Order("created_at DESC").
		Offset(offset).Limit(req.Limit).
		Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inquiries: %w", err)
	}

	return &ListResponse{
		Inquiries: inquiries,
		Total:     total,
		Page:      req.Page,
		Limit:     req.Limit,
	}, nil
}

// Get retrieves a single inquiry by ID
func (s *Service) Get(id uint) (*Inquiry, error) {
	var inq Inquiry
	result := s.db.Preload("Lines").Where("id = ?", id).First(&inq)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("inquiry not found")
		}
		return nil, fmt.Errorf("failed to retrieve inquiry: %w", result.Error)
	}
	return &inq, nil
}

// UpdateStatus moves an inquiry through its fulfillment states
func (s *Service) UpdateStatus(id uint, target Status) (*Inquiry, error) {
	inq, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if !inq.CanTransitionTo(target) {
		return nil, fmt.Errorf("cannot change inquiry status from %s to %s", inq.Status, target)
	}

	if err := s.db.Model(inq).Update("status", target).Error; err != nil {
		return nil, fmt.Errorf("failed to update inquiry status: %w", err)
	}

	inq.Status = target
	return inq, nil
}

// linesFromCart freezes cart lines into inquiry lines and returns the
// derived total
func linesFromCart(cartLines []cart.Line) ([]Line, int64) {
	lines := make([]Line, len(cartLines))
	var total int64

	for i, cl := range cartLines {
		subtotal := cl.Subtotal()
		lines[i] = Line{
			ProductID:   cl.Product.ID,
			ProductName: cl.Product.Name,
			ProductSlug: cl.Product.Slug,
			Size:        cl.Size,
			Color:       cl.Color,
			Quantity:    cl.Quantity,
			UnitPrice:   cl.Product.EffectivePrice(),
			Subtotal:    subtotal,
		}
		total += subtotal
	}

	return lines, total
}
