// internal/domain/inquiry/entity.go
package inquiry

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Status represents the fulfillment state of an order inquiry
type Status string

const (
	StatusNew       Status = "new"
	StatusContacted Status = "contacted"
	StatusConfirmed Status = "confirmed"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether the status is one of the known values
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusConfirmed, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

// Inquiry is an order submitted as a lead. There is no payment gateway;
// staff contact the customer and fulfill the order manually.
type Inquiry struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Reference    string         `gorm:"uniqueIndex;size:50" json:"reference"`
	CustomerName string         `gorm:"not null;size:255" json:"customer_name"`
	Email        string         `gorm:"not null;size:255;index" json:"email"`
	Phone        string         `gorm:"not null;size:50" json:"phone"`
	Address      string         `gorm:"size:500" json:"address"`
	Message      string         `gorm:"type:text" json:"message"`
	Status       Status         `gorm:"not null;default:'new';size:20;index" json:"status"`
	ItemCount    int            `gorm:"not null" json:"item_count"`
	TotalAmount  int64          `gorm:"not null" json:"total_amount"` // In cents
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Lines []Line `gorm:"foreignKey:InquiryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lines"`
}

// Line is one ordered item, frozen as it stood in the cart at submission
type Line struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	InquiryID   uint      `gorm:"not null;index" json:"inquiry_id"`
	ProductID   uint      `gorm:"not null" json:"product_id"`
	ProductName string    `gorm:"not null;size:255" json:"product_name"`
	ProductSlug string    `gorm:"size:255" json:"product_slug"`
	Size        string    `gorm:"size:50" json:"size"`
	Color       string    `gorm:"size:50" json:"color"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	UnitPrice   int64     `gorm:"not null" json:"unit_price"` // In cents
	Subtotal    int64     `gorm:"not null" json:"subtotal"`   // In cents
	CreatedAt   time.Time `json:"created_at"`
}

// TableName overrides
func (Inquiry) TableName() string { return "order_inquiries" }
func (Line) TableName() string    { return "order_inquiry_lines" }

// GenerateReference builds a human-readable reference number.
// Format: QRY-YYYYMMDD-XXXXX
func (i *Inquiry) GenerateReference() string {
	return fmt.Sprintf("QRY-%s-%05d", i.CreatedAt.Format("20060102"), i.ID)
}

// GetFormattedTotal returns the total amount as a decimal value
func (i *Inquiry) GetFormattedTotal() float64 {
	return float64(i.TotalAmount) / 100
}

// CanTransitionTo reports whether the inquiry may move to the target status
func (i *Inquiry) CanTransitionTo(target Status) bool {
	if !target.IsValid() || target == i.Status {
		return false
	}
	// Closed and cancelled are terminal
	return i.Status != StatusClosed && i.Status != StatusCancelled
}
