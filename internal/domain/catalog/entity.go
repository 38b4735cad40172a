// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null;size:255" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Label       string `gorm:"size:100" json:"label,omitempty"`
	// Prices in cents. Price is the original price; DiscountPrice, when set,
	// is the price the customer actually pays.
	Price         int64          `gorm:"not null" json:"price"`
	DiscountPrice *int64         `json:"discount_price,omitempty"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Sizes         []string       `gorm:"serializer:json" json:"sizes"`
	Colors        []string       `gorm:"serializer:json" json:"colors"`
	Images        []string       `gorm:"serializer:json" json:"images"`
	Thumbnail     string         `gorm:"size:500" json:"thumbnail"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	IsFeatured    bool           `gorm:"default:false" json:"is_featured"`
	Rating        float64        `gorm:"default:0" json:"rating"`
	ReviewCount   int            `gorm:"default:0" json:"review_count"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
}

// Category represents a product category
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null;size:255" json:"name"`
	Slug        string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Description string         `gorm:"size:500" json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// EffectivePrice returns the price a customer pays for one unit:
// the discount price when present, the original price otherwise.
func (p *Product) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// HasDiscount reports whether the product is currently discounted
func (p *Product) HasDiscount() bool {
	return p.DiscountPrice != nil && *p.DiscountPrice < p.Price
}
