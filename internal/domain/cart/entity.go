// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ProductSnapshot is the copy of a product captured when a line is added.
// Catalog changes after that point never touch lines already in the cart.
type ProductSnapshot struct {
	ID            uint   `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	DiscountPrice *int64 `json:"discount_price,omitempty"`
	Thumbnail     string `json:"thumbnail,omitempty"`
	InStock       bool   `json:"in_stock"`
}

// NewSnapshot copies the fields the cart needs from a catalog product
func NewSnapshot(p *catalog.Product) ProductSnapshot {
	snap := ProductSnapshot{
		ID:        p.ID,
		Slug:      p.Slug,
		Name:      p.Name,
		Price:     p.Price,
		Thumbnail: p.Thumbnail,
		InStock:   p.InStock,
	}
	if p.DiscountPrice != nil {
		dp := *p.DiscountPrice
		snap.DiscountPrice = &dp
	}
	return snap
}

// EffectivePrice returns the unit price a customer pays:
// the discount price when present, the original price otherwise.
func (p ProductSnapshot) EffectivePrice() int64 {
	if p.DiscountPrice != nil {
		return *p.DiscountPrice
	}
	return p.Price
}

// Line is one cart entry, identified by (product id, size, color)
type Line struct {
	Product  ProductSnapshot `json:"product"`
	Size     string          `json:"size"`
	Color    string          `json:"color"`
	Quantity int             `json:"quantity"`
}

// Matches reports whether the line carries the given identity triple
func (l Line) Matches(productID uint, size, color string) bool {
	return l.Product.ID == productID && l.Size == size && l.Color == color
}

// Subtotal returns effective unit price times quantity
func (l Line) Subtotal() int64 {
	return l.Product.EffectivePrice() * int64(l.Quantity)
}

// Totals represents derived cart totals. They are recomputed from the
// lines on every read and never stored.
type Totals struct {
	LineCount     int   `json:"line_count"`     // Number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	Total         int64 `json:"total"`          // Sum of line subtotals, in cents
}

// Cart is the view returned to consumers: the lines plus derived totals
type Cart struct {
	SessionID string `json:"session_id"`
	Lines     []Line `json:"items"`
	Totals    Totals `json:"totals"`
}
