// internal/domain/cart/entity_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func TestNewSnapshot_CopiesDiscountPrice(t *testing.T) {
	discount := int64(2499)
	product := &catalog.Product{
		ID:            1,
		Name:          "Classic Cotton T-Shirt",
		Slug:          "classic-cotton-t-shirt",
		Price:         2999,
		DiscountPrice: &discount,
		InStock:       true,
	}

	snap := NewSnapshot(product)
	assert.Equal(t, int64(2499), snap.EffectivePrice())

	// Mutating the catalog product must not reach the snapshot
	*product.DiscountPrice = 999
	assert.Equal(t, int64(2499), *snap.DiscountPrice)
}

func TestLineMatches(t *testing.T) {
	line := Line{Product: ProductSnapshot{ID: 1}, Size: "M", Color: "Black", Quantity: 1}

	assert.True(t, line.Matches(1, "M", "Black"))
	assert.False(t, line.Matches(1, "L", "Black"))
	assert.False(t, line.Matches(1, "M", "White"))
	assert.False(t, line.Matches(2, "M", "Black"))
}

func TestLineSubtotal(t *testing.T) {
	discount := int64(1500)

	line := Line{Product: ProductSnapshot{ID: 1, Price: 2000}, Quantity: 3}
	assert.Equal(t, int64(6000), line.Subtotal())

	line.Product.DiscountPrice = &discount
	assert.Equal(t, int64(4500), line.Subtotal())
}
