// internal/domain/inquiry/service_test.go
package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

func TestLinesFromCart(t *testing.T) {
	discount := int64(2499)
	cartLines := []cart.Line{
		{
			Product: cart.ProductSnapshot{
				ID:            1,
				Slug:          "classic-cotton-t-shirt",
				Name:          "Classic Cotton T-Shirt",
				Price:         2999,
				DiscountPrice: &discount,
			},
			Size:     "M",
			Color:    "Black",
			Quantity: 2,
		},
		{
			Product: cart.ProductSnapshot{
				ID:    2,
				Slug:  "premium-polo",
				Name:  "Premium Polo",
				Price: 3499,
			},
			Size:     "L",
			Color:    "Navy",
			Quantity: 1,
		},
	}

	lines, total := linesFromCart(cartLines)

	require.Len(t, lines, 2)

	// The discounted unit price is what gets frozen
	assert.Equal(t, uint(1), lines[0].ProductID)
	assert.Equal(t, "Classic Cotton T-Shirt", lines[0].ProductName)
	assert.Equal(t, int64(2499), lines[0].UnitPrice)
	assert.Equal(t, int64(4998), lines[0].Subtotal)
	assert.Equal(t, "M", lines[0].Size)
	assert.Equal(t, "Black", lines[0].Color)

	assert.Equal(t, int64(3499), lines[1].UnitPrice)
	assert.Equal(t, int64(3499), lines[1].Subtotal)

	assert.Equal(t, int64(8497), total)
}

func TestLinesFromCart_Empty(t *testing.T) {
	lines, total := linesFromCart(nil)

	assert.Empty(t, lines)
	assert.Equal(t, int64(0), total)
}
