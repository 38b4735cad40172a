// internal/domain/catalog/service_test.go
package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	discount := int64(2499)

	full := Product{Price: 2999}
	assert.Equal(t, int64(2999), full.EffectivePrice())
	assert.False(t, full.HasDiscount())

	onSale := Product{Price: 2999, DiscountPrice: &discount}
	assert.Equal(t, int64(2499), onSale.EffectivePrice())
	assert.True(t, onSale.HasDiscount())
}

func TestBuildOrderClause(t *testing.T) {
	s := &Service{}

	tests := []struct {
		sortBy    string
		sortOrder string
		expected  string
	}{
		{"name", "asc", "products.name ASC"},
		{"price", "desc", "COALESCE(discount_price, price) DESC"},
		{"rating", "ASC", "rating ASC"},
		{"created_at", "", "products.created_at DESC"},
		{"", "", "products.created_at DESC"},
		// Unknown fields fall back to the default instead of reaching SQL
		{"price; DROP TABLE products", "asc", "products.created_at ASC"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.buildOrderClause(tt.sortBy, tt.sortOrder))
	}
}

func TestGenerateSlug(t *testing.T) {
	s := &Service{}

	tests := []struct {
		name     string
		expected string
	}{
		{"Classic Cotton T-Shirt", "classic-cotton-t-shirt"},
		{"Vintage  Graphic   Tee", "vintage-graphic-tee"},
		{"100% Organic Shirt!", "100-organic-shirt"},
		{"---Edge Case---", "edge-case"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, s.generateSlug(tt.name))
	}
}
