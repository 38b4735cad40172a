// internal/interfaces/http/middleware/cors_test.go
package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"http://localhost:3000", "*.example.com"}

	assert.True(t, isOriginAllowed("http://localhost:3000", allowed))
	assert.True(t, isOriginAllowed("https://shop.example.com", allowed))
	assert.False(t, isOriginAllowed("http://localhost:5173", allowed))
	assert.False(t, isOriginAllowed("https://evil.com", allowed))

	assert.True(t, isOriginAllowed("https://anything.dev", []string{"*"}))
	assert.False(t, isOriginAllowed("https://anything.dev", nil))
}
