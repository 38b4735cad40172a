// internal/domain/inquiry/entity_test.go
package inquiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReference(t *testing.T) {
	inq := &Inquiry{
		ID:        42,
		CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
	}

	assert.Equal(t, "QRY-20250314-00042", inq.GenerateReference())
}

func TestGetFormattedTotal(t *testing.T) {
	inq := &Inquiry{TotalAmount: 12997}
	assert.Equal(t, 129.97, inq.GetFormattedTotal())
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []Status{StatusNew, StatusContacted, StatusConfirmed, StatusClosed, StatusCancelled} {
		assert.True(t, s.IsValid(), "status %q", s)
	}
	assert.False(t, Status("shipped").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusNew, StatusContacted, true},
		{StatusNew, StatusCancelled, true},
		{StatusContacted, StatusConfirmed, true},
		{StatusConfirmed, StatusClosed, true},
		{StatusNew, StatusNew, false},
		{StatusClosed, StatusNew, false},
		{StatusCancelled, StatusContacted, false},
		{StatusNew, Status("shipped"), false},
	}

	for _, tt := range tests {
		inq := &Inquiry{Status: tt.from}
		assert.Equal(t, tt.allowed, inq.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
