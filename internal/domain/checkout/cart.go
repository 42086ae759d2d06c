package checkout

import (
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// Cart is a customer's in-progress checkout session. Only the fields the
// shipping flow needs are modelled here.
type Cart struct {
	shared.BaseEntity
	Email       string
	CompletedAt *time.Time
	Metadata    shared.Metadata
}

// NewCart creates a new empty cart
func NewCart(email string) *Cart {
	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		Email:      email,
	}
}

// IsCompleted reports whether the cart has been turned into an order
func (c *Cart) IsCompleted() bool {
	return c.CompletedAt != nil
}

// Complete marks the cart as completed
func (c *Cart) Complete() {
	now := time.Now()
	c.CompletedAt = &now
	c.Touch()
}
