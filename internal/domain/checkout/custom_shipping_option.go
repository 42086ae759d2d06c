package checkout

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomShippingOption overrides the price of a shipping option for a
// single cart. At most one override may exist per (cart, option) pair.
type CustomShippingOption struct {
	shared.BaseEntity
	Price            decimal.Decimal
	CartID           uuid.UUID
	ShippingOptionID uuid.UUID
	Metadata         shared.Metadata
}

// NewCustomShippingOption creates a price override for a shipping option
// on a cart.
func NewCustomShippingOption(cartID, shippingOptionID uuid.UUID, price decimal.Decimal) (*CustomShippingOption, error) {
	if cartID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cart ID is required")
	}
	if shippingOptionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping option ID is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Custom shipping price cannot be negative")
	}

	return &CustomShippingOption{
		BaseEntity:       shared.NewBaseEntity(),
		Price:            price,
		CartID:           cartID,
		ShippingOptionID: shippingOptionID,
	}, nil
}

// MergeMetadata merges the given update into the override metadata.
// Nil values remove keys.
func (o *CustomShippingOption) MergeMetadata(update shared.Metadata) {
	o.Metadata = shared.MergeMetadata(o.Metadata, update)
	o.Touch()
}
