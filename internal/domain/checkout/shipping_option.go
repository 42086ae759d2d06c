package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
)

// ShippingOptionPriceType determines how a shipping option is priced
type ShippingOptionPriceType string

const (
	// PriceTypeFlatRate means the option has a fixed amount
	PriceTypeFlatRate ShippingOptionPriceType = "flat_rate"
	// PriceTypeCalculated means the amount is computed at checkout time
	PriceTypeCalculated ShippingOptionPriceType = "calculated"
)

// IsValid reports whether the price type is a known value
func (t ShippingOptionPriceType) IsValid() bool {
	return t == PriceTypeFlatRate || t == PriceTypeCalculated
}

// ShippingOption is a fulfillment method offered at checkout, with its
// regular (non-overridden) price.
type ShippingOption struct {
	shared.BaseEntity
	Name      string
	PriceType ShippingOptionPriceType
	Amount    decimal.Decimal
	IsReturn  bool
	Metadata  shared.Metadata
}

// NewShippingOption creates a new shipping option
func NewShippingOption(name string, priceType ShippingOptionPriceType, amount decimal.Decimal) (*ShippingOption, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping option name cannot be empty")
	}
	if !priceType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping option price type must be flat_rate or calculated")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Shipping option amount cannot be negative")
	}

	return &ShippingOption{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		PriceType:  priceType,
		Amount:     amount,
	}, nil
}
