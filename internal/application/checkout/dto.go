package checkout

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/shared"
)

// CreateCustomShippingOptionRequest is the input for one price override
type CreateCustomShippingOptionRequest struct {
	CartID           string
	ShippingOptionID string
	Price            decimal.Decimal
	Metadata         shared.Metadata
}

// ListCustomShippingOptionsFilter carries list query parameters
type ListCustomShippingOptionsFilter struct {
	CartID           string
	ShippingOptionID string
	Skip             int
	Take             int
	OrderBy          string
	OrderDir         string
	Relations        []string
}

// RelationShippingOption expands the referenced shipping option on
// override responses.
const RelationShippingOption = "shipping_option"

// CustomShippingOptionResponse represents a price override in service responses
type CustomShippingOptionResponse struct {
	ID               string                  `json:"id"`
	Price            decimal.Decimal         `json:"price"`
	CartID           string                  `json:"cart_id"`
	ShippingOptionID string                  `json:"shipping_option_id"`
	ShippingOption   *ShippingOptionResponse `json:"shipping_option,omitempty"`
	Metadata         shared.Metadata         `json:"metadata,omitempty"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// ShippingOptionResponse represents a shipping option in service responses
type ShippingOptionResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	PriceType string          `json:"price_type"`
	Amount    decimal.Decimal `json:"amount"`
	IsReturn  bool            `json:"is_return"`
	Metadata  shared.Metadata `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToShippingOptionResponse maps a domain shipping option to its response form
func ToShippingOptionResponse(o *checkout.ShippingOption) ShippingOptionResponse {
	return ShippingOptionResponse{
		ID:        o.ID.String(),
		Name:      o.Name,
		PriceType: string(o.PriceType),
		Amount:    o.Amount,
		IsReturn:  o.IsReturn,
		Metadata:  o.Metadata,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// ToCustomShippingOptionResponse maps a domain override to its response form
func ToCustomShippingOptionResponse(o *checkout.CustomShippingOption) CustomShippingOptionResponse {
	return CustomShippingOptionResponse{
		ID:               o.ID.String(),
		Price:            o.Price,
		CartID:           o.CartID.String(),
		ShippingOptionID: o.ShippingOptionID.String(),
		Metadata:         o.Metadata,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

// ToCustomShippingOptionResponses maps a slice of domain overrides
func ToCustomShippingOptionResponses(options []checkout.CustomShippingOption) []CustomShippingOptionResponse {
	responses := make([]CustomShippingOptionResponse, len(options))
	for i := range options {
		responses[i] = ToCustomShippingOptionResponse(&options[i])
	}
	return responses
}
