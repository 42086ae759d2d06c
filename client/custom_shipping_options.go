package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cached reads for overrides live under both the cart-scoped and the
// standalone resource paths.
const (
	customShippingOptionsPrefix = "/api/v1/custom-shipping-options"
	cartsPrefix                 = "/api/v1/carts"
)

// CustomShippingOption represents a cart shipping price override
type CustomShippingOption struct {
	ID               string          `json:"id"`
	Price            decimal.Decimal `json:"price"`
	CartID           string          `json:"cart_id"`
	ShippingOptionID string          `json:"shipping_option_id"`
	ShippingOption   *ShippingOption `json:"shipping_option,omitempty"`
	Metadata         map[string]any  `json:"metadata,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// ShippingOption is the expanded shipping option on an override
type ShippingOption struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	PriceType string          `json:"price_type"`
	Amount    decimal.Decimal `json:"amount"`
	IsReturn  bool            `json:"is_return"`
	Metadata  map[string]any  `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateCustomShippingOptionInput is one override in a create payload
type CreateCustomShippingOptionInput struct {
	ShippingOptionID string          `json:"shipping_option_id"`
	Price            decimal.Decimal `json:"price"`
	Metadata         map[string]any  `json:"metadata,omitempty"`
}

// createCustomShippingOptionsBody is the batch create request body
type createCustomShippingOptionsBody struct {
	Options []CreateCustomShippingOptionInput `json:"options"`
}

// ListCustomShippingOptionsParams are the cart list query parameters
type ListCustomShippingOptionsParams struct {
	ShippingOptionID string
	Skip             int
	Take             int
	OrderBy          string
	OrderDir         string
	Expand           string
}

// CustomShippingOptionsService groups the shipping override API calls
type CustomShippingOptionsService struct {
	client *Client
}

// ListForCart returns the overrides attached to a cart
func (s *CustomShippingOptionsService) ListForCart(ctx context.Context, cartID string, params ListCustomShippingOptionsParams) ([]CustomShippingOption, *Meta, error) {
	query := url.Values{}
	if params.ShippingOptionID != "" {
		query.Set("shipping_option_id", params.ShippingOptionID)
	}
	if params.Skip > 0 {
		query.Set("skip", strconv.Itoa(params.Skip))
	}
	if params.Take > 0 {
		query.Set("take", strconv.Itoa(params.Take))
	}
	if params.OrderBy != "" {
		query.Set("order_by", params.OrderBy)
	}
	if params.OrderDir != "" {
		query.Set("order_dir", params.OrderDir)
	}
	if params.Expand != "" {
		query.Set("expand", params.Expand)
	}

	var options []CustomShippingOption
	meta, err := s.client.get(ctx, cartsPrefix+"/"+cartID+"/custom-shipping-options", query, &options)
	if err != nil {
		return nil, nil, err
	}
	return options, meta, nil
}

// Retrieve returns a single override by ID. Expand names related
// resources to include, e.g. "shipping_option".
func (s *CustomShippingOptionsService) Retrieve(ctx context.Context, id string, expand ...string) (*CustomShippingOption, error) {
	var query url.Values
	if len(expand) > 0 {
		query = url.Values{}
		query.Set("expand", strings.Join(expand, ","))
	}

	var option CustomShippingOption
	if _, err := s.client.get(ctx, customShippingOptionsPrefix+"/"+id, query, &option); err != nil {
		return nil, err
	}
	return &option, nil
}

// CreateForCart creates one or more overrides for a cart atomically and
// invalidates cached override reads.
func (s *CustomShippingOptionsService) CreateForCart(ctx context.Context, cartID string, inputs ...CreateCustomShippingOptionInput) ([]CustomShippingOption, error) {
	var options []CustomShippingOption
	err := s.client.mutate(ctx, http.MethodPost,
		cartsPrefix+"/"+cartID+"/custom-shipping-options",
		createCustomShippingOptionsBody{Options: inputs},
		&options,
		cartsPrefix, customShippingOptionsPrefix,
	)
	if err != nil {
		return nil, err
	}
	return options, nil
}

// DeleteForCart removes every override attached to a cart and
// invalidates cached override reads.
func (s *CustomShippingOptionsService) DeleteForCart(ctx context.Context, cartID string) error {
	return s.client.mutate(ctx, http.MethodDelete,
		cartsPrefix+"/"+cartID+"/custom-shipping-options",
		nil, nil,
		cartsPrefix, customShippingOptionsPrefix,
	)
}
