package checkout

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartRepository defines persistence operations for carts
type CartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
}

// ShippingOptionRepository defines persistence operations for shipping options
type ShippingOptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ShippingOption, error)
	FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]ShippingOption, error)
	Save(ctx context.Context, option *ShippingOption) error
}

// CustomShippingOptionRepository defines persistence operations for
// cart-scoped shipping price overrides
type CustomShippingOptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomShippingOption, error)
	FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]CustomShippingOption, error)
	Count(ctx context.Context, selector shared.Selector) (int64, error)
	ExistsForCartAndOption(ctx context.Context, cartID, shippingOptionID uuid.UUID) (bool, error)
	Save(ctx context.Context, option *CustomShippingOption) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteForCart(ctx context.Context, cartID uuid.UUID) error
}
