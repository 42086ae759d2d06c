package checkout

import (
	"context"

	"github.com/storefront/backend/internal/domain/checkout"
)

// TransactionalRepositories exposes the repositories available inside a
// checkout transaction.
type TransactionalRepositories interface {
	Carts() checkout.CartRepository
	ShippingOptions() checkout.ShippingOptionRepository
	CustomShippingOptions() checkout.CustomShippingOptionRepository
}

// TransactionScope runs a unit of work atomically. The implementation
// commits when fn returns nil and rolls back when it returns an error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
