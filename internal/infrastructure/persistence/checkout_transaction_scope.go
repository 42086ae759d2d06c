package persistence

import (
	"context"

	appcheckout "github.com/storefront/backend/internal/application/checkout"
	"github.com/storefront/backend/internal/domain/checkout"
	"gorm.io/gorm"
)

// GormCheckoutTransactionScope implements the checkout TransactionScope
// on top of a gorm transaction.
type GormCheckoutTransactionScope struct {
	db *gorm.DB
}

// NewGormCheckoutTransactionScope creates a new GormCheckoutTransactionScope
func NewGormCheckoutTransactionScope(db *gorm.DB) *GormCheckoutTransactionScope {
	return &GormCheckoutTransactionScope{db: db}
}

// Execute runs fn inside a database transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
func (s *GormCheckoutTransactionScope) Execute(ctx context.Context, fn func(repos appcheckout.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&checkoutTransactionalRepositories{tx: tx})
	})
}

// checkoutTransactionalRepositories binds repositories to the transaction
type checkoutTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *checkoutTransactionalRepositories) Carts() checkout.CartRepository {
	return NewGormCartRepository(r.tx)
}

func (r *checkoutTransactionalRepositories) ShippingOptions() checkout.ShippingOptionRepository {
	return NewGormShippingOptionRepository(r.tx)
}

func (r *checkoutTransactionalRepositories) CustomShippingOptions() checkout.CustomShippingOptionRepository {
	return NewGormCustomShippingOptionRepository(r.tx)
}

var _ appcheckout.TransactionScope = (*GormCheckoutTransactionScope)(nil)
