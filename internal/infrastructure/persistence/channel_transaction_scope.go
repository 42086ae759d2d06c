package persistence

import (
	"context"

	appchannel "github.com/storefront/backend/internal/application/channel"
	"github.com/storefront/backend/internal/domain/channel"
	"gorm.io/gorm"
)

// GormChannelTransactionScope implements the sales channel TransactionScope
// on top of a gorm transaction.
type GormChannelTransactionScope struct {
	db *gorm.DB
}

// NewGormChannelTransactionScope creates a new GormChannelTransactionScope
func NewGormChannelTransactionScope(db *gorm.DB) *GormChannelTransactionScope {
	return &GormChannelTransactionScope{db: db}
}

// Execute runs fn inside a database transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
func (s *GormChannelTransactionScope) Execute(ctx context.Context, fn func(repos appchannel.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&channelTransactionalRepositories{tx: tx})
	})
}

// channelTransactionalRepositories binds repositories to the transaction
type channelTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *channelTransactionalRepositories) SalesChannels() channel.SalesChannelRepository {
	return NewGormSalesChannelRepository(r.tx)
}

var _ appchannel.TransactionScope = (*GormChannelTransactionScope)(nil)
