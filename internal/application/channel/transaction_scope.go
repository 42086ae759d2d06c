package channel

import (
	"context"

	"github.com/storefront/backend/internal/domain/channel"
)

// TransactionalRepositories exposes the repositories available inside a
// sales channel transaction.
type TransactionalRepositories interface {
	SalesChannels() channel.SalesChannelRepository
}

// TransactionScope runs a unit of work atomically. The implementation
// commits when fn returns nil and rolls back when it returns an error.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
