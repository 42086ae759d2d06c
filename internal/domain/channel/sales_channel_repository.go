package channel

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// SalesChannelRepository defines persistence operations for sales channels
type SalesChannelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SalesChannel, error)
	FindByName(ctx context.Context, name string) (*SalesChannel, error)
	FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]SalesChannel, error)
	Count(ctx context.Context, selector shared.Selector) (int64, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, channel *SalesChannel) error
	Delete(ctx context.Context, id uuid.UUID) error
}
