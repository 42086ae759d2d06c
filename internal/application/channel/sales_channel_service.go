package channel

import (
	"context"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/channel"
	"github.com/storefront/backend/internal/domain/shared"
)

// SalesChannelService handles sales channel business operations
type SalesChannelService struct {
	channelRepo channel.SalesChannelRepository
	txScope     TransactionScope
}

// NewSalesChannelService creates a new SalesChannelService
func NewSalesChannelService(channelRepo channel.SalesChannelRepository, txScope TransactionScope) *SalesChannelService {
	return &SalesChannelService{
		channelRepo: channelRepo,
		txScope:     txScope,
	}
}

// Retrieve returns a sales channel by ID. Sales channels carry no
// expandable relations, so the find config only shapes ordering.
func (s *SalesChannelService) Retrieve(ctx context.Context, channelID uuid.UUID, config shared.FindConfig) (*SalesChannelResponse, error) {
	ch, err := s.channelRepo.FindByID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	response := ToSalesChannelResponse(ch)
	return &response, nil
}

// RetrieveByName returns a sales channel by its unique name
func (s *SalesChannelService) RetrieveByName(ctx context.Context, name string) (*SalesChannelResponse, error) {
	ch, err := s.channelRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	response := ToSalesChannelResponse(ch)
	return &response, nil
}

// ListAndCount returns sales channels matching the filter together with
// the total match count.
func (s *SalesChannelService) ListAndCount(ctx context.Context, filter ListSalesChannelsFilter) ([]SalesChannelResponse, int64, error) {
	selector := shared.NewSelector()
	selector.Search = filter.Search
	if filter.Name != "" {
		selector = selector.With("name", filter.Name)
	}
	if filter.IsDisabled != nil {
		selector = selector.With("is_disabled", *filter.IsDisabled)
	}

	config := shared.FindConfig{
		Skip:     filter.Skip,
		Take:     filter.Take,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
	}.Normalize()

	channels, err := s.channelRepo.FindAll(ctx, selector, config)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.channelRepo.Count(ctx, selector)
	if err != nil {
		return nil, 0, err
	}

	return ToSalesChannelResponses(channels), total, nil
}

// Create persists a new sales channel. The uniqueness check and the
// insert run in one transaction.
func (s *SalesChannelService) Create(ctx context.Context, req CreateSalesChannelRequest) (*SalesChannelResponse, error) {
	ch, err := channel.NewSalesChannel(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if req.IsDisabled {
		ch.Disable()
	}
	if req.Metadata != nil {
		ch.MergeMetadata(req.Metadata)
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		exists, err := repos.SalesChannels().ExistsByName(ctx, ch.Name)
		if err != nil {
			return err
		}
		if exists {
			return shared.NewDomainError("ALREADY_EXISTS", "Sales channel with this name already exists")
		}
		return repos.SalesChannels().Save(ctx, ch)
	})
	if err != nil {
		return nil, err
	}

	response := ToSalesChannelResponse(ch)
	return &response, nil
}

// Update applies a partial update to a sales channel. Metadata is merged
// key-wise; a nil metadata value removes the key.
func (s *SalesChannelService) Update(ctx context.Context, channelID uuid.UUID, req UpdateSalesChannelRequest) (*SalesChannelResponse, error) {
	var updated *channel.SalesChannel

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		ch, err := repos.SalesChannels().FindByID(ctx, channelID)
		if err != nil {
			return err
		}

		if req.Name != nil && *req.Name != ch.Name {
			exists, err := repos.SalesChannels().ExistsByName(ctx, *req.Name)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewDomainError("ALREADY_EXISTS", "Sales channel with this name already exists")
			}
			if err := ch.Rename(*req.Name); err != nil {
				return err
			}
		}
		if req.Description != nil {
			ch.SetDescription(*req.Description)
		}
		if req.IsDisabled != nil {
			if *req.IsDisabled {
				ch.Disable()
			} else {
				ch.Enable()
			}
		}
		if req.Metadata != nil {
			ch.MergeMetadata(req.Metadata)
		}

		if err := repos.SalesChannels().Save(ctx, ch); err != nil {
			return err
		}
		updated = ch
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := ToSalesChannelResponse(updated)
	return &response, nil
}

// Delete removes a sales channel by ID
func (s *SalesChannelService) Delete(ctx context.Context, channelID uuid.UUID) error {
	return s.channelRepo.Delete(ctx, channelID)
}
