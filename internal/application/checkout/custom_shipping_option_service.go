package checkout

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/shared"
)

// CustomShippingOptionService manages cart-scoped shipping price overrides
type CustomShippingOptionService struct {
	optionRepo         checkout.CustomShippingOptionRepository
	shippingOptionRepo checkout.ShippingOptionRepository
	txScope            TransactionScope
}

// NewCustomShippingOptionService creates a new CustomShippingOptionService
func NewCustomShippingOptionService(optionRepo checkout.CustomShippingOptionRepository, shippingOptionRepo checkout.ShippingOptionRepository, txScope TransactionScope) *CustomShippingOptionService {
	return &CustomShippingOptionService{
		optionRepo:         optionRepo,
		shippingOptionRepo: shippingOptionRepo,
		txScope:            txScope,
	}
}

// Retrieve returns a custom shipping option by ID, expanding the
// relations requested in the find config.
func (s *CustomShippingOptionService) Retrieve(ctx context.Context, optionID uuid.UUID, config shared.FindConfig) (*CustomShippingOptionResponse, error) {
	option, err := s.optionRepo.FindByID(ctx, optionID)
	if err != nil {
		return nil, err
	}

	response := ToCustomShippingOptionResponse(option)
	if slices.Contains(config.Relations, RelationShippingOption) {
		shippingOption, err := s.shippingOptionRepo.FindByID(ctx, option.ShippingOptionID)
		if err != nil {
			return nil, err
		}
		resp := ToShippingOptionResponse(shippingOption)
		response.ShippingOption = &resp
	}
	return &response, nil
}

// ListAndCount returns overrides matching the filter together with the
// total match count.
func (s *CustomShippingOptionService) ListAndCount(ctx context.Context, filter ListCustomShippingOptionsFilter) ([]CustomShippingOptionResponse, int64, error) {
	selector := shared.NewSelector()
	if filter.CartID != "" {
		cartID, err := uuid.Parse(filter.CartID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid cart ID")
		}
		selector = selector.With("cart_id", cartID)
	}
	if filter.ShippingOptionID != "" {
		optionID, err := uuid.Parse(filter.ShippingOptionID)
		if err != nil {
			return nil, 0, shared.NewDomainError("INVALID_INPUT", "Invalid shipping option ID")
		}
		selector = selector.With("shipping_option_id", optionID)
	}

	config := shared.FindConfig{
		Skip:      filter.Skip,
		Take:      filter.Take,
		OrderBy:   filter.OrderBy,
		OrderDir:  filter.OrderDir,
		Relations: filter.Relations,
	}.Normalize()

	options, err := s.optionRepo.FindAll(ctx, selector, config)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.optionRepo.Count(ctx, selector)
	if err != nil {
		return nil, 0, err
	}

	responses := ToCustomShippingOptionResponses(options)
	if slices.Contains(config.Relations, RelationShippingOption) {
		if err := s.expandShippingOptions(ctx, responses, options); err != nil {
			return nil, 0, err
		}
	}
	return responses, total, nil
}

// expandShippingOptions attaches the referenced shipping option to each
// response, fetching every distinct option once.
func (s *CustomShippingOptionService) expandShippingOptions(ctx context.Context, responses []CustomShippingOptionResponse, options []checkout.CustomShippingOption) error {
	fetched := make(map[uuid.UUID]*ShippingOptionResponse)
	for i := range options {
		optionID := options[i].ShippingOptionID
		resp, ok := fetched[optionID]
		if !ok {
			shippingOption, err := s.shippingOptionRepo.FindByID(ctx, optionID)
			if err != nil {
				return err
			}
			mapped := ToShippingOptionResponse(shippingOption)
			resp = &mapped
			fetched[optionID] = resp
		}
		responses[i].ShippingOption = resp
	}
	return nil
}

// Create persists one or more price overrides in a single transaction.
// Either every override is written or none are. The referenced cart and
// shipping option must exist, the cart must still be open, and only one
// override per (cart, option) pair is allowed.
func (s *CustomShippingOptionService) Create(ctx context.Context, reqs ...CreateCustomShippingOptionRequest) ([]CustomShippingOptionResponse, error) {
	if len(reqs) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one custom shipping option is required")
	}

	options := make([]*checkout.CustomShippingOption, 0, len(reqs))
	for _, req := range reqs {
		cartID, err := uuid.Parse(req.CartID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid cart ID")
		}
		optionID, err := uuid.Parse(req.ShippingOptionID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Invalid shipping option ID")
		}

		option, err := checkout.NewCustomShippingOption(cartID, optionID, req.Price)
		if err != nil {
			return nil, err
		}
		if req.Metadata != nil {
			option.MergeMetadata(req.Metadata)
		}
		options = append(options, option)
	}

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, option := range options {
			cart, err := repos.Carts().FindByID(ctx, option.CartID)
			if err != nil {
				return err
			}
			if cart.IsCompleted() {
				return shared.NewDomainError("INVALID_STATE", "Cannot add shipping overrides to a completed cart")
			}
			if _, err := repos.ShippingOptions().FindByID(ctx, option.ShippingOptionID); err != nil {
				return err
			}

			exists, err := repos.CustomShippingOptions().ExistsForCartAndOption(ctx, option.CartID, option.ShippingOptionID)
			if err != nil {
				return err
			}
			if exists {
				return shared.NewDomainError("ALREADY_EXISTS", "Shipping option already has an override for this cart")
			}

			if err := repos.CustomShippingOptions().Save(ctx, option); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	responses := make([]CustomShippingOptionResponse, len(options))
	for i, option := range options {
		responses[i] = ToCustomShippingOptionResponse(option)
	}
	return responses, nil
}

// Update is not supported for custom shipping options. Overrides are
// replaced by deleting and re-creating them for the cart.
func (s *CustomShippingOptionService) Update(ctx context.Context, optionID uuid.UUID) (*CustomShippingOptionResponse, error) {
	return nil, shared.ErrNotSupported
}

// DeleteForCart removes every override attached to the given cart
func (s *CustomShippingOptionService) DeleteForCart(ctx context.Context, cartID uuid.UUID) error {
	return s.optionRepo.DeleteForCart(ctx, cartID)
}
