package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/shared"
)

// =============================================================================
// Mocks
// =============================================================================

// MockCustomShippingOptionRepository is a mock CustomShippingOptionRepository
type MockCustomShippingOptionRepository struct {
	mock.Mock
}

func (m *MockCustomShippingOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.CustomShippingOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.CustomShippingOption), args.Error(1)
}

func (m *MockCustomShippingOptionRepository) FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]checkout.CustomShippingOption, error) {
	args := m.Called(ctx, selector, config)
	return args.Get(0).([]checkout.CustomShippingOption), args.Error(1)
}

func (m *MockCustomShippingOptionRepository) Count(ctx context.Context, selector shared.Selector) (int64, error) {
	args := m.Called(ctx, selector)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomShippingOptionRepository) ExistsForCartAndOption(ctx context.Context, cartID, shippingOptionID uuid.UUID) (bool, error) {
	args := m.Called(ctx, cartID, shippingOptionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCustomShippingOptionRepository) Save(ctx context.Context, option *checkout.CustomShippingOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

func (m *MockCustomShippingOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomShippingOptionRepository) DeleteForCart(ctx context.Context, cartID uuid.UUID) error {
	args := m.Called(ctx, cartID)
	return args.Error(0)
}

// MockCartRepository is a mock CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.Cart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, cart *checkout.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

// MockShippingOptionRepository is a mock ShippingOptionRepository
type MockShippingOptionRepository struct {
	mock.Mock
}

func (m *MockShippingOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.ShippingOption, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.ShippingOption), args.Error(1)
}

func (m *MockShippingOptionRepository) FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]checkout.ShippingOption, error) {
	args := m.Called(ctx, selector, config)
	return args.Get(0).([]checkout.ShippingOption), args.Error(1)
}

func (m *MockShippingOptionRepository) Save(ctx context.Context, option *checkout.ShippingOption) error {
	args := m.Called(ctx, option)
	return args.Error(0)
}

// stubTransactionScope runs the unit of work directly against the mocks
type stubTransactionScope struct {
	carts           checkout.CartRepository
	shippingOptions checkout.ShippingOptionRepository
	customOptions   checkout.CustomShippingOptionRepository
}

func (s *stubTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *stubTransactionScope) Carts() checkout.CartRepository { return s.carts }

func (s *stubTransactionScope) ShippingOptions() checkout.ShippingOptionRepository {
	return s.shippingOptions
}

func (s *stubTransactionScope) CustomShippingOptions() checkout.CustomShippingOptionRepository {
	return s.customOptions
}

type serviceMocks struct {
	options *MockCustomShippingOptionRepository
	carts   *MockCartRepository
	opts    *MockShippingOptionRepository
}

func newTestService() (*CustomShippingOptionService, serviceMocks) {
	mocks := serviceMocks{
		options: new(MockCustomShippingOptionRepository),
		carts:   new(MockCartRepository),
		opts:    new(MockShippingOptionRepository),
	}
	scope := &stubTransactionScope{
		carts:           mocks.carts,
		shippingOptions: mocks.opts,
		customOptions:   mocks.options,
	}
	return NewCustomShippingOptionService(mocks.options, mocks.opts, scope), mocks
}

// =============================================================================
// Tests
// =============================================================================

func TestCustomShippingOptionService_Retrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing override", func(t *testing.T) {
		svc, mocks := newTestService()
		option, err := checkout.NewCustomShippingOption(uuid.New(), uuid.New(), decimal.NewFromInt(500))
		require.NoError(t, err)

		mocks.options.On("FindByID", ctx, option.ID).Return(option, nil)

		resp, err := svc.Retrieve(ctx, option.ID, shared.DefaultFindConfig())

		require.NoError(t, err)
		assert.Equal(t, option.ID.String(), resp.ID)
		assert.True(t, resp.Price.Equal(decimal.NewFromInt(500)))
	})

	t.Run("expands the shipping option when requested", func(t *testing.T) {
		svc, mocks := newTestService()
		shippingOption, err := checkout.NewShippingOption("Express", checkout.PriceTypeFlatRate, decimal.NewFromInt(1299))
		require.NoError(t, err)
		override, err := checkout.NewCustomShippingOption(uuid.New(), shippingOption.ID, decimal.NewFromInt(999))
		require.NoError(t, err)

		mocks.options.On("FindByID", ctx, override.ID).Return(override, nil)
		mocks.opts.On("FindByID", ctx, shippingOption.ID).Return(shippingOption, nil)

		resp, err := svc.Retrieve(ctx, override.ID, shared.FindConfig{Relations: []string{RelationShippingOption}})

		require.NoError(t, err)
		require.NotNil(t, resp.ShippingOption)
		assert.Equal(t, "Express", resp.ShippingOption.Name)
		assert.Equal(t, shippingOption.ID.String(), resp.ShippingOption.ID)
	})

	t.Run("leaves the relation empty by default", func(t *testing.T) {
		svc, mocks := newTestService()
		override, err := checkout.NewCustomShippingOption(uuid.New(), uuid.New(), decimal.NewFromInt(999))
		require.NoError(t, err)

		mocks.options.On("FindByID", ctx, override.ID).Return(override, nil)

		resp, err := svc.Retrieve(ctx, override.ID, shared.DefaultFindConfig())

		require.NoError(t, err)
		assert.Nil(t, resp.ShippingOption)
		mocks.opts.AssertNotCalled(t, "FindByID")
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, mocks := newTestService()
		missingID := uuid.New()

		mocks.options.On("FindByID", ctx, missingID).Return(nil, shared.ErrNotFound)

		resp, err := svc.Retrieve(ctx, missingID, shared.DefaultFindConfig())

		assert.Nil(t, resp)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestCustomShippingOptionService_ListAndCount(t *testing.T) {
	ctx := context.Background()

	t.Run("filters by cart id with default pagination", func(t *testing.T) {
		svc, mocks := newTestService()
		cartID := uuid.New()

		mocks.options.On("FindAll", ctx, mock.MatchedBy(func(sel shared.Selector) bool {
			return sel.Filters["cart_id"] == cartID
		}), mock.MatchedBy(func(cfg shared.FindConfig) bool {
			return cfg.Take == 50
		})).Return([]checkout.CustomShippingOption{}, nil)
		mocks.options.On("Count", ctx, mock.Anything).Return(int64(0), nil)

		_, total, err := svc.ListAndCount(ctx, ListCustomShippingOptionsFilter{CartID: cartID.String()})

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		mocks.options.AssertExpectations(t)
	})

	t.Run("fetches each distinct shipping option once when expanding", func(t *testing.T) {
		svc, mocks := newTestService()
		cartID := uuid.New()
		shippingOption, err := checkout.NewShippingOption("Standard", checkout.PriceTypeFlatRate, decimal.NewFromInt(799))
		require.NoError(t, err)
		first, err := checkout.NewCustomShippingOption(cartID, shippingOption.ID, decimal.NewFromInt(500))
		require.NoError(t, err)
		second, err := checkout.NewCustomShippingOption(uuid.New(), shippingOption.ID, decimal.NewFromInt(600))
		require.NoError(t, err)

		mocks.options.On("FindAll", ctx, mock.Anything, mock.Anything).
			Return([]checkout.CustomShippingOption{*first, *second}, nil)
		mocks.options.On("Count", ctx, mock.Anything).Return(int64(2), nil)
		mocks.opts.On("FindByID", ctx, shippingOption.ID).Return(shippingOption, nil).Once()

		responses, total, err := svc.ListAndCount(ctx, ListCustomShippingOptionsFilter{
			Relations: []string{RelationShippingOption},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, responses, 2)
		require.NotNil(t, responses[0].ShippingOption)
		require.NotNil(t, responses[1].ShippingOption)
		assert.Equal(t, "Standard", responses[0].ShippingOption.Name)
		mocks.opts.AssertExpectations(t)
	})

	t.Run("rejects malformed cart id", func(t *testing.T) {
		svc, _ := newTestService()

		_, _, err := svc.ListAndCount(ctx, ListCustomShippingOptionsFilter{CartID: "not-a-uuid"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestCustomShippingOptionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates overrides for an open cart", func(t *testing.T) {
		svc, mocks := newTestService()
		cart := checkout.NewCart("jane@example.com")
		option, err := checkout.NewShippingOption("Standard", checkout.PriceTypeFlatRate, decimal.NewFromInt(799))
		require.NoError(t, err)

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)
		mocks.opts.On("FindByID", ctx, option.ID).Return(option, nil)
		mocks.options.On("ExistsForCartAndOption", ctx, cart.ID, option.ID).Return(false, nil)
		mocks.options.On("Save", ctx, mock.AnythingOfType("*checkout.CustomShippingOption")).Return(nil)

		responses, err := svc.Create(ctx, CreateCustomShippingOptionRequest{
			CartID:           cart.ID.String(),
			ShippingOptionID: option.ID.String(),
			Price:            decimal.NewFromInt(500),
			Metadata:         shared.Metadata{"reason": "promo"},
		})

		require.NoError(t, err)
		require.Len(t, responses, 1)
		assert.Equal(t, cart.ID.String(), responses[0].CartID)
		assert.Equal(t, "promo", responses[0].Metadata["reason"])
		mocks.options.AssertExpectations(t)
	})

	t.Run("rejects completed cart", func(t *testing.T) {
		svc, mocks := newTestService()
		cart := checkout.NewCart("jane@example.com")
		cart.Complete()

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)

		_, err := svc.Create(ctx, CreateCustomShippingOptionRequest{
			CartID:           cart.ID.String(),
			ShippingOptionID: uuid.New().String(),
			Price:            decimal.Zero,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_STATE", domainErr.Code)
		mocks.options.AssertNotCalled(t, "Save")
	})

	t.Run("rejects duplicate override for the same pair", func(t *testing.T) {
		svc, mocks := newTestService()
		cart := checkout.NewCart("jane@example.com")
		option, err := checkout.NewShippingOption("Standard", checkout.PriceTypeFlatRate, decimal.NewFromInt(799))
		require.NoError(t, err)

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)
		mocks.opts.On("FindByID", ctx, option.ID).Return(option, nil)
		mocks.options.On("ExistsForCartAndOption", ctx, cart.ID, option.ID).Return(true, nil)

		_, err = svc.Create(ctx, CreateCustomShippingOptionRequest{
			CartID:           cart.ID.String(),
			ShippingOptionID: option.ID.String(),
			Price:            decimal.Zero,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		mocks.options.AssertNotCalled(t, "Save")
	})

	t.Run("fails whole batch when a referenced option is missing", func(t *testing.T) {
		svc, mocks := newTestService()
		cart := checkout.NewCart("jane@example.com")
		option, err := checkout.NewShippingOption("Standard", checkout.PriceTypeFlatRate, decimal.NewFromInt(799))
		require.NoError(t, err)
		missingOption := uuid.New()

		mocks.carts.On("FindByID", ctx, cart.ID).Return(cart, nil)
		mocks.opts.On("FindByID", ctx, option.ID).Return(option, nil)
		mocks.opts.On("FindByID", ctx, missingOption).Return(nil, shared.ErrNotFound)
		mocks.options.On("ExistsForCartAndOption", ctx, cart.ID, option.ID).Return(false, nil)
		mocks.options.On("Save", ctx, mock.AnythingOfType("*checkout.CustomShippingOption")).Return(nil)

		_, err = svc.Create(ctx,
			CreateCustomShippingOptionRequest{
				CartID:           cart.ID.String(),
				ShippingOptionID: option.ID.String(),
				Price:            decimal.NewFromInt(100),
			},
			CreateCustomShippingOptionRequest{
				CartID:           cart.ID.String(),
				ShippingOptionID: missingOption.String(),
				Price:            decimal.NewFromInt(200),
			},
		)

		assert.Equal(t, shared.ErrNotFound, err)
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create(ctx)

		assert.Error(t, err)
	})
}

func TestCustomShippingOptionService_Update(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Update(context.Background(), uuid.New())

	assert.Nil(t, resp)
	assert.Equal(t, shared.ErrNotSupported, err)
}

func TestCustomShippingOptionService_DeleteForCart(t *testing.T) {
	ctx := context.Background()
	svc, mocks := newTestService()
	cartID := uuid.New()

	mocks.options.On("DeleteForCart", ctx, cartID).Return(nil)

	assert.NoError(t, svc.DeleteForCart(ctx, cartID))
	mocks.options.AssertExpectations(t)
}
