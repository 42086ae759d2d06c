package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/checkout"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormShippingOptionRepository implements ShippingOptionRepository using GORM
type GormShippingOptionRepository struct {
	db *gorm.DB
}

// NewGormShippingOptionRepository creates a new GormShippingOptionRepository
func NewGormShippingOptionRepository(db *gorm.DB) *GormShippingOptionRepository {
	return &GormShippingOptionRepository{db: db}
}

// FindByID finds a shipping option by its ID
func (r *GormShippingOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.ShippingOption, error) {
	var model models.ShippingOptionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all shipping options matching the selector
func (r *GormShippingOptionRepository) FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]checkout.ShippingOption, error) {
	query := r.db.WithContext(ctx).Model(&models.ShippingOptionModel{})

	if selector.Search != "" {
		query = query.Where("name ILIKE ?", "%"+selector.Search+"%")
	}
	for key, value := range selector.Filters {
		switch key {
		case "name":
			query = query.Where("name = ?", value)
		case "price_type":
			query = query.Where("price_type = ?", value)
		}
	}

	if config.Skip > 0 {
		query = query.Offset(config.Skip)
	}
	if config.Take > 0 {
		query = query.Limit(config.Take)
	}
	query = query.Order("created_at " + ValidateSortOrder(config.OrderDir))

	var optionModels []models.ShippingOptionModel
	if err := query.Find(&optionModels).Error; err != nil {
		return nil, err
	}

	options := make([]checkout.ShippingOption, len(optionModels))
	for i, model := range optionModels {
		options[i] = *model.ToDomain()
	}
	return options, nil
}

// Save creates or updates a shipping option
func (r *GormShippingOptionRepository) Save(ctx context.Context, option *checkout.ShippingOption) error {
	model := models.ShippingOptionModelFromDomain(option)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormShippingOptionRepository implements ShippingOptionRepository
var _ checkout.ShippingOptionRepository = (*GormShippingOptionRepository)(nil)
