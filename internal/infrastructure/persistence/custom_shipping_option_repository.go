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

// GormCustomShippingOptionRepository implements CustomShippingOptionRepository
// using GORM
type GormCustomShippingOptionRepository struct {
	db *gorm.DB
}

// NewGormCustomShippingOptionRepository creates a new GormCustomShippingOptionRepository
func NewGormCustomShippingOptionRepository(db *gorm.DB) *GormCustomShippingOptionRepository {
	return &GormCustomShippingOptionRepository{db: db}
}

// FindByID finds a custom shipping option by its ID
func (r *GormCustomShippingOptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*checkout.CustomShippingOption, error) {
	var model models.CustomShippingOptionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all custom shipping options matching the selector
func (r *GormCustomShippingOptionRepository) FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]checkout.CustomShippingOption, error) {
	var optionModels []models.CustomShippingOptionModel
	query := r.applyConfig(r.applySelector(r.db.WithContext(ctx).Model(&models.CustomShippingOptionModel{}), selector), config)

	if err := query.Find(&optionModels).Error; err != nil {
		return nil, err
	}

	options := make([]checkout.CustomShippingOption, len(optionModels))
	for i, model := range optionModels {
		options[i] = *model.ToDomain()
	}
	return options, nil
}

// Count counts custom shipping options matching the selector
func (r *GormCustomShippingOptionRepository) Count(ctx context.Context, selector shared.Selector) (int64, error) {
	var count int64
	query := r.applySelector(r.db.WithContext(ctx).Model(&models.CustomShippingOptionModel{}), selector)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsForCartAndOption checks if an override already exists for the
// cart / shipping option pair
func (r *GormCustomShippingOptionRepository) ExistsForCartAndOption(ctx context.Context, cartID, shippingOptionID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.CustomShippingOptionModel{}).
		Where("cart_id = ? AND shipping_option_id = ?", cartID, shippingOptionID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a custom shipping option
func (r *GormCustomShippingOptionRepository) Save(ctx context.Context, option *checkout.CustomShippingOption) error {
	model := models.CustomShippingOptionModelFromDomain(option)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a custom shipping option by ID
func (r *GormCustomShippingOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomShippingOptionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteForCart deletes all custom shipping options attached to a cart.
// Deleting for a cart with no overrides is a no-op.
func (r *GormCustomShippingOptionRepository) DeleteForCart(ctx context.Context, cartID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.CustomShippingOptionModel{}, "cart_id = ?", cartID).Error
}

// applySelector translates a domain selector into query conditions
func (r *GormCustomShippingOptionRepository) applySelector(query *gorm.DB, selector shared.Selector) *gorm.DB {
	for key, value := range selector.Filters {
		switch key {
		case "cart_id":
			query = query.Where("cart_id = ?", value)
		case "shipping_option_id":
			query = query.Where("shipping_option_id = ?", value)
		}
	}
	return query
}

// applyConfig applies pagination and ordering to the query
func (r *GormCustomShippingOptionRepository) applyConfig(query *gorm.DB, config shared.FindConfig) *gorm.DB {
	if config.Skip > 0 {
		query = query.Offset(config.Skip)
	}
	if config.Take > 0 {
		query = query.Limit(config.Take)
	}

	orderBy := ValidateSortField(config.OrderBy, CustomShippingOptionSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(config.OrderDir))
}

// Ensure GormCustomShippingOptionRepository implements CustomShippingOptionRepository
var _ checkout.CustomShippingOptionRepository = (*GormCustomShippingOptionRepository)(nil)
