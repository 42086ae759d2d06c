package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/channel"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSalesChannelRepository implements SalesChannelRepository using GORM
type GormSalesChannelRepository struct {
	db *gorm.DB
}

// NewGormSalesChannelRepository creates a new GormSalesChannelRepository
func NewGormSalesChannelRepository(db *gorm.DB) *GormSalesChannelRepository {
	return &GormSalesChannelRepository{db: db}
}

// FindByID finds a sales channel by its ID
func (r *GormSalesChannelRepository) FindByID(ctx context.Context, id uuid.UUID) (*channel.SalesChannel, error) {
	var model models.SalesChannelModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByName finds a sales channel by its unique name
func (r *GormSalesChannelRepository) FindByName(ctx context.Context, name string) (*channel.SalesChannel, error) {
	var model models.SalesChannelModel
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all sales channels matching the selector
func (r *GormSalesChannelRepository) FindAll(ctx context.Context, selector shared.Selector, config shared.FindConfig) ([]channel.SalesChannel, error) {
	var channelModels []models.SalesChannelModel
	query := r.applyConfig(r.applySelector(r.db.WithContext(ctx).Model(&models.SalesChannelModel{}), selector), config)

	if err := query.Find(&channelModels).Error; err != nil {
		return nil, err
	}

	channels := make([]channel.SalesChannel, len(channelModels))
	for i, model := range channelModels {
		channels[i] = *model.ToDomain()
	}
	return channels, nil
}

// Count counts sales channels matching the selector
func (r *GormSalesChannelRepository) Count(ctx context.Context, selector shared.Selector) (int64, error) {
	var count int64
	query := r.applySelector(r.db.WithContext(ctx).Model(&models.SalesChannelModel{}), selector)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a sales channel with the given name exists
func (r *GormSalesChannelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SalesChannelModel{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a sales channel
func (r *GormSalesChannelRepository) Save(ctx context.Context, ch *channel.SalesChannel) error {
	model := models.SalesChannelModelFromDomain(ch)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a sales channel by ID
func (r *GormSalesChannelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SalesChannelModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applySelector translates a domain selector into query conditions
func (r *GormSalesChannelRepository) applySelector(query *gorm.DB, selector shared.Selector) *gorm.DB {
	if selector.Search != "" {
		searchPattern := "%" + selector.Search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range selector.Filters {
		switch key {
		case "name":
			query = query.Where("name = ?", value)
		case "is_disabled":
			query = query.Where("is_disabled = ?", value)
		}
	}

	return query
}

// applyConfig applies pagination and ordering to the query
func (r *GormSalesChannelRepository) applyConfig(query *gorm.DB, config shared.FindConfig) *gorm.DB {
	if config.Skip > 0 {
		query = query.Offset(config.Skip)
	}
	if config.Take > 0 {
		query = query.Limit(config.Take)
	}

	orderBy := ValidateSortField(config.OrderBy, SalesChannelSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(config.OrderDir))
}

// Ensure GormSalesChannelRepository implements SalesChannelRepository
var _ channel.SalesChannelRepository = (*GormSalesChannelRepository)(nil)
