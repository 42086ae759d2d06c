package models

import (
	"github.com/storefront/backend/internal/domain/channel"
)

// SalesChannelModel is the persistence model for the SalesChannel entity.
type SalesChannelModel struct {
	BaseModel
	Name        string   `gorm:"type:varchar(200);not null;uniqueIndex:idx_sales_channel_name"`
	Description string   `gorm:"type:text"`
	IsDisabled  bool     `gorm:"not null;default:false"`
	Metadata    Metadata `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (SalesChannelModel) TableName() string {
	return "sales_channels"
}

// ToDomain converts the persistence model to a domain SalesChannel
func (m *SalesChannelModel) ToDomain() *channel.SalesChannel {
	return &channel.SalesChannel{
		BaseEntity:  m.BaseModel.ToDomain(),
		Name:        m.Name,
		Description: m.Description,
		IsDisabled:  m.IsDisabled,
		Metadata:    m.Metadata.ToDomain(),
	}
}

// SalesChannelModelFromDomain converts a domain SalesChannel to its
// persistence model
func SalesChannelModelFromDomain(c *channel.SalesChannel) *SalesChannelModel {
	m := &SalesChannelModel{
		Name:        c.Name,
		Description: c.Description,
		IsDisabled:  c.IsDisabled,
		Metadata:    Metadata(c.Metadata),
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}
