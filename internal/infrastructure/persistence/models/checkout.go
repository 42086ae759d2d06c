package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/checkout"
)

// CartModel is the persistence model for the Cart entity.
type CartModel struct {
	BaseModel
	Email       string     `gorm:"type:varchar(200);index"`
	CompletedAt *time.Time `gorm:"index"`
	Metadata    Metadata   `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (CartModel) TableName() string {
	return "carts"
}

// ToDomain converts the persistence model to a domain Cart
func (m *CartModel) ToDomain() *checkout.Cart {
	return &checkout.Cart{
		BaseEntity:  m.BaseModel.ToDomain(),
		Email:       m.Email,
		CompletedAt: m.CompletedAt,
		Metadata:    m.Metadata.ToDomain(),
	}
}

// CartModelFromDomain converts a domain Cart to its persistence model
func CartModelFromDomain(c *checkout.Cart) *CartModel {
	m := &CartModel{
		Email:       c.Email,
		CompletedAt: c.CompletedAt,
		Metadata:    Metadata(c.Metadata),
	}
	m.FromDomainBaseEntity(c.BaseEntity)
	return m
}

// ShippingOptionModel is the persistence model for the ShippingOption entity.
type ShippingOptionModel struct {
	BaseModel
	Name      string          `gorm:"type:varchar(200);not null"`
	PriceType string          `gorm:"type:varchar(20);not null;default:'flat_rate'"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	IsReturn  bool            `gorm:"not null;default:false"`
	Metadata  Metadata        `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (ShippingOptionModel) TableName() string {
	return "shipping_options"
}

// ToDomain converts the persistence model to a domain ShippingOption
func (m *ShippingOptionModel) ToDomain() *checkout.ShippingOption {
	return &checkout.ShippingOption{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		PriceType:  checkout.ShippingOptionPriceType(m.PriceType),
		Amount:     m.Amount,
		IsReturn:   m.IsReturn,
		Metadata:   m.Metadata.ToDomain(),
	}
}

// ShippingOptionModelFromDomain converts a domain ShippingOption to its
// persistence model
func ShippingOptionModelFromDomain(o *checkout.ShippingOption) *ShippingOptionModel {
	m := &ShippingOptionModel{
		Name:      o.Name,
		PriceType: string(o.PriceType),
		Amount:    o.Amount,
		IsReturn:  o.IsReturn,
		Metadata:  Metadata(o.Metadata),
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}

// CustomShippingOptionModel is the persistence model for the
// CustomShippingOption entity. One override per (cart, option) pair.
type CustomShippingOptionModel struct {
	BaseModel
	Price            decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CartID           uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cso_cart_option,priority:1"`
	ShippingOptionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_cso_cart_option,priority:2"`
	Metadata         Metadata        `gorm:"type:jsonb"`
}

// TableName returns the table name for GORM
func (CustomShippingOptionModel) TableName() string {
	return "custom_shipping_options"
}

// ToDomain converts the persistence model to a domain CustomShippingOption
func (m *CustomShippingOptionModel) ToDomain() *checkout.CustomShippingOption {
	return &checkout.CustomShippingOption{
		BaseEntity:       m.BaseModel.ToDomain(),
		Price:            m.Price,
		CartID:           m.CartID,
		ShippingOptionID: m.ShippingOptionID,
		Metadata:         m.Metadata.ToDomain(),
	}
}

// CustomShippingOptionModelFromDomain converts a domain override to its
// persistence model
func CustomShippingOptionModelFromDomain(o *checkout.CustomShippingOption) *CustomShippingOptionModel {
	m := &CustomShippingOptionModel{
		Price:            o.Price,
		CartID:           o.CartID,
		ShippingOptionID: o.ShippingOptionID,
		Metadata:         Metadata(o.Metadata),
	}
	m.FromDomainBaseEntity(o.BaseEntity)
	return m
}
