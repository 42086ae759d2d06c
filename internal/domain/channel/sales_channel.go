package channel

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
)

// SalesChannel represents a storefront surface (web shop, mobile app,
// marketplace listing) that products and orders can be scoped to.
type SalesChannel struct {
	shared.BaseEntity
	Name        string
	Description string
	IsDisabled  bool
	Metadata    shared.Metadata
}

// NewSalesChannel creates a new sales channel with the given name.
func NewSalesChannel(name, description string) (*SalesChannel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sales channel name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Sales channel name cannot exceed 200 characters")
	}

	return &SalesChannel{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}

// Rename changes the channel name
func (c *SalesChannel) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Sales channel name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Sales channel name cannot exceed 200 characters")
	}
	c.Name = name
	c.Touch()
	return nil
}

// SetDescription updates the channel description
func (c *SalesChannel) SetDescription(description string) {
	c.Description = description
	c.Touch()
}

// Disable marks the channel as disabled so it stops serving traffic
func (c *SalesChannel) Disable() {
	c.IsDisabled = true
	c.Touch()
}

// Enable re-enables a disabled channel
func (c *SalesChannel) Enable() {
	c.IsDisabled = false
	c.Touch()
}

// MergeMetadata merges the given update into the channel metadata.
// Nil values remove keys.
func (c *SalesChannel) MergeMetadata(update shared.Metadata) {
	c.Metadata = shared.MergeMetadata(c.Metadata, update)
	c.Touch()
}
