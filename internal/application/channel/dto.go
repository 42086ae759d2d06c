package channel

import (
	"time"

	"github.com/storefront/backend/internal/domain/channel"
	"github.com/storefront/backend/internal/domain/shared"
)

// CreateSalesChannelRequest is the input for creating a sales channel
type CreateSalesChannelRequest struct {
	Name        string
	Description string
	IsDisabled  bool
	Metadata    shared.Metadata
}

// UpdateSalesChannelRequest is the input for a partial sales channel update.
// Nil fields are left unchanged; metadata is merged key-wise.
type UpdateSalesChannelRequest struct {
	Name        *string
	Description *string
	IsDisabled  *bool
	Metadata    shared.Metadata
}

// ListSalesChannelsFilter carries list query parameters from the API layer
type ListSalesChannelsFilter struct {
	Search     string
	Name       string
	IsDisabled *bool
	Skip       int
	Take       int
	OrderBy    string
	OrderDir   string
}

// SalesChannelResponse represents a sales channel in service responses
type SalesChannelResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsDisabled  bool            `json:"is_disabled"`
	Metadata    shared.Metadata `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToSalesChannelResponse maps a domain sales channel to its response form
func ToSalesChannelResponse(c *channel.SalesChannel) SalesChannelResponse {
	return SalesChannelResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		IsDisabled:  c.IsDisabled,
		Metadata:    c.Metadata,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToSalesChannelResponses maps a slice of domain channels
func ToSalesChannelResponses(channels []channel.SalesChannel) []SalesChannelResponse {
	responses := make([]SalesChannelResponse, len(channels))
	for i := range channels {
		responses[i] = ToSalesChannelResponse(&channels[i])
	}
	return responses
}
