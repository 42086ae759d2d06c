package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	channelapp "github.com/storefront/backend/internal/application/channel"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// SalesChannelHandler handles sales channel API endpoints
type SalesChannelHandler struct {
	BaseHandler
	channelService *channelapp.SalesChannelService
}

// NewSalesChannelHandler creates a new SalesChannelHandler
func NewSalesChannelHandler(channelService *channelapp.SalesChannelService) *SalesChannelHandler {
	return &SalesChannelHandler{channelService: channelService}
}

// CreateSalesChannelRequest represents a request to create a sales channel
type CreateSalesChannelRequest struct {
	Name        string         `json:"name" binding:"required,min=1,max=200"`
	Description string         `json:"description" binding:"max=1000"`
	IsDisabled  bool           `json:"is_disabled"`
	Metadata    map[string]any `json:"metadata"`
}

// UpdateSalesChannelRequest represents a partial sales channel update
type UpdateSalesChannelRequest struct {
	Name        *string        `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string        `json:"description" binding:"omitempty,max=1000"`
	IsDisabled  *bool          `json:"is_disabled"`
	Metadata    map[string]any `json:"metadata"`
}

// ListSalesChannelsRequest represents sales channel list query parameters
type ListSalesChannelsRequest struct {
	dto.ListRequest
	Name       string `form:"name"`
	IsDisabled *bool  `form:"is_disabled"`
}

// Create handles POST /sales-channels
func (h *SalesChannelHandler) Create(c *gin.Context) {
	var req CreateSalesChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.channelService.Create(c.Request.Context(), channelapp.CreateSalesChannelRequest{
		Name:        req.Name,
		Description: req.Description,
		IsDisabled:  req.IsDisabled,
		Metadata:    req.Metadata,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /sales-channels/:id
func (h *SalesChannelHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sales channel ID")
		return
	}

	resp, err := h.channelService.Retrieve(c.Request.Context(), id, shared.FindConfig{})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /sales-channels
func (h *SalesChannelHandler) List(c *gin.Context) {
	var req ListSalesChannelsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := channelapp.ListSalesChannelsFilter{
		Search:     req.Search,
		Name:       req.Name,
		IsDisabled: req.IsDisabled,
		Skip:       req.Skip,
		Take:       req.Take,
		OrderBy:    req.OrderBy,
		OrderDir:   req.OrderDir,
	}

	channels, count, err := h.channelService.ListAndCount(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	take := filter.Take
	if take <= 0 {
		take = shared.DefaultTake
	}
	h.SuccessWithMeta(c, channels, count, filter.Skip, take)
}

// Update handles POST /sales-channels/:id
func (h *SalesChannelHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sales channel ID")
		return
	}

	var req UpdateSalesChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.channelService.Update(c.Request.Context(), id, channelapp.UpdateSalesChannelRequest{
		Name:        req.Name,
		Description: req.Description,
		IsDisabled:  req.IsDisabled,
		Metadata:    req.Metadata,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /sales-channels/:id
func (h *SalesChannelHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sales channel ID")
		return
	}

	if err := h.channelService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
