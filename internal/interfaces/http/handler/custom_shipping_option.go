package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	checkoutapp "github.com/storefront/backend/internal/application/checkout"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// CustomShippingOptionHandler handles cart shipping price override endpoints
type CustomShippingOptionHandler struct {
	BaseHandler
	optionService *checkoutapp.CustomShippingOptionService
}

// NewCustomShippingOptionHandler creates a new CustomShippingOptionHandler
func NewCustomShippingOptionHandler(optionService *checkoutapp.CustomShippingOptionService) *CustomShippingOptionHandler {
	return &CustomShippingOptionHandler{optionService: optionService}
}

// CreateCustomShippingOptionRequest represents one price override in a
// create request
type CreateCustomShippingOptionRequest struct {
	ShippingOptionID string          `json:"shipping_option_id" binding:"required,uuid"`
	Price            decimal.Decimal `json:"price"`
	Metadata         map[string]any  `json:"metadata"`
}

// CreateCustomShippingOptionsRequest is the batch create request body
type CreateCustomShippingOptionsRequest struct {
	Options []CreateCustomShippingOptionRequest `json:"options" binding:"required,min=1,dive"`
}

// ListCustomShippingOptionsRequest represents list query parameters
type ListCustomShippingOptionsRequest struct {
	dto.ListRequest
	ShippingOptionID string `form:"shipping_option_id" binding:"omitempty,uuid"`
	Expand           string `form:"expand"`
}

// parseExpand splits a comma-separated expand parameter into relation names
func parseExpand(expand string) []string {
	if expand == "" {
		return nil
	}
	var relations []string
	for _, r := range strings.Split(expand, ",") {
		if r = strings.TrimSpace(r); r != "" {
			relations = append(relations, r)
		}
	}
	return relations
}

// Create handles POST /carts/:id/custom-shipping-options
func (h *CustomShippingOptionHandler) Create(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req CreateCustomShippingOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	appReqs := make([]checkoutapp.CreateCustomShippingOptionRequest, len(req.Options))
	for i, opt := range req.Options {
		appReqs[i] = checkoutapp.CreateCustomShippingOptionRequest{
			CartID:           cartID.String(),
			ShippingOptionID: opt.ShippingOptionID,
			Price:            opt.Price,
			Metadata:         opt.Metadata,
		}
	}

	created, err := h.optionService.Create(c.Request.Context(), appReqs...)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, created)
}

// Get handles GET /custom-shipping-options/:id
func (h *CustomShippingOptionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid custom shipping option ID")
		return
	}

	config := shared.FindConfig{Relations: parseExpand(c.Query("expand"))}
	resp, err := h.optionService.Retrieve(c.Request.Context(), id, config)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListForCart handles GET /carts/:id/custom-shipping-options
func (h *CustomShippingOptionHandler) ListForCart(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	var req ListCustomShippingOptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	filter := checkoutapp.ListCustomShippingOptionsFilter{
		CartID:           cartID.String(),
		ShippingOptionID: req.ShippingOptionID,
		Skip:             req.Skip,
		Take:             req.Take,
		OrderBy:          req.OrderBy,
		OrderDir:         req.OrderDir,
		Relations:        parseExpand(req.Expand),
	}

	options, count, err := h.optionService.ListAndCount(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	take := filter.Take
	if take <= 0 {
		take = shared.DefaultTake
	}
	h.SuccessWithMeta(c, options, count, filter.Skip, take)
}

// Update handles POST /custom-shipping-options/:id.
// Price overrides are immutable; the endpoint always reports 501.
func (h *CustomShippingOptionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid custom shipping option ID")
		return
	}

	resp, err := h.optionService.Update(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// DeleteForCart handles DELETE /carts/:id/custom-shipping-options
func (h *CustomShippingOptionHandler) DeleteForCart(c *gin.Context) {
	cartID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid cart ID")
		return
	}

	if err := h.optionService.DeleteForCart(c.Request.Context(), cartID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
