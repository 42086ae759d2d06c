package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/handler"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	registrars []RouteRegistrar
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		registrars: make([]RouteRegistrar, 0),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds a RouteRegistrar to be registered later
func (r *Router) Register(registrar RouteRegistrar) *Router {
	r.registrars = append(r.registrars, registrar)
	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)

	for _, registrar := range r.registrars {
		registrar.RegisterRoutes(api)
	}
}

// SalesChannelRoutes registers the sales channel endpoints
type SalesChannelRoutes struct {
	handler *handler.SalesChannelHandler
}

// NewSalesChannelRoutes creates a SalesChannelRoutes registrar
func NewSalesChannelRoutes(h *handler.SalesChannelHandler) *SalesChannelRoutes {
	return &SalesChannelRoutes{handler: h}
}

// RegisterRoutes registers sales channel routes on the API group
func (r *SalesChannelRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	channels := rg.Group("/sales-channels")
	{
		channels.GET("", r.handler.List)
		channels.POST("", r.handler.Create)
		channels.GET("/:id", r.handler.Get)
		channels.POST("/:id", r.handler.Update)
		channels.DELETE("/:id", r.handler.Delete)
	}
}

// CustomShippingOptionRoutes registers the cart price override endpoints
type CustomShippingOptionRoutes struct {
	handler *handler.CustomShippingOptionHandler
}

// NewCustomShippingOptionRoutes creates a CustomShippingOptionRoutes registrar
func NewCustomShippingOptionRoutes(h *handler.CustomShippingOptionHandler) *CustomShippingOptionRoutes {
	return &CustomShippingOptionRoutes{handler: h}
}

// RegisterRoutes registers custom shipping option routes on the API group
func (r *CustomShippingOptionRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	carts := rg.Group("/carts/:id/custom-shipping-options")
	{
		carts.GET("", r.handler.ListForCart)
		carts.POST("", r.handler.Create)
		carts.DELETE("", r.handler.DeleteForCart)
	}

	options := rg.Group("/custom-shipping-options")
	{
		options.GET("/:id", r.handler.Get)
		options.POST("/:id", r.handler.Update)
	}
}

// SystemRoutes registers health and info endpoints
type SystemRoutes struct {
	handler *handler.SystemHandler
}

// NewSystemRoutes creates a SystemRoutes registrar
func NewSystemRoutes(h *handler.SystemHandler) *SystemRoutes {
	return &SystemRoutes{handler: h}
}

// RegisterRoutes registers system routes on the API group
func (r *SystemRoutes) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/system/info", r.handler.Info)
}

// RegisterHealth registers the liveness endpoint on the engine root
func (r *SystemRoutes) RegisterHealth(engine *gin.Engine) {
	engine.GET("/healthz", r.handler.Health)
}
