// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"qualifica/internal/delivery/http/middleware"
	"qualifica/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	SellerHandler  *handler.SellerHandler
	RatingHandler  *handler.RatingHandler
	GroupHandler   *handler.GroupHandler
	AdminHandler   *handler.AdminHandler
	BannerHandler  *handler.BannerHandler
	UploadHandler  *handler.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Authorization is two-layered: the Authenticate middleware establishes the
// principal, and the use cases enforce role and group scope.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	api := e.Group("/api")

	// Public routes: seller reputation lookup, active banners, visit signal
	{
		api.GET("/vendedores", r.params.SellerHandler.Lookup)
		api.GET("/destaques", r.params.BannerHandler.ListActive)
		api.POST("/destaques/:id/acesso", r.params.BannerHandler.RegisterVisit)
	}

	// Seller directory (authenticated)
	sellers := api.Group("/vendedores", r.params.AuthMiddleware.Authenticate)
	{
		sellers.GET("/buscar", r.params.SellerHandler.Search)
		sellers.PATCH("/foto", r.params.SellerHandler.UpdatePhoto)
	}

	// Rating ledger (authenticated; group scope enforced per operation)
	ratings := api.Group("/qualificacoes", r.params.AuthMiddleware.Authenticate)
	{
		ratings.POST("", r.params.RatingHandler.Record)
		ratings.GET("", r.params.RatingHandler.List)
		ratings.DELETE("/:id", r.params.RatingHandler.Delete)
	}

	// Group registry (authenticated; writes are SUPER_ADMIN-only in the use case)
	groups := api.Group("/grupos", r.params.AuthMiddleware.Authenticate)
	{
		groups.GET("", r.params.GroupHandler.List)
		groups.POST("", r.params.GroupHandler.Create)
		groups.PATCH("/:id", r.params.GroupHandler.Update)
		groups.DELETE("/:id", r.params.GroupHandler.Delete)
	}

	// Administrator registry (SUPER_ADMIN-only in the use case)
	admins := api.Group("/administradores", r.params.AuthMiddleware.Authenticate)
	{
		admins.GET("", r.params.AdminHandler.List)
		admins.POST("", r.params.AdminHandler.Create)
		admins.PATCH("/:id", r.params.AdminHandler.Update)
		admins.DELETE("/:id", r.params.AdminHandler.Deactivate)
	}

	// Banner management (SUPER_ADMIN-only in the use case)
	banners := api.Group("/destaques", r.params.AuthMiddleware.Authenticate)
	{
		banners.GET("/gerenciar", r.params.BannerHandler.ListAll)
		banners.POST("", r.params.BannerHandler.Create)
		banners.PATCH("/:id", r.params.BannerHandler.Update)
		banners.DELETE("/:id", r.params.BannerHandler.Delete)
	}

	// Image upload (authenticated)
	api.POST("/upload", r.params.UploadHandler.Upload, r.params.AuthMiddleware.Authenticate)
}
