// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"studio/config"
	"studio/internal/delivery/api/middleware"
	"studio/internal/delivery/api/router/handler"
	"studio/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SyncHandler       *handler.SyncHandler
	ConnectHandler    *handler.ConnectHandler
	AccountHandler    *handler.AccountHandler
	ReviewHandler     *handler.ReviewHandler
	TokenHandler      *handler.TokenHandler
	ScheduleHandler   *handler.ScheduleHandler
	AuthMiddleware    *middleware.AuthMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
	Registry          *prometheus.Registry
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	syncHandler       *handler.SyncHandler
	connectHandler    *handler.ConnectHandler
	accountHandler    *handler.AccountHandler
	reviewHandler     *handler.ReviewHandler
	tokenHandler      *handler.TokenHandler
	scheduleHandler   *handler.ScheduleHandler
	authMiddleware    *middleware.AuthMiddleware
	metricsMiddleware *middleware.MetricsMiddleware
	registry          *prometheus.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		syncHandler:       params.SyncHandler,
		connectHandler:    params.ConnectHandler,
		accountHandler:    params.AccountHandler,
		reviewHandler:     params.ReviewHandler,
		tokenHandler:      params.TokenHandler,
		scheduleHandler:   params.ScheduleHandler,
		authMiddleware:    params.AuthMiddleware,
		metricsMiddleware: params.MetricsMiddleware,
		registry:          params.Registry,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.NewHandler(r.registry)))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.metricsMiddleware.Handle)

	gmbGroup := apiV1.Group("/gmb")
	{
		// Auth is resolved inside the handler so body errors win over auth errors.
		gmbGroup.POST("/sync", r.syncHandler.Trigger)

		gmbGroup.POST("/oauth/auth-url", r.connectHandler.CreateAuthURL, r.authMiddleware.AuthenticateWithQuery)
		gmbGroup.GET("/oauth/callback", r.connectHandler.Callback)

		gmbGroup.POST("/accounts/:id/disconnect", r.accountHandler.Disconnect, r.authMiddleware.Authenticate)
		gmbGroup.POST("/reviews/:id/reply", r.reviewHandler.Reply, r.authMiddleware.Authenticate)
	}

	tokensGroup := apiV1.Group("/tokens")
	tokensGroup.Use(r.authMiddleware.Authenticate)
	{
		tokensGroup.POST("/:provider/refresh", r.tokenHandler.Refresh)
	}

	internalGroup := e.Group("/internal")
	internalGroup.Use(r.metricsMiddleware.Handle)
	internalGroup.Use(r.authMiddleware.RequireInternal)
	{
		internalGroup.POST("/sync/schedule", r.scheduleHandler.Schedule)
	}
}
