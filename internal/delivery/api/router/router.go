// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"safemap/config"
	"safemap/internal/delivery/api/middleware"
	"safemap/internal/delivery/api/router/handler"
	"safemap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const rateLimiterExpiry = 3 * time.Minute

type RouterParams struct {
	fx.In

	MapHandler        *handler.MapHandler
	SubmissionHandler *handler.SubmissionHandler
	ModerationHandler *handler.ModerationHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	mapHandler        *handler.MapHandler
	submissionHandler *handler.SubmissionHandler
	moderationHandler *handler.ModerationHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mapHandler:        params.MapHandler,
		submissionHandler: params.SubmissionHandler,
		moderationHandler: params.ModerationHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public map routes
	citiesGroup := apiV1.Group("/cities")
	{
		citiesGroup.GET("", r.mapHandler.ListCities)
		citiesGroup.GET("/resolve", r.mapHandler.ResolveCityLink)
		citiesGroup.GET("/:slug/map", r.mapHandler.GetCityMap)
		citiesGroup.GET("/:slug/features", r.mapHandler.GetCityFeatures)
		citiesGroup.GET("/:slug/qr", r.mapHandler.GetCityQR)
	}
	apiV1.GET("/nearby", r.mapHandler.FindNearby)

	// Submissions accept guests; the usecase decides which kinds need an identity
	submissionsGroup := apiV1.Group("/submissions")
	submissionsGroup.Use(r.submissionRateLimiter())
	submissionsGroup.Use(r.authMiddleware.Identify)
	{
		submissionsGroup.POST("/tips", r.submissionHandler.SubmitTip)
		submissionsGroup.POST("/pins", r.submissionHandler.SubmitPin)
		submissionsGroup.POST("/zones", r.submissionHandler.SubmitZone)
	}

	// Moderation routes require a guardian or admin
	moderationGroup := apiV1.Group("/moderation")
	moderationGroup.Use(r.authMiddleware.Authenticate)
	moderationGroup.Use(r.authMiddleware.RequireAnyRole(entity.RoleGuardian, entity.RoleAdmin))
	{
		moderationGroup.GET("/:kind", r.moderationHandler.ListQueue)
		moderationGroup.GET("/:kind/:id", r.moderationHandler.GetSubmission)
		moderationGroup.POST("/:kind/:id/approve", r.moderationHandler.Approve)
		moderationGroup.POST("/:kind/:id/reject", r.moderationHandler.Reject)
	}
}

// submissionRateLimiter limits submissions per client IP.
func (r *router) submissionRateLimiter() echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(r.config.HTTP.SubmissionRateLimit),
		Burst:     r.config.HTTP.SubmissionBurst,
		ExpiresIn: rateLimiterExpiry,
	})

	return echomiddleware.RateLimiter(store)
}
