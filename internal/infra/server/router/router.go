// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/openmonetis/backend/internal/integration/entrypoint/controller"
	"github.com/openmonetis/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	entryController        *controller.EntryController
	anticipationController *controller.AnticipationController
	rateLimiter            *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	entryController *controller.EntryController,
	anticipationController *controller.AnticipationController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		entryController:        entryController,
		anticipationController: anticipationController,
		rateLimiter:            rateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Ledger entry and series routes (require authentication)
		if r.entryController != nil && r.authMiddleware != nil {
			entries := v1.Group("/entries")
			entries.Use(r.authMiddleware.Authenticate())
			if r.rateLimiter != nil {
				entries.Use(r.rateLimiter.Middleware())
			}
			{
				entries.GET("", r.entryController.List)
				entries.POST("", r.entryController.Create)
				entries.GET("/:id", r.entryController.Get)
				entries.PATCH("/:id", r.entryController.Update)
				entries.DELETE("/:id", r.entryController.Delete)
				entries.POST("/:id/resolve-scope", r.entryController.ResolveScope)
				entries.POST("/:id/bulk-edit", r.entryController.BulkEdit)
				entries.POST("/:id/bulk-delete", r.entryController.BulkDelete)
			}
		}

		// Anticipation routes (require authentication)
		if r.anticipationController != nil && r.authMiddleware != nil {
			anticipations := v1.Group("/anticipations")
			anticipations.Use(r.authMiddleware.Authenticate())
			{
				anticipations.POST("", r.anticipationController.Create)
				anticipations.DELETE("/:id", r.anticipationController.Cancel)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
