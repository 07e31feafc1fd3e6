// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/openmonetis/backend/config"
	"github.com/openmonetis/backend/internal/application/usecase/anticipation"
	"github.com/openmonetis/backend/internal/application/usecase/entry"
	"github.com/openmonetis/backend/internal/application/usecase/series"
	"github.com/openmonetis/backend/internal/infra/server/router"
	"github.com/openmonetis/backend/internal/integration/adapters"
	"github.com/openmonetis/backend/internal/integration/entrypoint/controller"
	"github.com/openmonetis/backend/internal/integration/entrypoint/middleware"
	"github.com/openmonetis/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	entryRepo := persistence.NewEntryRepository(db)
	cardRepo := persistence.NewCardRepository(db)
	anticipationRepo := persistence.NewAnticipationRepository(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Create entry use cases
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	getEntryUseCase := entry.NewGetEntryUseCase(entryRepo)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo)

	// Create series use cases
	generateSeriesUseCase := series.NewGenerateSeriesUseCase(entryRepo, cardRepo)
	resolveScopeUseCase := series.NewResolveScopeUseCase(entryRepo)
	applyBulkEditUseCase := series.NewApplyBulkEditUseCase(entryRepo)
	bulkDeleteUseCase := series.NewBulkDeleteUseCase(entryRepo)

	// Create anticipation use cases
	anticipateUseCase := anticipation.NewAnticipateUseCase(entryRepo, anticipationRepo)
	cancelAnticipationUseCase := anticipation.NewCancelAnticipationUseCase(anticipationRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	entryController := controller.NewEntryController(
		listEntriesUseCase,
		getEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		generateSeriesUseCase,
		resolveScopeUseCase,
		applyBulkEditUseCase,
		bulkDeleteUseCase,
	)

	anticipationController := controller.NewAnticipationController(
		anticipateUseCase,
		cancelAnticipationUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var rateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		rateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		rateLimiter = middleware.NewRateLimiterWithConfig(120, 1*time.Minute)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(healthController, entryController, anticipationController, rateLimiter, authMiddleware)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
