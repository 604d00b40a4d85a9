package routes

import (
	"talent-pulse/internal/config"
	"talent-pulse/internal/database"
	"talent-pulse/internal/delivery/http/handler"
	v1 "talent-pulse/internal/delivery/http/routes/v1"
	"talent-pulse/internal/infrastructure/interview"
	"talent-pulse/internal/usecase"
	"talent-pulse/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg      config.Config
	db       database.DB
	cache    usecase.AnalyticsCache
	analyzer interview.Client
	wsh      *ws.Handler

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, cache usecase.AnalyticsCache, analyzer interview.Client, wsh *ws.Handler) *Registry {
	return &Registry{
		cfg:      cfg,
		db:       db,
		cache:    cache,
		analyzer: analyzer,
		wsh:      wsh,
		health:   handler.NewHealthHandler(cfg.App.AppName),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.wsh != nil {
		app.Get("/ws/assessments", r.wsh.HandleAssessmentsWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.cache, r.analyzer)
}
