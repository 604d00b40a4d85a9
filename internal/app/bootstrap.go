package app

import (
	"fmt"
	"log"
	"strings"

	"talent-pulse/internal/config"
	"talent-pulse/internal/delivery/http/middleware"
	"talent-pulse/internal/delivery/http/routes"
	"talent-pulse/internal/usecase"
	"talent-pulse/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)

	var analyticsCache usecase.AnalyticsCache
	if container.Cache != nil {
		analyticsCache = container.Cache
	}

	registry := routes.NewRegistry(
		cfg,
		container.DB,
		analyticsCache,
		container.Analyzer,
		ws.NewHandler(container.Hub, logger),
	)
	registry.Register(f)

	app := &App{Fiber: f, Container: container}
	return app, container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
