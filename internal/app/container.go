package app

import (
	"context"
	"log"
	"time"

	"talent-pulse/internal/config"
	"talent-pulse/internal/database"
	dbpostgres "talent-pulse/internal/database/postgres"
	"talent-pulse/internal/infrastructure/cache"
	"talent-pulse/internal/infrastructure/interview"
	"talent-pulse/internal/ws"
)

type Container struct {
	Config   config.Config
	DB       database.DB
	Cache    *cache.Redis
	Analyzer interview.Client
	Hub      *ws.Hub
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	return &Container{
		Config:   cfg,
		DB:       db,
		Cache:    cache.NewRedis(cfg.Redis, logger),
		Analyzer: interview.NewClient(cfg.Interview, logger),
		Hub:      hub,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
