package main

import (
	"context"
	"log"
	"os"
	"time"

	"talent-pulse/internal/config"
	dbpostgres "talent-pulse/internal/database/postgres"
	"talent-pulse/internal/database/seeder"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := seeder.Default().Run(ctx, db); err != nil {
		logger.Fatalf("seeding failed: %v", err)
	}

	logger.Println("seeding complete")
}
