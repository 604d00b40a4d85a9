package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"talent-pulse/internal/config"
	dbpostgres "talent-pulse/internal/database/postgres"
	"talent-pulse/internal/importer"
	"talent-pulse/internal/repository"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent upsert workers")
	flag.Parse()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.Importer.CatalogURL == "" {
		logger.Fatalf("IMPORT_CATALOG_URL is not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	imp := importer.NewCatalogImporter(repository.NewPostgresJobBankRepository(db), cfg.Importer, logger)
	if err := imp.Run(ctx, *workers); err != nil {
		logger.Fatalf("import failed: %v", err)
	}
}
