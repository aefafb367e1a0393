// Command araras-import copies the camera inventory from a file or
// Google Sheets source into the local sqlite database, so the
// dashboard can run with SOURCE_BACKEND=sqlite and no spreadsheet
// dependency at serve time.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/FiliRodrigues/Araras/internal/config"
	"github.com/FiliRodrigues/Araras/internal/inventory"
	"github.com/FiliRodrigues/Araras/internal/inventory/sqlite"
	"github.com/FiliRodrigues/Araras/internal/log"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig()).WithComponent(log.ComponentImport)

	cfg := config.Load()
	from := flag.String("from", cfg.SourceBackend, "source backend to import from (excel, csv, sheets)")
	flag.Parse()

	cfg.SourceBackend = *from
	if cfg.SourceBackend == config.SourceSQLite {
		logger.Error("Cannot import from sqlite into itself; pick excel, csv or sheets")
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := inventory.NewLoader(ctx, cfg, logger.Logger)
	if err != nil {
		logger.Error("Failed to initialize source", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}
	if src.Cleanup != nil {
		defer src.Cleanup()
	}

	ds, err := src.Loader.Load(ctx)
	if err != nil {
		logger.Error("Failed to load inventory", "error", err, "source", src.Loader.SourceID())
		os.Exit(1)
	}
	logger.Info("Inventory loaded", "source", src.Loader.SourceID(), "records", len(ds))

	repo, err := sqlite.NewRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to open sqlite database", "error", err, "db_path", cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.Replace(ctx, ds); err != nil {
		logger.Error("Failed to write inventory", "error", err)
		os.Exit(1)
	}
	logger.Info("Import complete", "db_path", cfg.SQLiteDBPath, "records", len(ds))
}
