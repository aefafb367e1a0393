package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/FiliRodrigues/Araras/internal/cache"
	"github.com/FiliRodrigues/Araras/internal/config"
	"github.com/FiliRodrigues/Araras/internal/core"
	apphttp "github.com/FiliRodrigues/Araras/internal/http"
	"github.com/FiliRodrigues/Araras/internal/inventory"
	"github.com/FiliRodrigues/Araras/internal/log"
)

func main() {
	// Load .env for local development (ignore errors in production).
	_ = godotenv.Load()

	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := inventory.NewLoader(ctx, cfg, logger.WithComponent(log.ComponentInventory).Logger)
	if err != nil {
		logger.Error("Failed to initialize inventory source", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}
	if src.Cleanup != nil {
		defer src.Cleanup()
	}

	store := cache.New[core.Dataset](4, cfg.CacheTTL)
	if cfg.CacheTTL > 0 {
		mgr := cache.NewManager()
		mgr.Register(store)
		mgr.StartCleanup(10 * time.Minute)
		defer mgr.Stop()
	}
	loader := inventory.NewCached(src.Loader, store)

	// Load once at startup: a missing source or a bad schema is fatal
	// and must surface before the server accepts traffic.
	ds, err := loader.Load(ctx)
	if err != nil {
		var nf *core.NotFoundError
		var se *core.SchemaError
		switch {
		case errors.As(err, &nf):
			logger.Error(nf.Error())
		case errors.As(err, &se):
			logger.Error(se.Error())
		default:
			logger.Error("Failed to load inventory", "error", err)
		}
		os.Exit(1)
	}
	logger.Info("Inventory loaded", "source", loader.SourceID(), "records", len(ds))

	srv := apphttp.NewServer(":"+cfg.Port, loader)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting araras dashboard", "port", cfg.Port, "backend", cfg.SourceBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
