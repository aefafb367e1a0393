package inventory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/FiliRodrigues/Araras/internal/config"
	"github.com/FiliRodrigues/Araras/internal/inventory/csvfile"
	"github.com/FiliRodrigues/Araras/internal/inventory/excel"
	"github.com/FiliRodrigues/Araras/internal/inventory/google"
	"github.com/FiliRodrigues/Araras/internal/inventory/memory"
	"github.com/FiliRodrigues/Araras/internal/inventory/sqlite"
)

// Result carries a constructed loader and an optional cleanup hook
// (the sqlite source owns a database handle).
type Result struct {
	Loader  Loader
	Cleanup func() error
}

// NewLoader builds the inventory source selected by the config.
func NewLoader(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.SourceBackend {
	case config.SourceExcel:
		l := excel.New(cfg.ExcelPath, cfg.SheetName)
		logger.Info("Initialized excel source", "path", cfg.ExcelPath, "sheet", cfg.SheetName)
		return &Result{Loader: l}, nil

	case config.SourceCSV:
		l := csvfile.New(cfg.CSVPath)
		logger.Info("Initialized csv source", "path", cfg.CSVPath)
		return &Result{Loader: l}, nil

	case config.SourceSheets:
		l, err := google.NewFromEnv(ctx, cfg.GoogleSpreadsheetID, cfg.SheetName)
		if err != nil {
			return nil, fmt.Errorf("initialize sheets source: %w", err)
		}
		logger.Info("Initialized Google Sheets source", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.SheetName)
		return &Result{Loader: l}, nil

	case config.SourceSQLite:
		repo, err := sqlite.NewRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite source: %w", err)
		}
		logger.Info("Initialized sqlite source", "db_path", cfg.SQLiteDBPath)
		return &Result{Loader: repo, Cleanup: repo.Close}, nil

	case config.SourceMemory:
		logger.Info("Initialized memory source")
		return &Result{Loader: memory.NewSeeded()}, nil

	default:
		return nil, fmt.Errorf("unsupported source backend: %s", cfg.SourceBackend)
	}
}
