package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Source backends the dashboard can load the inventory from.
const (
	SourceExcel  = "excel"
	SourceCSV    = "csv"
	SourceSheets = "sheets"
	SourceSQLite = "sqlite"
	SourceMemory = "memory"
)

type Config struct {
	// HTTP server
	Port string

	// Inventory source selection
	SourceBackend string

	// Excel source
	ExcelPath string
	SheetName string

	// CSV source
	CSVPath string

	// SQLite source
	SQLiteDBPath string

	// Google Sheets source
	GoogleSpreadsheetID string

	// Dataset cache. Zero keeps the dataset for the process lifetime;
	// the admin reload endpoint remains the way to invalidate.
	CacheTTL time.Duration
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		SourceBackend: getEnv("SOURCE_BACKEND", SourceExcel),

		ExcelPath: getEnv("EXCEL_PATH", "Araras.xlsx"),
		SheetName: getEnv("SHEET_NAME", "Página1"),

		CSVPath: getEnv("CSV_PATH", "Araras.csv"),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/araras.db"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),

		CacheTTL: getEnvDuration("CACHE_TTL", 0),
	}
}

// Validate checks the configuration and returns an error describing
// everything that is wrong with it.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.SourceBackend {
	case SourceExcel:
		if c.ExcelPath == "" {
			problems = append(problems, "EXCEL_PATH cannot be empty when using the excel source")
		}
		if c.SheetName == "" {
			problems = append(problems, "SHEET_NAME cannot be empty when using the excel source")
		}
	case SourceCSV:
		if c.CSVPath == "" {
			problems = append(problems, "CSV_PATH cannot be empty when using the csv source")
		}
	case SourceSQLite:
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty when using the sqlite source")
		}
	case SourceSheets:
		if c.GoogleSpreadsheetID == "" {
			problems = append(problems, "GOOGLE_SPREADSHEET_ID is required when using the sheets source")
		}
	case SourceMemory:
		// Nothing to check.
	default:
		problems = append(problems, fmt.Sprintf("invalid source backend '%s': must be one of [%s %s %s %s %s]",
			c.SourceBackend, SourceExcel, SourceCSV, SourceSheets, SourceSQLite, SourceMemory))
	}

	if c.CacheTTL < 0 {
		problems = append(problems, fmt.Sprintf("invalid cache TTL %v: cannot be negative", c.CacheTTL))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
