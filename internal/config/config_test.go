package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Port:          "8080",
		SourceBackend: SourceExcel,
		ExcelPath:     "Araras.xlsx",
		SheetName:     "Página1",
	}
}

func TestValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"bad port", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "invalid port"},
		{"unknown backend", func(c *Config) { c.SourceBackend = "oracle" }, "invalid source backend"},
		{"excel without path", func(c *Config) { c.ExcelPath = "" }, "EXCEL_PATH"},
		{"excel without sheet", func(c *Config) { c.SheetName = "" }, "SHEET_NAME"},
		{"csv without path", func(c *Config) { c.SourceBackend = SourceCSV; c.CSVPath = "" }, "CSV_PATH"},
		{"sheets without id", func(c *Config) { c.SourceBackend = SourceSheets }, "GOOGLE_SPREADSHEET_ID"},
		{"sqlite without path", func(c *Config) { c.SourceBackend = SourceSQLite; c.SQLiteDBPath = "" }, "SQLITE_DB_PATH"},
		{"negative ttl", func(c *Config) { c.CacheTTL = -time.Second }, "cache TTL"},
	}
	for _, tc := range cases {
		c := validConfig()
		tc.mutate(c)
		err := c.Validate()
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	c := Load()
	if c.SourceBackend != SourceExcel {
		t.Fatalf("default backend = %s, want excel", c.SourceBackend)
	}
	if c.SheetName != "Página1" {
		t.Fatalf("default sheet = %s", c.SheetName)
	}
	if c.CacheTTL != 0 {
		t.Fatalf("default cache TTL = %v, want 0", c.CacheTTL)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
