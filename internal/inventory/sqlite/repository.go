// Package sqlite serves the inventory from a local database,
// populated ahead of time by the import tool. Useful when the
// dashboard host should not parse spreadsheets at startup.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/FiliRodrigues/Araras/internal/core"
)

type Repository struct {
	db     *sql.DB
	dbPath string
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db, dbPath: dbPath}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) SourceID() string { return "sqlite:" + r.dbPath }

// Load implements inventory.Loader. Rows come back in insertion order
// so the dataset keeps the same ordering as the imported spreadsheet.
func (r *Repository) Load(ctx context.Context) (core.Dataset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT tipo, subtipo, locais, quantidade FROM cameras ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query cameras: %w", err)
	}
	defer rows.Close()

	var raw []core.RawRecord
	for rows.Next() {
		var tipo, subtipo, locais string
		var quantidade int
		if err := rows.Scan(&tipo, &subtipo, &locais, &quantidade); err != nil {
			return nil, fmt.Errorf("scan camera row: %w", err)
		}
		raw = append(raw, core.RawRecord{
			Type:     tipo,
			Subtype:  subtipo,
			Location: locais,
			Quantity: strconv.Itoa(quantidade),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate camera rows: %w", err)
	}
	if len(raw) == 0 {
		return nil, &core.NotFoundError{Source: r.SourceID(), Err: fmt.Errorf("tabela cameras vazia; execute araras-import")}
	}
	// Rows already satisfied the schema on import, but the shared
	// cleaning keeps the invariants in one place.
	return core.Clean(raw), nil
}

// Replace implements inventory.Replacer: swaps the table contents for
// ds inside one transaction.
func (r *Repository) Replace(ctx context.Context, ds core.Dataset) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cameras`); err != nil {
		return fmt.Errorf("clear cameras: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO cameras (tipo, subtipo, locais, quantidade) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range ds {
		if _, err := stmt.ExecContext(ctx, rec.Type, rec.Subtype, rec.Location, rec.Quantity); err != nil {
			return fmt.Errorf("insert camera %q: %w", rec.Location, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
