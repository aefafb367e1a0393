package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/FiliRodrigues/Araras/internal/core"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "araras.db"))
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestReplaceAndLoadRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	ds := core.Dataset{
		{Type: "Fixa", Subtype: "Dome", Location: "Centro", Quantity: 3},
		{Type: "Móvel", Subtype: "Speed Dome", Location: "Praça", Quantity: 7},
	}
	if err := repo.Replace(ctx, ds); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Location != "Centro" || got[1].Quantity != 7 {
		t.Fatalf("round trip mismatch: %v", got)
	}

	// Replace drops previous contents.
	if err := repo.Replace(ctx, ds[:1]); err != nil {
		t.Fatalf("second replace: %v", err)
	}
	got, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after replace: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 record after replace, got %d", len(got))
	}
}

func TestLoadEmptyTable(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.Load(context.Background())
	var nf *core.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for empty table, got %v", err)
	}
}
