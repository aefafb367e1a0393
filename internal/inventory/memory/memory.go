package memory

import (
	"context"
	"sync"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// Store serves a fixed set of raw rows, for tests and local
// development without a spreadsheet.
type Store struct {
	mu   sync.Mutex
	id   string
	rows []core.RawRecord
}

func New(id string, rows []core.RawRecord) *Store {
	return &Store{id: id, rows: rows}
}

// NewSeeded returns a store with a small plausible inventory.
func NewSeeded() *Store {
	return New("memory:seed", []core.RawRecord{
		{Type: "Fixa", Subtype: "Dome", Location: "Praça Barão", Quantity: "4"},
		{Type: "Fixa", Subtype: "Dome", Location: "Terminal Rodoviário", Quantity: "6"},
		{Type: "Fixa", Subtype: "Bullet", Location: "Praça Barão", Quantity: "2"},
		{Type: "Móvel", Subtype: "Speed Dome", Location: "Centro", Quantity: "3"},
	})
}

func (s *Store) SourceID() string { return s.id }

func (s *Store) Load(_ context.Context) (core.Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.Clean(s.rows), nil
}
