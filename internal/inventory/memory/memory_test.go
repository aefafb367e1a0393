package memory

import (
	"context"
	"testing"
)

func TestSeededStoreLoads(t *testing.T) {
	s := NewSeeded()
	ds, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds) == 0 {
		t.Fatalf("seeded store returned no records")
	}
	for _, r := range ds {
		if r.Quantity < 0 || r.Subtype == "" || r.Location == "" {
			t.Fatalf("seed row violates dataset invariants: %+v", r)
		}
	}
	if s.SourceID() == "" {
		t.Fatalf("source id must not be empty")
	}
}
