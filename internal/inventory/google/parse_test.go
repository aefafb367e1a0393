package google

import (
	"errors"
	"testing"

	"github.com/FiliRodrigues/Araras/internal/core"
)

func TestParseValues(t *testing.T) {
	values := [][]interface{}{
		{"Tipo", "Subtipo", "Locais", "Quantidade"},
		{"Fixa", "Dome", "Centro", "3"},
		{"Fixa", "Dome", "Praça"}, // short row: quantity missing, dropped
		{"Fixa", "Dome", "Jardim", 4.0},
	}
	ds, err := parseValues(values)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ds) != 2 {
		t.Fatalf("expected 2 records, got %v", ds)
	}
	if ds[1].Location != "Jardim" || ds[1].Quantity != 4 {
		t.Fatalf("numeric cell not coerced: %+v", ds[1])
	}
}

func TestParseValuesMissingHeader(t *testing.T) {
	_, err := parseValues([][]interface{}{{"Tipo", "Locais"}})
	var se *core.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}

func TestParseValuesEmpty(t *testing.T) {
	_, err := parseValues(nil)
	var se *core.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError on empty sheet, got %v", err)
	}
}
