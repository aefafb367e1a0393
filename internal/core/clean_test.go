package core

import "testing"

func TestCleanDropsInvalidRows(t *testing.T) {
	rows := []RawRecord{
		{Type: "Fixa", Subtype: "Dome", Location: "Centro", Quantity: "3"},
		{Type: "Fixa", Subtype: "Dome", Location: "Centro", Quantity: "abc"}, // bad number
		{Type: "Fixa", Subtype: "", Location: "Centro", Quantity: "2"},       // blank subtype
		{Type: "Fixa", Subtype: "Dome", Location: "  ", Quantity: "2"},       // blank location
		{Type: "Fixa", Subtype: "Dome", Location: "Centro", Quantity: "-1"},  // negative
		{Type: "", Subtype: "Dome", Location: "Praça", Quantity: "4"},        // blank type is kept
		{Type: "Fixa", Subtype: "Dome", Location: "Jardim", Quantity: "7.0"}, // decimal coerces
	}
	ds := Clean(rows)
	if len(ds) != 3 {
		t.Fatalf("expected 3 retained rows, got %d: %v", len(ds), ds)
	}
	for i, r := range ds {
		if r.Quantity < 0 {
			t.Fatalf("row %d has negative quantity %d", i, r.Quantity)
		}
		if r.Subtype == "" || r.Location == "" {
			t.Fatalf("row %d retained with blank subtype/location: %+v", i, r)
		}
	}
	if ds[2].Quantity != 7 {
		t.Fatalf("decimal coercion: expected 7, got %d", ds[2].Quantity)
	}
}

func TestCleanPreservesOrder(t *testing.T) {
	rows := []RawRecord{
		{Type: "A", Subtype: "S", Location: "L1", Quantity: "1"},
		{Type: "B", Subtype: "S", Location: "L2", Quantity: "x"},
		{Type: "C", Subtype: "S", Location: "L3", Quantity: "2"},
	}
	ds := Clean(rows)
	if len(ds) != 2 || ds[0].Location != "L1" || ds[1].Location != "L3" {
		t.Fatalf("order not preserved: %v", ds)
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"12", 12, true},
		{" 12 ", 12, true},
		{"12.0", 12, true},
		{"12,5", 12, true}, // decimal comma, truncated
		{"0", 0, true},
		{"", 0, false},
		{"n/a", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseQuantity(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("parseQuantity(%q) = %d,%v want %d,%v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMissingColumns(t *testing.T) {
	if err := MissingColumns([]string{"Tipo", "Subtipo", "Locais", "Quantidade", "Extra"}); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	err := MissingColumns([]string{"Tipo", "Locais"})
	se, ok := err.(*SchemaError)
	if !ok {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
	if len(se.Missing) != 2 {
		t.Fatalf("expected 2 missing columns, got %v", se.Missing)
	}
}
