package excel

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/FiliRodrigues/Araras/internal/core"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		if _, err := f.NewSheet(sheet); err != nil {
			t.Fatalf("new sheet: %v", err)
		}
	}
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "inventario.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestLoadCleansRows(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, [][]any{
		{"Tipo", "Subtipo", "Locais", "Quantidade"},
		{"Fixa", "Dome", "Centro", 3},
		{"Fixa", "Dome", "Praça", "x"}, // dropped: bad number
		{"Fixa", "", "Praça", 2},       // dropped: blank subtype
	})
	ds, err := New(path, "").Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ds) != 1 || ds[0].Location != "Centro" || ds[0].Quantity != 3 {
		t.Fatalf("unexpected dataset: %v", ds)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.xlsx"), "").Load(context.Background())
	var nf *core.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestLoadMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Tipo", "Subtipo", "Locais", "Quantidade"},
	})
	_, err := New(path, "Outra").Load(context.Background())
	var nf *core.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing sheet, got %v", err)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	path := writeWorkbook(t, DefaultSheet, [][]any{
		{"Tipo", "Locais"},
		{"Fixa", "Centro"},
	})
	_, err := New(path, "").Load(context.Background())
	var se *core.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}
