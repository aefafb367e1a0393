// Package excel loads the inventory from the .xlsx workbook the
// municipality publishes, the primary source of this dashboard.
package excel

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// DefaultSheet is the worksheet holding the inventory columns.
const DefaultSheet = "Página1"

type Loader struct {
	path  string
	sheet string
}

func New(path, sheet string) *Loader {
	if sheet == "" {
		sheet = DefaultSheet
	}
	return &Loader{path: path, sheet: sheet}
}

func (l *Loader) SourceID() string {
	return "excel:" + l.path + "#" + l.sheet
}

func (l *Loader) Load(ctx context.Context) (core.Dataset, error) {
	if _, err := os.Stat(l.path); err != nil {
		return nil, &core.NotFoundError{Source: l.path, Err: err}
	}

	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", l.path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(l.sheet)
	if err != nil {
		// The only way GetRows fails on an open workbook is a missing
		// sheet; the sheet is part of the source identity.
		return nil, &core.NotFoundError{Source: l.path + "#" + l.sheet, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return parseRows(rows)
}

// parseRows validates the header and converts the remaining rows.
func parseRows(rows [][]string) (core.Dataset, error) {
	if len(rows) == 0 {
		return nil, &core.SchemaError{Missing: core.RequiredColumns}
	}
	header := rows[0]
	if err := core.MissingColumns(header); err != nil {
		return nil, err
	}
	cols := columnIndex(header)
	raw := make([]core.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw = append(raw, core.RawRecord{
			Type:     cell(row, cols[core.ColType]),
			Subtype:  cell(row, cols[core.ColSubtype]),
			Location: cell(row, cols[core.ColLocation]),
			Quantity: cell(row, cols[core.ColQuantity]),
		})
	}
	return core.Clean(raw), nil
}

func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

// cell tolerates ragged rows: excelize omits trailing empty cells.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
