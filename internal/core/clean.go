package core

import (
	"strconv"
	"strings"
)

// RawRecord is a row as read from a source, before cleaning. Quantity
// is kept as text so every source shares the same coercion rules.
type RawRecord struct {
	Type     string
	Subtype  string
	Location string
	Quantity string
}

// Clean converts raw rows into a Dataset, dropping rows that fail
// numeric coercion of Quantidade or have a blank Subtipo or Locais.
// Dropped rows are not reported individually. A blank Tipo is kept;
// such rows simply never appear in the type option list.
func Clean(rows []RawRecord) Dataset {
	ds := make(Dataset, 0, len(rows))
	for _, row := range rows {
		qty, ok := parseQuantity(row.Quantity)
		if !ok || qty < 0 {
			continue
		}
		sub := strings.TrimSpace(row.Subtype)
		loc := strings.TrimSpace(row.Location)
		if sub == "" || loc == "" {
			continue
		}
		ds = append(ds, Record{
			Type:     strings.TrimSpace(row.Type),
			Subtype:  sub,
			Location: loc,
			Quantity: qty,
		})
	}
	return ds
}

// parseQuantity coerces a cell into an integer count. Decimal values
// are accepted and truncated toward zero, matching the source data
// where counts occasionally arrive as "12.0".
func parseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	// Spreadsheet exports sometimes use a decimal comma.
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}
