package google

import (
	"fmt"
	"strings"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// parseValues converts a values matrix (as returned by the Sheets
// API) into a cleaned dataset. The first row must hold the required
// column headers.
func parseValues(values [][]interface{}) (core.Dataset, error) {
	if len(values) == 0 {
		return nil, &core.SchemaError{Missing: core.RequiredColumns}
	}
	header := toStrings(values[0])
	if err := core.MissingColumns(header); err != nil {
		return nil, err
	}
	cols := map[string]int{}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, ok := cols[h]; !ok {
			cols[h] = i
		}
	}
	raw := make([]core.RawRecord, 0, len(values)-1)
	for _, v := range values[1:] {
		row := toStrings(v)
		raw = append(raw, core.RawRecord{
			Type:     safeGet(row, cols[core.ColType]),
			Subtype:  safeGet(row, cols[core.ColSubtype]),
			Location: safeGet(row, cols[core.ColLocation]),
			Quantity: safeGet(row, cols[core.ColQuantity]),
		})
	}
	return core.Clean(raw), nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = fmt.Sprintf("%v", v)
	}
	return out
}

// safeGet tolerates short rows: the API omits trailing empty cells.
func safeGet(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
