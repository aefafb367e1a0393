// Package csvfile loads the inventory from a CSV export of the
// workbook. Exports in the wild use either comma or semicolon
// separators, so the delimiter is sniffed from the header line.
package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/FiliRodrigues/Araras/internal/core"
)

type Loader struct {
	path string
}

func New(path string) *Loader { return &Loader{path: path} }

func (l *Loader) SourceID() string { return "csv:" + l.path }

// row mirrors the source columns; Quantidade stays textual so the
// shared cleaning rules decide what is a valid count.
type row struct {
	Type     string `csv:"Tipo"`
	Subtype  string `csv:"Subtipo"`
	Location string `csv:"Locais"`
	Quantity string `csv:"Quantidade"`
}

func (l *Loader) Load(ctx context.Context) (core.Dataset, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &core.NotFoundError{Source: l.path, Err: err}
		}
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	comma := sniffDelimiter(data)

	header := csv.NewReader(bytes.NewReader(data))
	header.Comma = comma
	first, err := header.Read()
	if err != nil {
		return nil, &core.SchemaError{Missing: core.RequiredColumns}
	}
	if err := core.MissingColumns(first); err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = comma
	reader.LazyQuotes = true
	var rows []row
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", l.path, err)
	}

	raw := make([]core.RawRecord, 0, len(rows))
	for _, r := range rows {
		raw = append(raw, core.RawRecord{
			Type:     r.Type,
			Subtype:  r.Subtype,
			Location: r.Location,
			Quantity: r.Quantity,
		})
	}
	return core.Clean(raw), nil
}

func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	s := string(line)
	if strings.Count(s, ";") > strings.Count(s, ",") {
		return ';'
	}
	return ','
}
