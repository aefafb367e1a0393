package core

import (
	"fmt"
	"sort"
	"strings"
)

// All is the selector value that disables a category filter.
const All = "Todos"

// Column names are part of the source contract and must match exactly.
const (
	ColType     = "Tipo"
	ColSubtype  = "Subtipo"
	ColLocation = "Locais"
	ColQuantity = "Quantidade"
)

// RequiredColumns lists the columns every source must provide.
var RequiredColumns = []string{ColType, ColSubtype, ColLocation, ColQuantity}

type (
	// Record is one camera-location inventory entry.
	Record struct {
		Type     string
		Subtype  string
		Location string
		Quantity int
	}

	// Dataset is the cleaned, ordered collection of records. It is
	// loaded once per source and never mutated afterwards.
	Dataset []Record
)

// NotFoundError reports a missing source (file, sheet or table).
// It is fatal: the session halts with a user-visible message.
type NotFoundError struct {
	Source string
	Err    error
}

func (e *NotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fonte de dados %q não encontrada: %v", e.Source, e.Err)
	}
	return fmt.Sprintf("fonte de dados %q não encontrada", e.Source)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// SchemaError reports required columns absent from the source header.
// It is fatal, like NotFoundError.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("a planilha deve conter as colunas: %s (ausentes: %s)",
		strings.Join(RequiredColumns, ", "), strings.Join(e.Missing, ", "))
}

// MissingColumns compares a header row against RequiredColumns and
// returns a SchemaError when any are absent. Header matching is exact.
func MissingColumns(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// TypeOptions returns the sorted distinct non-blank types in ds.
func (ds Dataset) TypeOptions() []string {
	return distinctSorted(ds, func(r Record) string { return r.Type })
}

// SubtypeOptions returns the sorted distinct subtypes in ds, narrowed
// to the selected type unless it is All.
func (ds Dataset) SubtypeOptions(selectedType string) []string {
	return distinctSorted(ds, func(r Record) string {
		if selectedType != All && r.Type != selectedType {
			return ""
		}
		return r.Subtype
	})
}

func distinctSorted(ds Dataset, key func(Record) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range ds {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
