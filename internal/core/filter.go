package core

import (
	"strings"

	"golang.org/x/text/cases"
)

// FilterState is the user's current selection. Type and Subtype use
// All to mean "no filter"; an empty Search disables the text filter.
type FilterState struct {
	Type    string
	Subtype string
	Search  string
}

// NewFilterState returns a state with no filters applied.
func NewFilterState() FilterState {
	return FilterState{Type: All, Subtype: All}
}

// IsEmpty reports whether no filter is active.
func (fs FilterState) IsEmpty() bool {
	return fs.Type == All && fs.Subtype == All && strings.TrimSpace(fs.Search) == ""
}

var folder = cases.Fold()

// Filter returns the subsequence of ds matching fs, in dataset order.
// Predicates apply in sequence: type, subtype, then case-insensitive
// substring containment of the search term in the location name.
// Records with a blank location never match a non-empty search.
func Filter(ds Dataset, fs FilterState) Dataset {
	search := folder.String(strings.TrimSpace(fs.Search))
	out := make(Dataset, 0, len(ds))
	for _, r := range ds {
		if fs.Type != All && r.Type != fs.Type {
			continue
		}
		if fs.Subtype != All && r.Subtype != fs.Subtype {
			continue
		}
		if search != "" {
			if r.Location == "" || !strings.Contains(folder.String(r.Location), search) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
