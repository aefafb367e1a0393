package http

import (
	"net/http"
	"strings"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// parseFilterState reads the selector state from query parameters.
// Absent or blank selectors fall back to "no filter".
func parseFilterState(r *http.Request) core.FilterState {
	fs := core.NewFilterState()
	q := r.URL.Query()
	if v := sanitizeInput(q.Get("tipo")); v != "" {
		fs.Type = v
	}
	if v := sanitizeInput(q.Get("subtipo")); v != "" {
		fs.Subtype = v
	}
	fs.Search = sanitizeInput(q.Get("busca"))
	return fs
}

// sanitizeInput trims whitespace and strips control characters.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}
