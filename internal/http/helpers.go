package http

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// chartColors is the fixed palette shared by every chart.
var chartColors = []string{"#A8D5BA", "#AFCBFF", "#87CEFA", "#FFDAB9", "#E6E6FA", "#F08080", "#98FB98"}

// labelWidth is the wrap column for long subtype names on bar axes.
const labelWidth = 20

// getDataset loads the (cached) dataset with a small timeout so
// partials never hang on a slow source.
func (s *Server) getDataset(ctx context.Context) (core.Dataset, error) {
	cctx, cancel := context.WithTimeout(ctx, 7*time.Second)
	defer cancel()
	return s.loader.Load(cctx)
}

// writeLoadError maps loader failures onto responses. Missing source
// and bad schema are fatal states with a user-visible message; they
// are the only error kinds the loaders surface deliberately.
func writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	var nf *core.NotFoundError
	var se *core.SchemaError
	switch {
	case errors.As(err, &nf):
		slog.ErrorContext(r.Context(), "Inventory source not found", "error", err)
		writeErrorBox(w, http.StatusInternalServerError, nf.Error())
	case errors.As(err, &se):
		slog.ErrorContext(r.Context(), "Inventory schema invalid", "error", err)
		writeErrorBox(w, http.StatusInternalServerError, se.Error())
	default:
		slog.ErrorContext(r.Context(), "Inventory load failed", "error", err)
		writeErrorBox(w, http.StatusInternalServerError, "Erro ao carregar os dados")
	}
}

func writeErrorBox(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`<div class="error">` + template.HTMLEscapeString(msg) + `</div>`))
}

// wrapLabel joins the wrapped lines of a label for multi-line chart
// axis ticks.
func wrapLabel(s string) string {
	return strings.Join(core.WrapLabel(s, labelWidth), "\n")
}
