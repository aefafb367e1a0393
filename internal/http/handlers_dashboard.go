package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/FiliRodrigues/Araras/internal/core"
)

// handleDashboard renders the main dashboard page with the filter
// sidebar populated from the cleaned dataset.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if s.templates == nil {
		slog.ErrorContext(r.Context(), "Templates not loaded")
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	ds, err := s.getDataset(r.Context())
	if err != nil {
		writeLoadError(w, r, err)
		return
	}

	data := struct {
		Types    []string
		Subtypes []string
	}{
		Types:    ds.TypeOptions(),
		Subtypes: ds.SubtypeOptions(core.All),
	}
	if err := s.templates.ExecuteTemplate(w, "dashboard_page", data); err != nil {
		slog.ErrorContext(r.Context(), "Dashboard template execution failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleSubtypeOptions returns the subtype <option> list narrowed to
// the selected type (referential narrowing of the second selector).
func (s *Server) handleSubtypeOptions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ds, err := s.getDataset(r.Context())
	if err != nil {
		writeLoadError(w, r, err)
		return
	}

	fs := parseFilterState(r)
	data := struct {
		Subtypes []string
	}{Subtypes: ds.SubtypeOptions(fs.Type)}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "subtype_options", data); err != nil {
		slog.ErrorContext(r.Context(), "Subtype options template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleOverview returns the KPI partial: total cameras, distinct
// locations and the location with the most cameras. An empty filter
// result renders the "no data" state instead.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ds, err := s.getDataset(r.Context())
	if err != nil {
		writeLoadError(w, r, err)
		return
	}

	filtered := core.Filter(ds, parseFilterState(r))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if len(filtered) == 0 {
		if err := s.templates.ExecuteTemplate(w, "no_data", nil); err != nil {
			slog.ErrorContext(r.Context(), "No-data template failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	max, _ := core.MaxRow(filtered)
	data := struct {
		Total       int
		Locations   int
		MaxLocation string
		MaxQuantity int
	}{
		Total:       core.Total(filtered),
		Locations:   core.DistinctLocations(filtered),
		MaxLocation: max.Location,
		MaxQuantity: max.Quantity,
	}
	if err := s.templates.ExecuteTemplate(w, "overview", data); err != nil {
		slog.ErrorContext(r.Context(), "Overview template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// chart is one Chart.js dataset in the /ui/charts payload.
type chart struct {
	Kind    string   `json:"kind"` // "bar" or "pie"
	Title   string   `json:"title"`
	Labels  []string `json:"labels"`
	Values  []int    `json:"values"`
	Colors  []string `json:"colors"`
	Percent bool     `json:"percent,omitempty"`
}

type chartPayload struct {
	Empty  bool    `json:"empty"`
	Charts []chart `json:"charts,omitempty"`
}

// handleCharts returns the chart payload for the current filter
// state. Which charts appear is decided entirely by core.ViewFor.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ds, err := s.getDataset(r.Context())
	if err != nil {
		writeLoadError(w, r, err)
		return
	}

	fs := parseFilterState(r)
	filtered := core.Filter(ds, fs)

	payload := chartPayload{}
	if len(filtered) == 0 {
		payload.Empty = true
	} else {
		payload.Charts = buildCharts(filtered, fs)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.ErrorContext(r.Context(), "Chart payload encoding failed", "error", err)
	}
}

func buildCharts(filtered core.Dataset, fs core.FilterState) []chart {
	switch core.ViewFor(fs) {
	case core.ViewTopLocations:
		top := core.TopLocations(filtered, core.TopN)
		c := chart{
			Kind:  "bar",
			Title: fmt.Sprintf("Exibindo os %d Principais Locais em '%s'", len(top), fs.Subtype),
		}
		for i, g := range top {
			c.Labels = append(c.Labels, wrapLabel(g.Name))
			c.Values = append(c.Values, g.Total)
			c.Colors = append(c.Colors, chartColors[i%len(chartColors)])
		}
		return []chart{c}

	case core.ViewSubtypeBreakdown:
		bars := groupChart(core.GroupSum(filtered, core.BySubtype), "bar",
			fmt.Sprintf("Distribuição por Subcategorias em '%s'", fs.Type), true)
		return []chart{bars, subtypePie(filtered)}

	default: // ViewTypeBreakdown
		bars := groupChart(core.GroupSum(filtered, core.ByType), "bar",
			"Distribuição por Categoria (Tipo)", false)
		return []chart{bars, subtypePie(filtered)}
	}
}

func subtypePie(filtered core.Dataset) chart {
	pie := groupChart(core.GroupSum(filtered, core.BySubtype), "pie",
		"Distribuição Percentual por Subcategoria", false)
	pie.Percent = true
	return pie
}

func groupChart(groups []core.GroupTotal, kind, title string, wrap bool) chart {
	c := chart{Kind: kind, Title: title}
	for i, g := range groups {
		label := g.Name
		if wrap {
			label = wrapLabel(label)
		}
		c.Labels = append(c.Labels, label)
		c.Values = append(c.Values, g.Total)
		c.Colors = append(c.Colors, chartColors[i%len(chartColors)])
	}
	return c
}

// handleTable returns the grouped detail table partial: one
// collapsible section per subtype with its rows sorted by descending
// quantity and the per-group total.
func (s *Server) handleTable(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	ds, err := s.getDataset(r.Context())
	if err != nil {
		writeLoadError(w, r, err)
		return
	}

	filtered := core.Filter(ds, parseFilterState(r))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if len(filtered) == 0 {
		if err := s.templates.ExecuteTemplate(w, "no_data", nil); err != nil {
			slog.ErrorContext(r.Context(), "No-data template failed", "error", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	data := struct {
		Groups []core.SubtypeGroup
	}{Groups: core.SubtypeTable(filtered)}
	if err := s.templates.ExecuteTemplate(w, "detail_table", data); err != nil {
		slog.ErrorContext(r.Context(), "Detail table template failed", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
