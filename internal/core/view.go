package core

// ViewKind identifies which chart layout the dashboard renders. The
// choice is a pure function of the filter state, recomputed on every
// filter change.
type ViewKind int

const (
	// ViewTopLocations: a subtype is selected; show the top locations
	// for it as a single bar chart.
	ViewTopLocations ViewKind = iota
	// ViewTypeBreakdown: nothing selected; show totals per type plus
	// the subtype percentage pie.
	ViewTypeBreakdown
	// ViewSubtypeBreakdown: a type is selected but no subtype; show
	// totals per subtype (wrapped labels) plus the subtype pie.
	ViewSubtypeBreakdown
)

// ViewFor maps a filter state onto the view to render. The subtype
// selector wins: any concrete subtype switches to the top-locations
// view regardless of the type selector.
func ViewFor(fs FilterState) ViewKind {
	if fs.Subtype != All {
		return ViewTopLocations
	}
	if fs.Type == All {
		return ViewTypeBreakdown
	}
	return ViewSubtypeBreakdown
}
