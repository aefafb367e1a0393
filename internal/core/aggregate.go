package core

import (
	"sort"
	"strings"
)

// TopN is the number of locations shown in the top-locations view.
const TopN = 10

// GroupTotal is a summed quantity for one group key.
type GroupTotal struct {
	Name  string
	Total int
}

// SubtypeGroup is one partition of the detail table: the records of a
// single subtype sorted by descending quantity, plus their total.
type SubtypeGroup struct {
	Subtype string
	Total   int
	Records []Record
}

// Total returns the summed quantity across records.
func Total(records Dataset) int {
	sum := 0
	for _, r := range records {
		sum += r.Quantity
	}
	return sum
}

// DistinctLocations returns the number of unique location names.
func DistinctLocations(records Dataset) int {
	seen := map[string]struct{}{}
	for _, r := range records {
		seen[r.Location] = struct{}{}
	}
	return len(seen)
}

// MaxRow returns the record with the largest quantity. Ties are broken
// by first occurrence in input order; callers depend on that exactly.
func MaxRow(records Dataset) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}
	best := records[0]
	for _, r := range records[1:] {
		if r.Quantity > best.Quantity {
			best = r
		}
	}
	return best, true
}

// GroupSum sums quantities per group key, in insertion order of each
// key's first appearance. Breakdown charts rely on this ordering.
func GroupSum(records Dataset, key func(Record) string) []GroupTotal {
	idx := map[string]int{}
	var out []GroupTotal
	for _, r := range records {
		k := key(r)
		i, ok := idx[k]
		if !ok {
			i = len(out)
			idx[k] = i
			out = append(out, GroupTotal{Name: k})
		}
		out[i].Total += r.Quantity
	}
	return out
}

// ByType and BySubtype are the group keys used by the breakdown views.
func ByType(r Record) string    { return r.Type }
func BySubtype(r Record) string { return r.Subtype }

// TopLocations sums quantities per location and returns at most n
// groups in non-increasing order. The sort is stable, so equal sums
// keep their first-appearance order.
func TopLocations(records Dataset, n int) []GroupTotal {
	groups := GroupSum(records, func(r Record) string { return r.Location })
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total > groups[j].Total
	})
	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// SubtypeTable partitions records by subtype, in insertion order of
// first appearance. Within each partition records are sorted by
// descending quantity (stable, so equal quantities keep dataset order).
func SubtypeTable(records Dataset) []SubtypeGroup {
	idx := map[string]int{}
	var out []SubtypeGroup
	for _, r := range records {
		i, ok := idx[r.Subtype]
		if !ok {
			i = len(out)
			idx[r.Subtype] = i
			out = append(out, SubtypeGroup{Subtype: r.Subtype})
		}
		out[i].Total += r.Quantity
		out[i].Records = append(out[i].Records, r)
	}
	for i := range out {
		recs := out[i].Records
		sort.SliceStable(recs, func(a, b int) bool {
			return recs[a].Quantity > recs[b].Quantity
		})
	}
	return out
}

// WrapLabel splits a chart label into lines of at most width runes,
// breaking on spaces. Words longer than width are split hard. Long
// subtype names would otherwise collide on the axis.
func WrapLabel(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		for len([]rune(word)) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			runes := []rune(word)
			lines = append(lines, string(runes[:width]))
			word = string(runes[width:])
		}
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}
