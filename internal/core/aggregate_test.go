package core

import (
	"reflect"
	"testing"
)

func TestTotalsOnSampleDataset(t *testing.T) {
	ds := sampleDataset()
	if got := Total(ds); got != 12 {
		t.Fatalf("total = %d, want 12", got)
	}
	if got := DistinctLocations(ds); got != 2 {
		t.Fatalf("distinct locations = %d, want 2", got)
	}
	max, ok := MaxRow(ds)
	if !ok || max.Location != "L2" || max.Quantity != 7 {
		t.Fatalf("max row = %+v, want L2/7", max)
	}
	breakdown := GroupSum(ds, ByType)
	want := []GroupTotal{{Name: "X", Total: 10}, {Name: "Y", Total: 2}}
	if !reflect.DeepEqual(breakdown, want) {
		t.Fatalf("type breakdown = %v, want %v", breakdown, want)
	}
}

func TestTotalEmpty(t *testing.T) {
	if got := Total(nil); got != 0 {
		t.Fatalf("total of empty input = %d, want 0", got)
	}
}

func TestMaxRowFirstOccurrenceTieBreak(t *testing.T) {
	ds := Dataset{
		{Location: "A", Quantity: 5},
		{Location: "B", Quantity: 5},
	}
	max, ok := MaxRow(ds)
	if !ok || max.Location != "A" {
		t.Fatalf("tie must resolve to first occurrence, got %+v", max)
	}
}

func TestMaxRowEmpty(t *testing.T) {
	if _, ok := MaxRow(nil); ok {
		t.Fatalf("MaxRow on empty input must report no row")
	}
}

func TestGroupSumInsertionOrder(t *testing.T) {
	ds := Dataset{
		{Subtype: "B", Quantity: 1},
		{Subtype: "A", Quantity: 2},
		{Subtype: "B", Quantity: 3},
	}
	got := GroupSum(ds, BySubtype)
	want := []GroupTotal{{Name: "B", Total: 4}, {Name: "A", Total: 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("group sum = %v, want first-appearance order %v", got, want)
	}
}

func TestTopLocations(t *testing.T) {
	ds := Filter(sampleDataset(), FilterState{Type: All, Subtype: "S1"})
	got := TopLocations(ds, TopN)
	want := []GroupTotal{{Name: "L2", Total: 7}, {Name: "L1", Total: 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top locations = %v, want %v", got, want)
	}
}

func TestTopLocationsBounds(t *testing.T) {
	var ds Dataset
	for i := 0; i < 25; i++ {
		ds = append(ds, Record{Subtype: "S", Location: string(rune('A' + i)), Quantity: i})
	}
	got := TopLocations(ds, TopN)
	if len(got) != TopN {
		t.Fatalf("top-N returned %d groups, want %d", len(got), TopN)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Total > got[i-1].Total {
			t.Fatalf("sums not non-increasing at %d: %v", i, got)
		}
	}
}

func TestTopLocationsStableTies(t *testing.T) {
	ds := Dataset{
		{Location: "First", Quantity: 5},
		{Location: "Second", Quantity: 5},
	}
	got := TopLocations(ds, 10)
	if got[0].Name != "First" || got[1].Name != "Second" {
		t.Fatalf("equal sums must keep first-appearance order: %v", got)
	}
}

func TestSubtypeTable(t *testing.T) {
	ds := Dataset{
		{Subtype: "S2", Location: "L1", Quantity: 2},
		{Subtype: "S1", Location: "L1", Quantity: 3},
		{Subtype: "S1", Location: "L2", Quantity: 7},
	}
	groups := SubtypeTable(ds)
	if len(groups) != 2 {
		t.Fatalf("expected 2 partitions, got %d", len(groups))
	}
	if groups[0].Subtype != "S2" || groups[0].Total != 2 {
		t.Fatalf("first partition = %+v", groups[0])
	}
	s1 := groups[1]
	if s1.Total != 10 {
		t.Fatalf("S1 total = %d, want 10", s1.Total)
	}
	if s1.Records[0].Location != "L2" || s1.Records[1].Location != "L1" {
		t.Fatalf("partition rows not sorted by descending quantity: %v", s1.Records)
	}
}

func TestWrapLabel(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  []string
	}{
		{"Curto", 20, []string{"Curto"}},
		{"Câmera de Monitoramento Veicular", 20, []string{"Câmera de", "Monitoramento", "Veicular"}},
		{"", 20, []string{""}},
		{"palavramuitocomprida", 8, []string{"palavram", "uitocomp", "rida"}},
	}
	for _, tc := range cases {
		if got := WrapLabel(tc.in, tc.width); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("WrapLabel(%q,%d) = %v, want %v", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestViewFor(t *testing.T) {
	cases := []struct {
		fs   FilterState
		want ViewKind
	}{
		{FilterState{Type: All, Subtype: All}, ViewTypeBreakdown},
		{FilterState{Type: "X", Subtype: All}, ViewSubtypeBreakdown},
		{FilterState{Type: All, Subtype: "S1"}, ViewTopLocations},
		{FilterState{Type: "X", Subtype: "S1"}, ViewTopLocations},
	}
	for i, tc := range cases {
		if got := ViewFor(tc.fs); got != tc.want {
			t.Fatalf("case %d: ViewFor(%+v) = %v, want %v", i, tc.fs, got, tc.want)
		}
	}
}
