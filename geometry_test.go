package richtext

import (
	"testing"

	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// uniformParagraph returns a single-line fake paragraph of n characters,
// each 10 wide and 20 tall.
func uniformParagraph(n int) *fakeParagraph {
	p := &fakeParagraph{xs: make([]float64, n+1), height: 20}
	for i := range p.xs {
		p.xs[i] = float64(i * 10)
	}
	return p
}

func TestResolveRefsEndOffsets(t *testing.T) {
	res, err := markup.ParseWithRefs("a[ref=x]bc[ref=y]de[/ref]f")
	if err != nil {
		t.Fatal(err)
	}
	zones := resolveRefs(uniformParagraph(6), res.Refs)
	if len(zones) != 2 {
		t.Fatalf("zones = %+v", zones)
	}

	want := map[string]layout.Rect{
		"x": {Left: 10, Top: 0, Right: 30, Bottom: 20},
		"y": {Left: 30, Top: 0, Right: 50, Bottom: 20},
	}
	for _, z := range zones {
		if z.Rect != want[z.Name] {
			t.Errorf("zone %s = %+v, want %+v", z.Name, z.Rect, want[z.Name])
		}
	}
}

func TestRefEnd(t *testing.T) {
	tests := []struct {
		name string
		refs []markup.Ref
		i    int
		n    int
		want int
	}{
		{"next start in parse order", []markup.Ref{{Name: "a", Start: 0, End: 9}, {Name: "b", Start: 4, End: 9}}, 0, 9, 4},
		{"next start out of order", []markup.Ref{{Name: "late", Start: 5, End: 9}, {Name: "early", Start: 1, End: 9}}, 1, 9, 5},
		{"explicit close", []markup.Ref{{Name: "a", Start: 0, End: 2}, {Name: "b", Start: 5, End: 8}}, 0, 9, 2},
		{"equal starts do not cut", []markup.Ref{{Name: "a", Start: 3, End: 6}, {Name: "b", Start: 3, End: 6}}, 0, 9, 6},
		{"clamped to text", []markup.Ref{{Name: "a", Start: 1, End: 50}}, 0, 4, 4},
		{"earlier start ignored", []markup.Ref{{Name: "a", Start: 4, End: 8}, {Name: "b", Start: 0, End: 2}}, 0, 9, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := refEnd(tt.refs, tt.i, tt.n); got != tt.want {
				t.Errorf("refEnd = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResolveRefsDuplicatesAndEmpty(t *testing.T) {
	refs := []markup.Ref{
		{Name: "dup", Start: 0, End: 2},
		{Name: "dup", Start: 3, End: 5},
		{Name: "empty", Start: 5, End: 5},
	}
	zones := resolveRefs(uniformParagraph(6), refs)
	if len(zones) != 2 {
		t.Fatalf("zones = %+v, want two dup zones", zones)
	}
	for _, z := range zones {
		if z.Name != "dup" {
			t.Errorf("unexpected zone %q", z.Name)
		}
	}
	if resolveRefs(uniformParagraph(3), nil) != nil {
		t.Error("no refs should give nil zones")
	}
}

func TestResolveAnchors(t *testing.T) {
	res, err := markup.ParseWithRefs("ab[anchor=m]cd[anchor=end]")
	if err != nil {
		t.Fatal(err)
	}
	anchors := resolveAnchors(uniformParagraph(4), res.Anchors)
	if len(anchors) != 2 {
		t.Fatalf("anchors = %+v", anchors)
	}
	if anchors[0] != (Anchor{Name: "m", X: 20, Y: 0}) {
		t.Errorf("anchor m = %+v", anchors[0])
	}
	// No glyph after the last anchor: caret position.
	if anchors[1] != (Anchor{Name: "end", X: 40, Y: 0}) {
		t.Errorf("anchor end = %+v", anchors[1])
	}

	hidden := resolveAnchors(uniformParagraph(2), []markup.Anchor{{Name: "gone", Offset: 7}})
	if len(hidden) != 0 {
		t.Errorf("anchor past text = %+v, want dropped", hidden)
	}
}

func TestRefAtAndGroup(t *testing.T) {
	zones := []RefZone{
		{Name: "a", Rect: layout.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}},
		{Name: "b", Rect: layout.Rect{Left: 20, Top: 0, Right: 30, Bottom: 10}},
		{Name: "a", Rect: layout.Rect{Left: 0, Top: 10, Right: 5, Bottom: 20}},
	}
	if name, ok := RefAt(zones, 25, 5); !ok || name != "b" {
		t.Errorf("RefAt(25,5) = %q, %v", name, ok)
	}
	if name, ok := RefAt(zones, 2, 15); !ok || name != "a" {
		t.Errorf("RefAt(2,15) = %q, %v", name, ok)
	}
	if _, ok := RefAt(zones, 15, 5); ok {
		t.Error("RefAt in the gap hit a zone")
	}

	groups := GroupRefs(zones)
	if len(groups["a"]) != 2 || len(groups["b"]) != 1 {
		t.Errorf("GroupRefs = %+v", groups)
	}
}
