package richtext

import (
	"github.com/gogpu/richtext/internal/logging"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// RefZone is one clickable rectangle of a named reference span.
// A span that wraps produces one zone per line, all with the same name.
// Rect is in texture coordinates: origin at the top-left, Y down.
type RefZone struct {
	Name string
	Rect layout.Rect
}

// Anchor is the position of a named anchor in texture coordinates:
// the top-left corner of the character that follows it.
type Anchor struct {
	Name string
	X, Y float64
}

// resolveAnchors places every anchor at the top-left of the box of the
// character at its offset. When there is no such box (end of text, or a
// line break) the caret position is used. Anchors in text hidden by
// MaxLines are dropped.
func resolveAnchors(p Paragraph, anchors []markup.Anchor) []Anchor {
	if len(anchors) == 0 {
		return nil
	}

	out := make([]Anchor, 0, len(anchors))
	for _, a := range anchors {
		boxes := p.RectsForRange(a.Offset, a.Offset+1, layout.HeightMax, layout.WidthTight)
		if len(boxes) > 0 {
			out = append(out, Anchor{Name: a.Name, X: boxes[0].Rect.Left, Y: boxes[0].Rect.Top})
			continue
		}
		if x, y, ok := p.CaretPosition(a.Offset); ok {
			out = append(out, Anchor{Name: a.Name, X: x, Y: y})
			continue
		}
		logging.Logger().Debug("richtext: anchor not laid out", "name", a.Name, "offset", a.Offset)
	}
	return out
}

// refEnd returns the end offset of refs[i]: the nearest start among the
// other refs that is strictly greater than its own, capped by its explicit
// end and by the text length.
func refEnd(refs []markup.Ref, i, textLen int) int {
	start := refs[i].Start
	end := min(refs[i].End, textLen)
	for j, other := range refs {
		if j != i && other.Start > start && other.Start < end {
			end = other.Start
		}
	}
	return end
}

// resolveRefs converts reference spans into zones. Duplicate names are
// kept; each span contributes one zone per line box.
func resolveRefs(p Paragraph, refs []markup.Ref) []RefZone {
	if len(refs) == 0 {
		return nil
	}

	var zones []RefZone
	n := p.Len()
	for i, r := range refs {
		end := refEnd(refs, i, n)
		if r.Start >= end {
			continue
		}
		for _, box := range p.RectsForRange(r.Start, end, layout.HeightMax, layout.WidthTight) {
			zones = append(zones, RefZone{Name: r.Name, Rect: box.Rect})
		}
	}
	return zones
}

// RefAt returns the name of the first zone containing (x, y).
func RefAt(zones []RefZone, x, y float64) (string, bool) {
	for _, z := range zones {
		if z.Rect.Contains(x, y) {
			return z.Name, true
		}
	}
	return "", false
}

// GroupRefs groups zones by name, preserving order within each name.
func GroupRefs(zones []RefZone) map[string][]layout.Rect {
	out := make(map[string][]layout.Rect)
	for _, z := range zones {
		out[z.Name] = append(out[z.Name], z.Rect)
	}
	return out
}
