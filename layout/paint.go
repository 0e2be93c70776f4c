package layout

import (
	"image"
	"math"
	"sort"

	"golang.org/x/image/draw"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// fauxItalicShear is the horizontal shear applied to synthesize italics.
const fauxItalicShear = 0.2

// Paint draws the laid out paragraph into dst with its top-left corner
// at (x, y). dst is drawn over, not cleared.
func (p *Paragraph) Paint(dst draw.Image, x, y float64) {
	var buf sfnt.Buffer
	for li := range p.lines {
		ln := &p.lines[li]
		baseline := y + ln.top + ln.ascent

		first := sort.Search(len(p.glyphs), func(i int) bool {
			return p.glyphs[i].cluster >= ln.start
		})
		for _, g := range p.glyphs[first:] {
			if g.cluster >= ln.end {
				break
			}
			st := &p.styles[p.runeStyle[g.cluster]]
			gx := x + ln.xs[g.cluster-ln.start] + g.dx
			drawGlyph(dst, &buf, st, g.id, gx, baseline-g.dy)
		}

		if len(ln.ellipsis) > 0 {
			st := &p.styles[ln.ellipsisStyle]
			pen := x + ln.xs[len(ln.xs)-1]
			for _, g := range ln.ellipsis {
				drawGlyph(dst, &buf, st, g.id, pen+g.dx, baseline-g.dy)
				pen += g.advance
			}
		}

		p.paintDecorations(dst, ln, x, baseline)
	}
}

// paintDecorations draws underlines and strike-throughs for maximal runs
// of equal style on one line. Trailing spaces are not decorated.
func (p *Paragraph) paintDecorations(dst draw.Image, ln *line, x, baseline float64) {
	for a := ln.start; a < ln.trimmed; {
		si := p.runeStyle[a]
		b := a + 1
		for b < ln.trimmed && p.runeStyle[b] == si {
			b++
		}
		st := &p.styles[si]
		if st.Decoration != DecorationNone {
			x0, x1 := x+ln.xs[a-ln.start], x+ln.xs[b-ln.start]
			thick := math.Max(1, st.Size/14)
			if st.Decoration.Has(DecorationUnderline) {
				fillRect(dst, st, x0, baseline+math.Max(1, st.Size/10), x1, thick)
			}
			if st.Decoration.Has(DecorationLineThrough) {
				fillRect(dst, st, x0, baseline-st.metrics.XHeight/2-thick/2, x1, thick)
			}
		}
		a = b
	}
}

func fillRect(dst draw.Image, st *resolvedStyle, x0, y0, x1, thick float64) {
	r := image.Rect(
		int(math.Floor(x0)), int(math.Round(y0)),
		int(math.Ceil(x1)), int(math.Round(y0))+int(math.Ceil(thick)),
	)
	draw.Draw(dst, r, image.NewUniform(st.Color), image.Point{}, draw.Over)
}

// drawGlyph rasterizes one glyph outline with its origin at (gx, gy).
func drawGlyph(dst draw.Image, buf *sfnt.Buffer, st *resolvedStyle, id sfnt.GlyphIndex, gx, gy float64) {
	segs, err := st.face.sfnt.LoadGlyph(buf, id, toFixed(st.Size), nil)
	if err != nil || len(segs) == 0 {
		return
	}

	shear := 0.0
	if st.fauxItalic {
		shear = fauxItalicShear
	}
	pt := func(v fixed.Point26_6) (float64, float64) {
		px, py := fromFixed(v.X), fromFixed(v.Y)
		return px - py*shear, py
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for i := 0; i < segmentArgs(s.Op); i++ {
			px, py := pt(s.Args[i])
			minX, maxX = math.Min(minX, px), math.Max(maxX, px)
			minY, maxY = math.Min(minY, py), math.Max(maxY, py)
		}
	}

	bold := 0.0
	if st.fauxBold {
		bold = math.Max(0.5, st.Size/32)
	}

	x0, y0 := int(math.Floor(gx+minX)), int(math.Floor(gy+minY))
	x1, y1 := int(math.Ceil(gx+maxX+bold)), int(math.Ceil(gy+maxY))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return
	}

	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Over
	ox, oy := gx-float64(x0), gy-float64(y0)
	addOutline(r, segs, pt, ox, oy)
	if bold > 0 {
		addOutline(r, segs, pt, ox+bold, oy)
	}
	r.Draw(dst, image.Rect(x0, y0, x1, y1), image.NewUniform(st.Color), image.Point{})
}

func addOutline(r *vector.Rasterizer, segs sfnt.Segments, pt func(fixed.Point26_6) (float64, float64), ox, oy float64) {
	at := func(v fixed.Point26_6) (float32, float32) {
		px, py := pt(v)
		return float32(px + ox), float32(py + oy)
	}
	started := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				r.ClosePath()
			}
			started = true
			r.MoveTo(at(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(at(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := at(s.Args[0])
			cx, cy := at(s.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := at(s.Args[0])
			cx, cy := at(s.Args[1])
			dx, dy := at(s.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	if started {
		r.ClosePath()
	}
}

func segmentArgs(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}
