package layout

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
)

// glyph is one shaped glyph positioned relative to its cluster.
type glyph struct {
	id sfnt.GlyphIndex

	// cluster is the rune index of the first character this glyph maps to.
	cluster int

	// dx, dy offset the glyph from the pen position at the start of its
	// cluster. dy grows upward, as in the font's coordinate system.
	dx, dy float64

	advance float64
}

// hbPool pools HarfbuzzShaper instances, which are not safe for
// concurrent use.
var hbPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// shapeRange shapes text[start:end] left to right with a single face.
// It returns the glyphs in logical order and adds each glyph's advance to
// advances[cluster], so that advances ends up holding per-rune widths.
// A ligature's full advance goes to its first rune.
func shapeRange(text []rune, start, end int, tf *Typeface, size float64, lang language.Language, advances []float64) []glyph {
	if start >= end {
		return nil
	}

	input := shaping.Input{
		Text:      text,
		RunStart:  start,
		RunEnd:    end,
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(tf.shaping),
		Size:      toFixed(size),
		Script:    detectScript(text[start:end]),
		Language:  lang,
	}

	hb := hbPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	hbPool.Put(hb)

	glyphs := make([]glyph, 0, len(out.Glyphs))
	pen, clusterPen := 0.0, 0.0
	lastCluster := -1
	for _, g := range out.Glyphs {
		c := g.TextIndex()
		if c < start || c >= end {
			continue
		}
		if c != lastCluster {
			clusterPen = pen
			lastCluster = c
		}
		adv := fromFixed(g.Advance)
		glyphs = append(glyphs, glyph{
			id:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // glyph IDs in TrueType fonts fit in 16 bits
			cluster: c,
			dx:      pen - clusterPen + fromFixed(g.XOffset),
			dy:      fromFixed(g.YOffset),
			advance: adv,
		})
		advances[c] += adv
		pen += adv
	}
	return glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
