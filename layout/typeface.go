package layout

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	gtfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Typeface is one parsed font face (a family in a given style).
//
// The same font data is parsed twice: by golang.org/x/image/font/sfnt for
// metrics and glyph outlines, and by go-text/typesetting for shaping.
// Typeface is safe for concurrent use.
type Typeface struct {
	family string
	style  FontStyle

	sfnt    *sfnt.Font
	shaping *gtfont.Font
}

// Metrics holds vertical font metrics at a given size, in pixels.
// Ascent and Descent are both positive.
type Metrics struct {
	Ascent    float64
	Descent   float64
	LineGap   float64
	XHeight   float64
	CapHeight float64
}

// Height returns Ascent + Descent.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}

// ParseTypeface parses TrueType or OpenType data. The family and style
// are read from the font's name table.
func ParseTypeface(data []byte) (*Typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("layout: parse font: %w", err)
	}

	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("layout: parse font for shaping: %w", err)
	}

	tf := &Typeface{
		sfnt:    f,
		shaping: face.Font,
		style:   Regular,
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		tf.family = name
	}
	if sub, err := f.Name(nil, sfnt.NameIDSubfamily); err == nil {
		tf.style = styleFromSubfamily(sub)
	}
	return tf, nil
}

// styleFromSubfamily maps a subfamily name such as "Bold Italic" to a FontStyle.
func styleFromSubfamily(sub string) FontStyle {
	s := strings.ToLower(sub)
	style := Regular
	switch {
	case strings.Contains(s, "black"), strings.Contains(s, "heavy"):
		style.Weight = 900
	case strings.Contains(s, "extrabold"), strings.Contains(s, "extra bold"):
		style.Weight = 800
	case strings.Contains(s, "semibold"), strings.Contains(s, "semi bold"):
		style.Weight = 600
	case strings.Contains(s, "bold"):
		style.Weight = WeightBold
	case strings.Contains(s, "medium"):
		style.Weight = 500
	case strings.Contains(s, "light"):
		style.Weight = 300
	case strings.Contains(s, "thin"):
		style.Weight = 100
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		style.Slant = SlantItalic
	}
	return style
}

// Family returns the family name from the font's name table.
func (t *Typeface) Family() string {
	return t.family
}

// Style returns the style of the face.
func (t *Typeface) Style() FontStyle {
	return t.style
}

// Metrics returns the vertical metrics at the given size in pixels per em.
func (t *Typeface) Metrics(size float64) Metrics {
	var buf sfnt.Buffer
	m, err := t.sfnt.Metrics(&buf, toFixed(size), xfont.HintingNone)
	if err != nil {
		// Rough Latin proportions.
		return Metrics{Ascent: size * 0.8, Descent: size * 0.2, XHeight: size * 0.5, CapHeight: size * 0.7}
	}

	ascent := math.Abs(fromFixed(m.Ascent))
	descent := math.Abs(fromFixed(m.Descent))
	out := Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   math.Max(0, fromFixed(m.Height)-ascent-descent),
		XHeight:   math.Abs(fromFixed(m.XHeight)),
		CapHeight: math.Abs(fromFixed(m.CapHeight)),
	}
	if out.XHeight == 0 {
		out.XHeight = size * 0.5
	}
	return out
}

// HasGlyph reports whether the font maps r to a glyph other than .notdef.
func (t *Typeface) HasGlyph(r rune) bool {
	idx, err := t.sfnt.GlyphIndex(nil, r)
	return err == nil && idx != 0
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
