package layout

import (
	"fmt"
	"image/color"
	"strings"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Alignment specifies horizontal text alignment within the layout width.
type Alignment uint8

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Alignment = iota
	// AlignCenter centers each line.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
	// AlignJustify stretches inter-word spaces so that every line but the
	// last of a paragraph fills the layout width.
	AlignJustify
)

// String returns the lower-case name of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return unknownStr
	}
}

// ParseAlignment parses an alignment name. "auto" and the empty string
// mean left.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	case "justify":
		return AlignJustify, nil
	default:
		return AlignLeft, fmt.Errorf("%w: %q", ErrUnknownAlignment, s)
	}
}

// Weight is a font weight on the usual 100..900 scale.
type Weight int

// Common weights.
const (
	WeightNormal Weight = 400
	WeightBold   Weight = 700
)

// Slant distinguishes upright and italic faces.
type Slant uint8

const (
	SlantUpright Slant = iota
	SlantItalic
)

// FontStyle selects a face within a family.
type FontStyle struct {
	Weight Weight
	Slant  Slant
}

// Regular is the upright normal-weight style.
var Regular = FontStyle{Weight: WeightNormal, Slant: SlantUpright}

// IsBold reports whether the weight is semibold or heavier.
func (s FontStyle) IsBold() bool {
	return s.Weight >= 600
}

// String returns a subfamily-like name such as "Bold Italic".
func (s FontStyle) String() string {
	switch {
	case s.IsBold() && s.Slant == SlantItalic:
		return "Bold Italic"
	case s.IsBold():
		return "Bold"
	case s.Slant == SlantItalic:
		return "Italic"
	default:
		return "Regular"
	}
}

// Decoration is a set of text decoration lines.
type Decoration uint8

const (
	DecorationUnderline Decoration = 1 << iota
	DecorationLineThrough

	DecorationNone Decoration = 0
)

// Has reports whether d includes every line in o.
func (d Decoration) Has(o Decoration) bool {
	return d&o == o
}

// TextStyle describes the appearance of one run of text.
// TextStyle is comparable; equal styles share shaping and font resolution.
type TextStyle struct {
	// Family is the font family name. Empty selects the collection's
	// default family.
	Family string

	// Size is the font size in pixels per em.
	Size float64

	// Color is the fill color for glyphs and decorations.
	Color color.NRGBA

	// Weight is the requested weight. Zero means WeightNormal.
	Weight Weight

	Slant      Slant
	Decoration Decoration
}

// FontStyle returns the face selector for s.
func (s TextStyle) FontStyle() FontStyle {
	w := s.Weight
	if w == 0 {
		w = WeightNormal
	}
	return FontStyle{Weight: w, Slant: s.Slant}
}

// DefaultFontSize is used when a TextStyle has no positive size.
const DefaultFontSize = 15

// Ellipsis is the default string appended to truncated lines.
const Ellipsis = "..."

// ParagraphStyle holds paragraph-level options.
type ParagraphStyle struct {
	Align Alignment

	// MaxLines limits the number of lines. Zero means unlimited.
	MaxLines int

	// Ellipsis is appended to the last line when MaxLines truncates the
	// text. Empty means plain truncation.
	Ellipsis string

	// LineHeight multiplies each line's natural height. Zero means 1.
	LineHeight float64

	// Locale is a BCP 47 language tag passed to the shaper. Empty means "en".
	Locale string

	// Default is the style used for metrics of empty lines.
	Default TextStyle
}

// Run is a piece of text with a single style.
type Run struct {
	Text  string
	Style TextStyle
}

// Rect is an axis-aligned rectangle in paragraph coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Left >= r.Right || r.Top >= r.Bottom
}

// Contains reports whether (x, y) lies within r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// TextBox is one rectangle covering part of a character range.
// A range that spans several lines produces one box per line.
type TextBox struct {
	Rect Rect

	// Start and End are the character offsets covered by this box.
	Start, End int
}

// RectHeightStyle controls the vertical extent of boxes from RectsForRange.
type RectHeightStyle uint8

const (
	// HeightTight uses the ascent and descent of the fonts in the range.
	HeightTight RectHeightStyle = iota
	// HeightMax uses the full height of the line.
	HeightMax
)

// RectWidthStyle controls the horizontal extent of boxes from RectsForRange.
type RectWidthStyle uint8

const (
	// WidthTight covers only the characters in the range.
	WidthTight RectWidthStyle = iota
	// WidthMax extends a box to the end of its line when the range
	// continues on the next line.
	WidthMax
)
