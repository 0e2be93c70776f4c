package markup

import "image/color"

// NoSize is the FontSize sentinel meaning "no size override".
const NoSize = -1

// White is the fallback color for unparseable color tags.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Style is the cumulative style at a point in the markup stream.
//
// Zero-valued override fields mean "inherit from the element": an empty
// FontFamily, a FontSize <= 0 and HasColor == false all fall back to the
// base style of the text being laid out.
type Style struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool

	FontFamily string
	FontSize   int

	// Color is only meaningful while HasColor is set. Closing [/color]
	// clears HasColor and leaves Color untouched.
	Color    color.NRGBA
	HasColor bool
}

// DefaultStyle returns the style in effect at the start of the markup.
func DefaultStyle() Style {
	return Style{FontSize: NoSize, Color: White}
}

// SizeOverride returns the font size override, if any.
func (s Style) SizeOverride() (int, bool) {
	return s.FontSize, s.FontSize > 0
}

// ColorOverride returns the color override, if any.
func (s Style) ColorOverride() (color.NRGBA, bool) {
	return s.Color, s.HasColor
}

// Segment is a maximal run of literal text sharing one style snapshot.
// Text is already un-escaped.
type Segment struct {
	Text  string
	Style Style
}

// Ref is a named reference span. Names need not be unique.
type Ref struct {
	Name string

	// Start is the character offset where the reference begins.
	Start int

	// End is the offset where the reference was closed, either by [/ref],
	// by the next [ref=...] or by the end of the markup.
	End int
}

// Anchor is a named zero-width marker.
type Anchor struct {
	Name   string
	Offset int
}

// Result is the output of ParseWithRefs.
type Result struct {
	Segments []Segment
	Refs     []Ref
	Anchors  []Anchor

	// Length is the number of literal characters scanned, i.e. the offset
	// just past the last character.
	Length int
}

// Text returns the concatenated text of all segments.
func (r *Result) Text() string {
	return joinSegments(r.Segments)
}
