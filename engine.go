package richtext

import (
	"reflect"

	"golang.org/x/image/draw"

	"github.com/gogpu/richtext/layout"
)

// Engine lays out styled runs into a Paragraph.
// The default engine is backed by package layout.
type Engine interface {
	Layout(style layout.ParagraphStyle, runs []layout.Run, width float64) (Paragraph, error)
}

// Paragraph is a laid out block of text.
// Coordinates have their origin at the top-left with Y growing downward.
type Paragraph interface {
	// LongestLine returns the width of the widest line.
	LongestLine() float64
	// Height returns the total height of all lines.
	Height() float64
	// Len returns the number of characters in the paragraph.
	Len() int
	// RectsForRange returns one box per line covered by [start, end).
	RectsForRange(start, end int, hs layout.RectHeightStyle, ws layout.RectWidthStyle) []layout.TextBox
	// CaretPosition returns the caret position before offset.
	CaretPosition(offset int) (x, y float64, ok bool)
	// Paint draws the paragraph with its top-left corner at (x, y).
	Paint(dst draw.Image, x, y float64)
}

type layoutEngine struct {
	e     *layout.Engine
	fonts *layout.FontCollection
}

// NewEngine returns the default engine over fonts.
func NewEngine(fonts *layout.FontCollection) Engine {
	return layoutEngine{e: layout.NewEngine(fonts), fonts: fonts}
}

// engineIdentity returns a comparable value that is equal for engines
// producing the same layouts, or nil when e has no usable identity.
// Default engines are identified by their font collection.
func engineIdentity(e Engine) any {
	if le, ok := e.(layoutEngine); ok {
		return le.fonts
	}
	if reflect.TypeOf(e).Kind() == reflect.Pointer {
		return e
	}
	return nil
}

func (le layoutEngine) Layout(style layout.ParagraphStyle, runs []layout.Run, width float64) (Paragraph, error) {
	p, err := le.e.Layout(style, runs, width)
	if err != nil {
		return nil, err
	}
	return p, nil
}
