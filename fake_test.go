package richtext

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/richtext/layout"
)

// fakeEngine lays text out on a single line where every character is
// half as wide as its font size. It counts Layout calls.
type fakeEngine struct {
	calls     int
	lastRuns  []layout.Run
	lastStyle layout.ParagraphStyle
	lastWidth float64
}

func (e *fakeEngine) Layout(style layout.ParagraphStyle, runs []layout.Run, width float64) (Paragraph, error) {
	e.calls++
	e.lastRuns = runs
	e.lastStyle = style
	e.lastWidth = width

	p := &fakeParagraph{xs: []float64{0}}
	for _, r := range runs {
		size := r.Style.Size
		for range r.Text {
			p.xs = append(p.xs, p.xs[len(p.xs)-1]+size/2)
			p.height = math.Max(p.height, size)
		}
		if p.color == (color.NRGBA{}) {
			p.color = r.Style.Color
		}
	}
	return p, nil
}

type fakeParagraph struct {
	xs     []float64
	height float64
	color  color.NRGBA
}

func (p *fakeParagraph) LongestLine() float64 { return p.xs[len(p.xs)-1] }
func (p *fakeParagraph) Height() float64      { return p.height }
func (p *fakeParagraph) Len() int             { return len(p.xs) - 1 }

func (p *fakeParagraph) RectsForRange(start, end int, _ layout.RectHeightStyle, _ layout.RectWidthStyle) []layout.TextBox {
	start, end = max(start, 0), min(end, p.Len())
	if start >= end {
		return nil
	}
	return []layout.TextBox{{
		Rect:  layout.Rect{Left: p.xs[start], Top: 0, Right: p.xs[end], Bottom: p.height},
		Start: start,
		End:   end,
	}}
}

func (p *fakeParagraph) CaretPosition(offset int) (x, y float64, ok bool) {
	if offset < 0 || offset > p.Len() {
		return 0, 0, false
	}
	return p.xs[offset], 0, true
}

// Paint fills the top half of the text block.
func (p *fakeParagraph) Paint(dst draw.Image, x, y float64) {
	r := image.Rect(int(x), int(y), int(x+p.LongestLine()), int(y+p.height/2))
	draw.Draw(dst, r, image.NewUniform(p.color), image.Point{}, draw.Src)
}

// recordingSurface records DrawImage calls.
type recordingSurface struct {
	calls []drawCall
}

type drawCall struct {
	img  *Image
	x, y float64
}

func (s *recordingSurface) DrawImage(img *Image, x, y float64) error {
	s.calls = append(s.calls, drawCall{img: img, x: x, y: y})
	return nil
}

func newFakeContext(opts ...Option) (*Context, *fakeEngine) {
	e := &fakeEngine{}
	return New(append([]Option{WithEngine(e)}, opts...)...), e
}
