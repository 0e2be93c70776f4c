package richtext

import (
	"image/color"
	"math"

	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// DefaultDisabledColor is the text color of a disabled label.
var DefaultDisabledColor = color.NRGBA{R: 255, G: 255, B: 255, A: 77}

// Label places a TextTexture in a widget rectangle.
//
// The texture is centered in the rectangle and snapped to whole pixels.
// Alignment only moves text within the texture, which spans the wrap width
// when one is set. Touches on reference zones are reported through
// OnRefPress.
//
// Label coordinates follow Surface: origin at the top-left, Y down.
type Label struct {
	tex *TextTexture

	x, y, w, h float64

	color         color.NRGBA
	disabledColor color.NRGBA
	disabled      bool

	// OnRefPress is called with the reference name when Touch hits a zone.
	OnRefPress func(name string)
}

// NewLabel creates a label with markup enabled.
func (c *Context) NewLabel() *Label {
	l := &Label{
		tex:           c.NewTexture(),
		color:         markup.White,
		disabledColor: DefaultDisabledColor,
	}
	l.tex.SetMarkup(true)
	return l
}

// Texture returns the label's texture for text and style settings.
// Use SetColor on the label rather than on the texture.
func (l *Label) Texture() *TextTexture {
	return l.tex
}

// SetText sets the label text.
func (l *Label) SetText(s string) {
	l.tex.SetText(s)
}

// SetAlign sets the horizontal alignment. "auto" is treated as left.
func (l *Label) SetAlign(name string) error {
	a, err := layout.ParseAlignment(name)
	if err != nil {
		return err
	}
	l.tex.SetAlign(a)
	return nil
}

// SetBounds sets the widget rectangle.
func (l *Label) SetBounds(x, y, w, h float64) {
	l.x, l.y, l.w, l.h = x, y, w, h
}

// Bounds returns the widget rectangle.
func (l *Label) Bounds() (x, y, w, h float64) {
	return l.x, l.y, l.w, l.h
}

// SetColor sets the text color used while enabled.
func (l *Label) SetColor(c color.NRGBA) {
	l.color = c
	l.syncColor()
}

// SetDisabledColor sets the text color used while disabled.
func (l *Label) SetDisabledColor(c color.NRGBA) {
	l.disabledColor = c
	l.syncColor()
}

// SetDisabled switches between the enabled and disabled colors.
func (l *Label) SetDisabled(disabled bool) {
	l.disabled = disabled
	l.syncColor()
}

// Disabled reports whether the label is disabled.
func (l *Label) Disabled() bool {
	return l.disabled
}

func (l *Label) syncColor() {
	if l.disabled {
		l.tex.SetColor(l.disabledColor)
	} else {
		l.tex.SetColor(l.color)
	}
}

// TextureSize returns the texture size in pixels.
func (l *Label) TextureSize() (width, height int) {
	return l.tex.Size()
}

// RenderPosition returns the top-left corner of the texture, centered in
// the widget and rounded to whole pixels.
func (l *Label) RenderPosition() (x, y int) {
	tw, th := l.tex.Size()
	x = int(math.Round(l.x + (l.w-float64(tw))/2))
	y = int(math.Round(l.y + (l.h-float64(th))/2))
	return x, y
}

// Render draws the label's texture onto s.
func (l *Label) Render(s Surface) error {
	x, y := l.RenderPosition()
	return l.tex.Render(s, float64(x), float64(y+l.tex.Height()))
}

// Touch reports whether (x, y) hits a reference zone and, if so, calls
// OnRefPress with its name.
func (l *Label) Touch(x, y float64) bool {
	zones := l.tex.Refs()
	if len(zones) == 0 {
		return false
	}
	px, py := l.RenderPosition()
	name, ok := RefAt(zones, x-float64(px), y-float64(py))
	if !ok {
		return false
	}
	if l.OnRefPress != nil {
		l.OnRefPress(name)
	}
	return true
}

// Refs returns the label's reference zones grouped by name, in texture
// coordinates.
func (l *Label) Refs() map[string][]layout.Rect {
	return GroupRefs(l.tex.Refs())
}

// Anchors returns the label's anchors by name. With duplicate names the
// last anchor wins.
func (l *Label) Anchors() map[string][2]float64 {
	out := make(map[string][2]float64)
	for _, a := range l.tex.Anchors() {
		out[a.Name] = [2]float64{a.X, a.Y}
	}
	return out
}
