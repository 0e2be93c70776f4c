package richtext

import (
	"errors"
	"image/color"
	"math"

	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// TextTexture renders a piece of text, optionally written in markup, into
// a shared Image.
//
// Setters only record the change and mark the texture dirty. The first
// read after a change (Width, Height, Size, Image, Refs, Anchors, Render,
// Update) regenerates: it looks the render key up in the context's cache
// and, on a miss, parses, lays out and rasterizes the text, then stores
// the result. Reading again without an intervening change does no work.
//
// TextTexture is not safe for concurrent use.
type TextTexture struct {
	ctx *Context

	text          string
	markup        bool
	fontFamily    string
	fontSize      float64
	color         color.NRGBA
	bold          bool
	italic        bool
	underline     bool
	strikethrough bool
	lineHeight    float64
	width         float64
	maxLines      int
	align         layout.Alignment
	shorten       bool

	dirty bool

	image   *Image
	w, h    int
	refs    []RefZone
	anchors []Anchor
	err     error

	// renders counts regenerations that missed the cache.
	renders int
}

func newTextTexture(ctx *Context) *TextTexture {
	return &TextTexture{
		ctx:        ctx,
		fontSize:   layout.DefaultFontSize,
		color:      markup.White,
		lineHeight: 1,
		width:      -1,
		dirty:      true,
	}
}

func set[T comparable](t *TextTexture, field *T, v T) {
	if *field != v {
		*field = v
		t.dirty = true
	}
}

// SetText sets the text. With markup enabled it is parsed as markup.
func (t *TextTexture) SetText(s string) { set(t, &t.text, s) }

// SetMarkup enables or disables markup parsing.
func (t *TextTexture) SetMarkup(on bool) { set(t, &t.markup, on) }

// SetFontFamily sets the base font family. Empty selects the default.
func (t *TextTexture) SetFontFamily(family string) { set(t, &t.fontFamily, family) }

// SetFontSize sets the base font size in pixels.
func (t *TextTexture) SetFontSize(size float64) { set(t, &t.fontSize, size) }

// SetColor sets the base text color.
func (t *TextTexture) SetColor(c color.NRGBA) { set(t, &t.color, c) }

// SetBold sets the bold flag. It applies only when markup is disabled.
func (t *TextTexture) SetBold(on bool) { set(t, &t.bold, on) }

// SetItalic sets the italic flag. It applies only when markup is disabled.
func (t *TextTexture) SetItalic(on bool) { set(t, &t.italic, on) }

// SetUnderline sets the underline flag. It applies only when markup is disabled.
func (t *TextTexture) SetUnderline(on bool) { set(t, &t.underline, on) }

// SetStrikethrough sets the strike-through flag. It applies only when
// markup is disabled.
func (t *TextTexture) SetStrikethrough(on bool) { set(t, &t.strikethrough, on) }

// SetLineHeight sets the line height multiplier.
func (t *TextTexture) SetLineHeight(h float64) { set(t, &t.lineHeight, h) }

// SetTextWidth sets the wrap width. A value of 0 or less disables wrapping.
func (t *TextTexture) SetTextWidth(w float64) {
	if !(w > 0) {
		w = -1
	}
	set(t, &t.width, w)
}

// SetMaxLines limits the number of lines; extra text is replaced by an
// ellipsis. Zero means unlimited.
func (t *TextTexture) SetMaxLines(n int) { set(t, &t.maxLines, max(n, 0)) }

// SetAlign sets the horizontal alignment.
func (t *TextTexture) SetAlign(a layout.Alignment) { set(t, &t.align, a) }

// SetShorten truncates the text to a single line ending in an ellipsis
// when a wrap width is set.
func (t *TextTexture) SetShorten(on bool) { set(t, &t.shorten, on) }

// Text returns the current text.
func (t *TextTexture) Text() string { return t.text }

// Markup reports whether markup parsing is enabled.
func (t *TextTexture) Markup() bool { return t.markup }

// Color returns the base text color.
func (t *TextTexture) Color() color.NRGBA { return t.color }

// Dirty reports whether the texture must regenerate on the next read.
func (t *TextTexture) Dirty() bool { return t.dirty }

// Key returns the canonical render key for the current properties.
func (t *TextTexture) Key() RenderKey {
	return RenderKey{
		Text:          t.text,
		FontFamily:    t.fontFamily,
		FontSize:      t.fontSize,
		Color:         t.color,
		Markup:        t.markup,
		Bold:          t.bold,
		Italic:        t.italic,
		Underline:     t.underline,
		Strikethrough: t.strikethrough,
		LineHeight:    t.lineHeight,
		Width:         t.width,
		MaxLines:      t.maxLines,
		Align:         t.align,
		Shorten:       t.shorten,
		Source:        t.ctx.source,
	}.Canonical()
}

// Update regenerates the texture if it is dirty and returns the error of
// the last regeneration, such as a markup error.
func (t *TextTexture) Update() error {
	if t.dirty {
		t.regenerate()
	}
	return t.err
}

// Err returns the error of the last regeneration without regenerating.
func (t *TextTexture) Err() error {
	return t.err
}

// Width returns the image width in pixels. With a wrap width and an
// alignment other than left, a non-empty texture spans the whole wrap
// width, rounded up, so that aligned lines keep their position.
func (t *TextTexture) Width() int {
	_ = t.Update()
	return t.w
}

// Height returns the image height in pixels.
func (t *TextTexture) Height() int {
	_ = t.Update()
	return t.h
}

// Size returns the image size in pixels.
func (t *TextTexture) Size() (width, height int) {
	_ = t.Update()
	return t.w, t.h
}

// Image returns the rendered image, or nil when there is nothing to draw.
func (t *TextTexture) Image() *Image {
	_ = t.Update()
	return t.image
}

// Refs returns the reference zones of the current text.
// The slice is shared with the cache and must not be modified.
func (t *TextTexture) Refs() []RefZone {
	_ = t.Update()
	return t.refs
}

// Anchors returns the anchors of the current text.
// The slice is shared with the cache and must not be modified.
func (t *TextTexture) Anchors() []Anchor {
	_ = t.Update()
	return t.anchors
}

// Render draws the image so that (x, y) is the bottom-left corner of the
// text block: the image's top-left lands at (x, y - height).
// Nothing is drawn when the texture has no image.
func (t *TextTexture) Render(s Surface, x, y float64) error {
	if s == nil {
		return ErrNilSurface
	}
	img := t.Image()
	if img == nil {
		return nil
	}
	return s.DrawImage(img, x, y-float64(t.h))
}

// Close releases the texture's reference to its image. The cache entry
// is unaffected. The next read regenerates.
func (t *TextTexture) Close() {
	t.reset()
	t.err = nil
	t.dirty = true
}

func (t *TextTexture) reset() {
	t.image = nil
	t.w, t.h = 0, 0
	t.refs = nil
	t.anchors = nil
}

func (t *TextTexture) adopt(e *Entry) {
	t.image = e.Image
	t.w, t.h = e.Width, e.Height
	t.refs = e.Refs
	t.anchors = e.Anchors
}

func (t *TextTexture) regenerate() {
	t.dirty = false
	t.err = nil
	log := t.ctx.log()

	key := t.Key()
	if e, ok := t.ctx.cache.Lookup(key); ok {
		t.adopt(e)
		log.Debug("richtext: texture cache hit", "key", key.Digest().Short())
		return
	}
	t.reset()
	t.renders++

	runs, res, err := t.runs()
	if err != nil {
		t.err = err
		return
	}

	p, err := t.ctx.engine.Layout(t.paragraphStyle(), runs, key.Width)
	if err != nil {
		t.err = err
		return
	}

	w := int(math.Ceil(p.LongestLine()))
	h := int(math.Ceil(p.Height()))
	if w <= 0 || h <= 0 {
		log.Debug("richtext: empty texture", "key", key.Digest().Short())
		return
	}
	if key.Width > 0 && t.align != layout.AlignLeft {
		// Aligned lines are positioned within the wrap width.
		w = int(math.Ceil(key.Width))
	}

	e := &Entry{Width: w, Height: h}
	if res != nil {
		e.Refs = resolveRefs(p, res.Refs)
		e.Anchors = resolveAnchors(p, res.Anchors)
	}

	img, err := t.ctx.rasterize(p, w, h)
	if err != nil {
		// Sizes and geometry stay valid; there is just nothing to draw.
		log.Warn("richtext: texture not rasterized", "err", err)
		e.Image = nil
		t.adopt(e)
		return
	}
	e.Image = img

	t.ctx.cache.Insert(key, e)
	t.adopt(e)
	log.Debug("richtext: texture rendered", "key", key.Digest().Short(), "width", w, "height", h)
}

// baseStyle returns the run style before markup overrides. Style flags
// apply only when markup is disabled.
func (t *TextTexture) baseStyle(withFlags bool) layout.TextStyle {
	ts := layout.TextStyle{
		Family: t.fontFamily,
		Size:   t.fontSize,
		Color:  t.color,
	}
	if withFlags {
		applyFlags(&ts, t.bold, t.italic, t.underline, t.strikethrough)
	}
	return ts
}

func applyFlags(ts *layout.TextStyle, bold, italic, underline, strike bool) {
	if bold {
		ts.Weight = layout.WeightBold
	}
	if italic {
		ts.Slant = layout.SlantItalic
	}
	if underline {
		ts.Decoration |= layout.DecorationUnderline
	}
	if strike {
		ts.Decoration |= layout.DecorationLineThrough
	}
}

// runs converts the text to styled runs. The markup result is nil when
// markup is disabled.
func (t *TextTexture) runs() ([]layout.Run, *markup.Result, error) {
	if !t.markup {
		return []layout.Run{{Text: t.text, Style: t.baseStyle(true)}}, nil, nil
	}

	res, err := markup.ParseWithRefs(t.text)
	if err != nil {
		var tagErr *markup.TagError
		if errors.As(err, &tagErr) {
			t.ctx.log().Debug("richtext: markup error", "tag", tagErr.Tag, "pos", tagErr.Pos)
		}
		return nil, nil, err
	}

	base := t.baseStyle(false)
	runs := make([]layout.Run, 0, len(res.Segments))
	for _, seg := range res.Segments {
		ts := base
		st := seg.Style
		applyFlags(&ts, st.Bold, st.Italic, st.Underline, st.Strikethrough)
		if st.FontFamily != "" {
			ts.Family = st.FontFamily
		}
		if size, ok := st.SizeOverride(); ok {
			ts.Size = float64(size)
		}
		if c, ok := st.ColorOverride(); ok {
			ts.Color = c
		}
		runs = append(runs, layout.Run{Text: seg.Text, Style: ts})
	}
	return runs, res, nil
}

func (t *TextTexture) paragraphStyle() layout.ParagraphStyle {
	ps := layout.ParagraphStyle{
		Align:      t.align,
		MaxLines:   t.maxLines,
		LineHeight: t.lineHeight,
		Default:    t.baseStyle(false),
	}
	if t.shorten && t.width > 0 {
		ps.MaxLines = 1
	}
	if ps.MaxLines > 0 {
		ps.Ellipsis = layout.Ellipsis
	}
	return ps
}
