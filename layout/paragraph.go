package layout

import (
	"fmt"
	"math"

	"github.com/go-text/typesetting/language"
	textlang "golang.org/x/text/language"
)

// Builder accumulates styled runs for one paragraph.
type Builder struct {
	style ParagraphStyle
	fonts *FontCollection
	runs  []Run
}

// NewBuilder creates a builder that resolves fonts from fonts.
func NewBuilder(style ParagraphStyle, fonts *FontCollection) *Builder {
	return &Builder{style: style, fonts: fonts}
}

// AddText appends a run. Empty text is ignored.
func (b *Builder) AddText(text string, style TextStyle) {
	if text == "" {
		return
	}
	b.runs = append(b.runs, Run{Text: text, Style: style})
}

// Build resolves fonts and shapes the accumulated runs.
// The returned paragraph must be laid out with Layout before it is queried.
func (b *Builder) Build() (*Paragraph, error) {
	lang := language.NewLanguage("en")
	if b.style.Locale != "" {
		tag, err := textlang.Parse(b.style.Locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidLocale, b.style.Locale, err)
		}
		lang = language.NewLanguage(tag.String())
	}

	p := &Paragraph{
		style: b.style,
		lang:  lang,
		index: make(map[TextStyle]int),
	}

	def, err := p.resolve(b.fonts, b.style.Default)
	if err != nil {
		return nil, err
	}
	p.def = def

	for _, r := range b.runs {
		si, err := p.resolve(b.fonts, r.Style)
		if err != nil {
			return nil, err
		}
		for _, ch := range r.Text {
			p.text = append(p.text, ch)
			p.runeStyle = append(p.runeStyle, si)
		}
	}

	p.shape()
	return p, nil
}

// resolvedStyle is a TextStyle bound to a concrete typeface.
type resolvedStyle struct {
	TextStyle
	face    *Typeface
	metrics Metrics

	// fauxBold and fauxItalic are set when the matched face lacks the
	// requested weight or slant.
	fauxBold   bool
	fauxItalic bool
}

// Paragraph is a shaped, laid out block of styled text.
type Paragraph struct {
	style ParagraphStyle
	lang  language.Language

	styles []resolvedStyle
	index  map[TextStyle]int
	def    int

	text      []rune
	runeStyle []int
	advances  []float64
	glyphs    []glyph

	lines    []line
	width    float64
	longest  float64
	height   float64
	exceeded bool
}

// line is one laid out line. It covers the runes [start, end); a hard
// line break between lines belongs to neither.
type line struct {
	start, end int

	// trimmed is end with trailing spaces removed.
	trimmed int

	// xs holds the x position of every rune boundary in [start, end],
	// alignment included.
	xs []float64

	// width is the content width without trailing spaces, ellipsis included.
	width float64

	top, ascent, descent float64

	hardBreak bool

	ellipsis      []glyph
	ellipsisStyle int
	ellipsisWidth float64
}

func (p *Paragraph) resolve(fonts *FontCollection, ts TextStyle) (int, error) {
	if ts.Size <= 0 {
		ts.Size = DefaultFontSize
	}
	if i, ok := p.index[ts]; ok {
		return i, nil
	}
	if fonts == nil {
		return 0, ErrNoFonts
	}

	want := ts.FontStyle()
	tf := fonts.Match(ts.Family, want)
	if tf == nil {
		return 0, ErrNoFonts
	}

	rs := resolvedStyle{
		TextStyle:  ts,
		face:       tf,
		metrics:    tf.Metrics(ts.Size),
		fauxBold:   want.IsBold() && !tf.style.IsBold(),
		fauxItalic: want.Slant == SlantItalic && tf.style.Slant != SlantItalic,
	}
	p.styles = append(p.styles, rs)
	p.index[ts] = len(p.styles) - 1
	return len(p.styles) - 1, nil
}

// shape shapes maximal runs of equal style, skipping hard line breaks.
func (p *Paragraph) shape() {
	n := len(p.text)
	p.advances = make([]float64, n)
	p.glyphs = p.glyphs[:0]

	for start := 0; start < n; {
		if p.text[start] == '\n' {
			start++
			continue
		}
		end := start + 1
		for end < n && p.text[end] != '\n' && p.runeStyle[end] == p.runeStyle[start] {
			end++
		}
		st := p.styles[p.runeStyle[start]]
		p.glyphs = append(p.glyphs, shapeRange(p.text, start, end, st.face, st.Size, p.lang, p.advances)...)
		start = end
	}
}

// Layout breaks the paragraph into lines no wider than width.
// A width that is not positive or is infinite means no wrapping.
func (p *Paragraph) Layout(width float64) {
	if !(width > 0) || math.IsInf(width, 1) {
		width = math.Inf(1)
	}
	p.width = width
	p.exceeded = false
	p.lines = p.breakLines(width)
	p.applyMaxLines(width)
	p.positionLines(width)
}

func (p *Paragraph) breakLines(width float64) []line {
	n := len(p.text)
	if n == 0 {
		return nil
	}

	var lines []line
	for start := 0; ; {
		end := start
		for end < n && p.text[end] != '\n' {
			end++
		}
		for _, r := range wrapRange(p.text, p.advances, start, end, width) {
			lines = append(lines, line{start: r[0], end: r[1]})
		}
		lines[len(lines)-1].hardBreak = true
		if end >= n {
			break
		}
		start = end + 1
	}
	return lines
}

func (p *Paragraph) applyMaxLines(width float64) {
	limit := p.style.MaxLines
	if limit <= 0 || len(p.lines) <= limit {
		return
	}
	p.lines = p.lines[:limit]
	p.exceeded = true

	ln := &p.lines[limit-1]
	ln.hardBreak = true
	if p.style.Ellipsis == "" {
		return
	}

	si := p.def
	if ln.end > ln.start {
		si = p.runeStyle[ln.end-1]
	}
	st := p.styles[si]
	ell := []rune(p.style.Ellipsis)
	ellAdv := make([]float64, len(ell))
	ln.ellipsis = shapeRange(ell, 0, len(ell), st.face, st.Size, p.lang, ellAdv)
	ln.ellipsisStyle = si
	for _, a := range ellAdv {
		ln.ellipsisWidth += a
	}

	for ln.end > ln.start && p.span(ln.start, trimTrailingSpaces(p.text, ln.start, ln.end))+ln.ellipsisWidth > width {
		ln.end--
	}
	ln.end = trimTrailingSpaces(p.text, ln.start, ln.end)
}

// span returns the summed advance of text[start:end].
func (p *Paragraph) span(start, end int) float64 {
	w := 0.0
	for i := start; i < end; i++ {
		w += p.advances[i]
	}
	return w
}

// metricsOf returns the largest ascent and descent among the styles used
// in text[start:end], or those of the default style for an empty range.
func (p *Paragraph) metricsOf(start, end int) (ascent, descent float64) {
	if start >= end {
		m := p.styles[p.def].metrics
		if start > 0 && start <= len(p.text) {
			m = p.styles[p.runeStyle[start-1]].metrics
		}
		return m.Ascent, m.Descent
	}
	for i := start; i < end; i++ {
		m := p.styles[p.runeStyle[i]].metrics
		ascent = math.Max(ascent, m.Ascent)
		descent = math.Max(descent, m.Descent)
	}
	return ascent, descent
}

func (p *Paragraph) positionLines(width float64) {
	lh := p.style.LineHeight
	if lh <= 0 {
		lh = 1
	}

	top, longest := 0.0, 0.0
	for i := range p.lines {
		ln := &p.lines[i]
		ln.trimmed = trimTrailingSpaces(p.text, ln.start, ln.end)
		ln.width = p.span(ln.start, ln.trimmed) + ln.ellipsisWidth

		asc, desc := p.metricsOf(ln.start, ln.end)
		ln.ascent, ln.descent = asc*lh, desc*lh
		ln.top = top
		top += ln.ascent + ln.descent
		longest = math.Max(longest, ln.width)
	}
	p.height = top
	p.longest = longest

	container := width
	if math.IsInf(width, 1) {
		container = longest
	}

	for i := range p.lines {
		ln := &p.lines[i]
		offset, stretch := 0.0, 0.0
		switch p.style.Align {
		case AlignCenter:
			offset = (container - ln.width) / 2
		case AlignRight:
			offset = container - ln.width
		case AlignJustify:
			if !ln.hardBreak && !math.IsInf(width, 1) {
				if spaces := p.countSpaces(ln.start, ln.trimmed); spaces > 0 {
					stretch = (container - ln.width) / float64(spaces)
				}
			}
		}

		ln.xs = make([]float64, ln.end-ln.start+1)
		x := offset
		ln.xs[0] = x
		for j := ln.start; j < ln.end; j++ {
			x += p.advances[j]
			if stretch > 0 && j < ln.trimmed && isSpace(p.text[j]) {
				x += stretch
			}
			ln.xs[j-ln.start+1] = x
		}
	}
}

func (p *Paragraph) countSpaces(start, end int) int {
	n := 0
	for i := start; i < end; i++ {
		if isSpace(p.text[i]) {
			n++
		}
	}
	return n
}

// Text returns the paragraph text.
func (p *Paragraph) Text() string {
	return string(p.text)
}

// Len returns the number of characters (runes) in the paragraph.
func (p *Paragraph) Len() int {
	return len(p.text)
}

// LongestLine returns the width of the widest line, trailing spaces excluded.
func (p *Paragraph) LongestLine() float64 {
	return p.longest
}

// Height returns the total height of all lines.
func (p *Paragraph) Height() float64 {
	return p.height
}

// LineCount returns the number of laid out lines.
func (p *Paragraph) LineCount() int {
	return len(p.lines)
}

// DidExceedMaxLines reports whether MaxLines truncated the text.
func (p *Paragraph) DidExceedMaxLines() bool {
	return p.exceeded
}

// RectsForRange returns the boxes covering the characters [start, end).
// Characters hidden by MaxLines have no boxes.
func (p *Paragraph) RectsForRange(start, end int, hs RectHeightStyle, ws RectWidthStyle) []TextBox {
	start = max(start, 0)
	end = min(end, len(p.text))
	if start >= end {
		return nil
	}

	var boxes []TextBox
	for li := range p.lines {
		ln := &p.lines[li]
		a, b := max(start, ln.start), min(end, ln.end)
		if a >= b {
			continue
		}

		left, right := ln.xs[a-ln.start], ln.xs[b-ln.start]
		if ws == WidthMax && end > ln.end && li < len(p.lines)-1 {
			right = math.Max(right, ln.xs[len(ln.xs)-1])
		}
		if right <= left {
			continue
		}

		var top, bottom float64
		if hs == HeightMax {
			top, bottom = ln.top, ln.top+ln.ascent+ln.descent
		} else {
			asc, desc := p.metricsOf(a, b)
			baseline := ln.top + ln.ascent
			top, bottom = baseline-asc, baseline+desc
		}

		boxes = append(boxes, TextBox{
			Rect:  Rect{Left: left, Top: top, Right: right, Bottom: bottom},
			Start: a,
			End:   b,
		})
	}
	return boxes
}

// CaretPosition returns the top of the line and the x position of a caret
// placed before the character at offset. An offset equal to a line's end
// places the caret after that line's last character.
func (p *Paragraph) CaretPosition(offset int) (x, y float64, ok bool) {
	if offset < 0 || offset > len(p.text) {
		return 0, 0, false
	}
	for li := range p.lines {
		ln := &p.lines[li]
		if offset >= ln.start && offset < ln.end {
			return ln.xs[offset-ln.start], ln.top, true
		}
	}
	for li := range p.lines {
		ln := &p.lines[li]
		if offset == ln.end {
			return ln.xs[len(ln.xs)-1], ln.top, true
		}
	}
	return 0, 0, false
}
