package layout

// Engine builds and lays out paragraphs against one font collection.
type Engine struct {
	fonts *FontCollection
}

// NewEngine returns an engine using fonts. A nil collection gets the
// built-in fonts.
func NewEngine(fonts *FontCollection) *Engine {
	if fonts == nil {
		fonts = NewFontCollection()
	}
	return &Engine{fonts: fonts}
}

// Fonts returns the engine's font collection.
func (e *Engine) Fonts() *FontCollection {
	return e.fonts
}

// Layout shapes runs and lays them out at width.
func (e *Engine) Layout(style ParagraphStyle, runs []Run, width float64) (*Paragraph, error) {
	b := NewBuilder(style, e.fonts)
	for _, r := range runs {
		b.AddText(r.Text, r.Style)
	}
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	p.Layout(width)
	return p, nil
}
