package richtext

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/richtext/layout"
)

// Context owns the process-wide state shared by text textures: the font
// collection, the layout engine and the texture cache.
//
// Create one Context at startup and create textures from it. A Context is
// meant to be used from the rendering goroutine; only its cache is
// internally synchronized.
type Context struct {
	fonts          *layout.FontCollection
	engine         Engine
	cache          *TextureCache
	logger         *slog.Logger
	maxTextureSize int
	source         uint64
}

// New creates a Context.
//
// Example:
//
//	rc := richtext.New()
//	tex := rc.NewTexture()
//	tex.SetMarkup(true)
//	tex.SetText("[b]Hello[/b], [color=#ff8800]world[/color]")
//	w, h := tex.Width(), tex.Height()
func New(opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		fonts:          o.fonts,
		engine:         o.engine,
		cache:          o.cache,
		logger:         o.logger,
		maxTextureSize: o.maxTextureSize,
	}
	if c.fonts == nil {
		c.fonts = layout.NewFontCollection()
	}
	if c.engine == nil {
		c.engine = NewEngine(c.fonts)
	}
	if c.cache == nil {
		c.cache = NewTextureCache()
	}
	c.source = c.cache.source(engineIdentity(c.engine))
	return c
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Fonts returns the font collection.
func (c *Context) Fonts() *layout.FontCollection {
	return c.fonts
}

// Cache returns the texture cache.
func (c *Context) Cache() *TextureCache {
	return c.cache
}

// ClearCache drops every cached render. Textures holding images keep them
// until their next regeneration.
func (c *Context) ClearCache() {
	c.cache.Clear()
}

// LoadFont registers a font file and clears the cache, since cached renders
// may have used a fallback family.
func (c *Context) LoadFont(path string) error {
	if _, err := c.fonts.LoadFile(path); err != nil {
		return err
	}
	c.ClearCache()
	return nil
}

// NewTexture creates a text texture with default properties.
func (c *Context) NewTexture() *TextTexture {
	return newTextTexture(c)
}

// rasterize paints p into a new image of w x h pixels.
func (c *Context) rasterize(p Paragraph, w, h int) (*Image, error) {
	if limit := c.maxTextureSize; limit > 0 && (w > limit || h > limit) {
		return nil, fmt.Errorf("%w: %dx%d, limit %d", ErrTextureTooLarge, w, h, limit)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	p.Paint(rgba, 0, 0)
	return NewImage(rgba), nil
}
