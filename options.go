package richtext

import (
	"log/slog"

	"github.com/gogpu/richtext/layout"
)

// DefaultMaxTextureSize is the default limit on either texture dimension.
const DefaultMaxTextureSize = 16384

// Option configures a Context during creation.
//
// Example:
//
//	fonts := layout.NewFontCollection(layout.WithDefaultFamily(layout.MonoFamily))
//	rc := richtext.New(richtext.WithFontCollection(fonts))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	fonts          *layout.FontCollection
	engine         Engine
	cache          *TextureCache
	logger         *slog.Logger
	maxTextureSize int
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{
		maxTextureSize: DefaultMaxTextureSize,
	}
}

// WithFontCollection sets the fonts used by the default layout engine.
func WithFontCollection(fonts *layout.FontCollection) Option {
	return func(o *options) {
		o.fonts = fonts
	}
}

// WithEngine replaces the layout engine. Use this for dependency
// injection of a custom paragraph engine.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithTextureCache shares an existing cache between contexts. Contexts
// share renders only when they use the same engine, or default engines
// over the same font collection.
func WithTextureCache(c *TextureCache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithLogger sets the logger for this context only. Without it the
// context logs through Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxTextureSize limits the width and height of rendered images.
// A size of 0 or less removes the limit.
func WithMaxTextureSize(size int) Option {
	return func(o *options) {
		o.maxTextureSize = size
	}
}
