// Package richtext renders styled text written in a small markup language
// into cached, GPU-ready images.
//
// # Overview
//
// A TextTexture holds text and style properties. When read, it parses the
// text (see package markup), lays it out with HarfBuzz shaping (see
// package layout), rasterizes it into an Image and stores the result in a
// content-addressed TextureCache. Textures with identical inputs share one
// Image.
//
// # Quick Start
//
//	import "github.com/gogpu/richtext"
//
//	rc := richtext.New()
//
//	tex := rc.NewTexture()
//	tex.SetMarkup(true)
//	tex.SetFontSize(24)
//	tex.SetText("[b]Bold[/b] and [ref=more][color=#3399ff]a link[/color][/ref]")
//
//	if err := tex.Update(); err != nil {
//	    log.Fatal(err) // malformed [size=] value
//	}
//
//	surface := richtext.NewRGBASurface(400, 100)
//	tex.Render(surface, 10, 90) // (10, 90) is the bottom-left of the text
//
// # Markup
//
//	[b] [i] [u] [s]                  bold, italic, underline, strike-through
//	[font_family=Go Mono] [size=20]  font overrides
//	[color=ff0000] [color=#ff000080] color, 6 or 8 hex digits
//	[ref=name]...[/ref]              clickable reference span
//	[anchor=name]                    named position
//	&bl; &br; &amp;                  literal [ ] &
//
// Closing tags ([/b], [/size], ...) reset the property. Tags do not nest:
// [b][b]x[/b]y leaves y regular.
//
// # Coordinates
//
// Surfaces, reference zones and anchors use a top-left origin with Y
// growing downward. Image pixel rows are stored bottom-up for direct upload
// as GPU textures; ImageSurface flips them back.
//
// # Caching
//
// The cache key is RenderKey: the text plus every property that affects
// pixels, canonicalized so that float noise below 0.001 does not cause
// misses. The cache never evicts on its own; call Context.ClearCache after
// font changes or under memory pressure.
//
// # Logging
//
// richtext is silent by default. Use SetLogger to enable logging.
package richtext
