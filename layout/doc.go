// Package layout lays out styled paragraphs and paints them into RGBA images.
//
// It is the paragraph engine behind richtext: a sequence of runs, each a
// piece of text with its own TextStyle, is shaped with HarfBuzz
// (github.com/go-text/typesetting), broken into lines at a wrap width and
// rasterized from glyph outlines (golang.org/x/image/font/sfnt and
// golang.org/x/image/vector).
//
// # Example usage
//
//	fonts := layout.NewFontCollection()
//	b := layout.NewBuilder(layout.ParagraphStyle{Align: layout.AlignCenter}, fonts)
//	b.AddText("Hello, ", layout.TextStyle{Size: 18, Color: white})
//	b.AddText("world", layout.TextStyle{Size: 18, Color: white, Weight: layout.WeightBold})
//	p, err := b.Build()
//	if err != nil {
//	    return err
//	}
//	p.Layout(300)
//
//	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(p.LongestLine())), int(math.Ceil(p.Height()))))
//	p.Paint(img, 0, 0)
//
// # Coordinates
//
// All positions are in pixels with the origin at the paragraph's top-left
// corner and Y growing downward. Character offsets are rune indices into
// the concatenated text of all runs.
//
// # Fonts
//
// FontCollection resolves a family name and a FontStyle to a Typeface.
// The Go font families ("Go" and "Go Mono") are registered by default;
// additional fonts are added with FontCollection.LoadFile or Register.
package layout
