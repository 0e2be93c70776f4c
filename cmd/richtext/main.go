// Command richtext renders richtext markup to PNG and inspects how markup
// is parsed.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/muesli/termenv"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/layout"
	"github.com/gogpu/richtext/markup"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Verbose bool     `name:"verbose" short:"v" help:"Log cache and font activity to stderr"`
	Fonts   []string `name:"font" help:"Extra font files to register" type:"existingfile"`

	Render RenderCmd `cmd:"" help:"Render markup to a PNG image"`
	Parse  ParseCmd  `cmd:"" help:"Show styled segments, refs and anchors"`
	Escape EscapeCmd `cmd:"" help:"Escape text for use inside markup"`
	List   FontsCmd  `cmd:"" name:"fonts" help:"List available font families"`
}

// RenderCmd renders markup to PNG.
type RenderCmd struct {
	Text          string  `arg:"" help:"Markup to render"`
	Output        string  `name:"output" short:"o" help:"Output file (default: <digest>.png)" type:"path"`
	Family        string  `name:"family" short:"f" help:"Font family"`
	Size          float64 `name:"size" short:"s" default:"15" help:"Font size in pixels"`
	Color         string  `name:"color" short:"c" default:"ffffff" help:"Text color as RRGGBB or RRGGBBAA"`
	Width         float64 `name:"width" short:"w" default:"-1" help:"Wrap width in pixels (<= 0: no wrapping)"`
	MaxLines      int     `name:"max-lines" help:"Maximum number of lines (0: unlimited)"`
	Align         string  `name:"align" short:"a" default:"left" help:"left, center, right or justify"`
	LineHeight    float64 `name:"line-height" default:"1" help:"Line advance multiplier"`
	Shorten       bool    `name:"shorten" help:"Single line with ellipsis (needs --width)"`
	Plain         bool    `name:"plain" help:"Treat the text as plain text, not markup"`
	Bold          bool    `name:"bold" help:"Bold (plain text only)"`
	Italic        bool    `name:"italic" help:"Italic (plain text only)"`
	Underline     bool    `name:"underline" help:"Underline (plain text only)"`
	Strikethrough bool    `name:"strikethrough" help:"Strikethrough (plain text only)"`
}

func (c *RenderCmd) Run() error {
	col, ok := markup.ParseColor(c.Color)
	if !ok {
		return fmt.Errorf("invalid color %q", c.Color)
	}
	align, err := layout.ParseAlignment(c.Align)
	if err != nil {
		return err
	}

	rc, err := newContext()
	if err != nil {
		return err
	}

	tex := rc.NewTexture()
	tex.SetText(c.Text)
	tex.SetMarkup(!c.Plain)
	tex.SetFontFamily(c.Family)
	tex.SetFontSize(c.Size)
	tex.SetColor(col)
	tex.SetTextWidth(c.Width)
	tex.SetMaxLines(c.MaxLines)
	tex.SetAlign(align)
	tex.SetLineHeight(c.LineHeight)
	tex.SetShorten(c.Shorten)
	tex.SetBold(c.Bold)
	tex.SetItalic(c.Italic)
	tex.SetUnderline(c.Underline)
	tex.SetStrikethrough(c.Strikethrough)

	if err := tex.Update(); err != nil {
		return err
	}
	img := tex.Image()
	if img == nil {
		return fmt.Errorf("nothing to render (%dx%d)", tex.Width(), tex.Height())
	}

	output := c.Output
	if output == "" {
		output = outputName(tex.Key())
	}
	if err := img.SavePNG(output); err != nil {
		return err
	}

	fmt.Printf("Rendered %s (%dx%d, id %s)\n", output, img.Width(), img.Height(), img.ID().Short())
	for _, z := range tex.Refs() {
		fmt.Printf("  ref %-12s %v\n", z.Name, z.Rect)
	}
	for _, a := range tex.Anchors() {
		fmt.Printf("  anchor %-9s (%.1f, %.1f)\n", a.Name, a.X, a.Y)
	}
	return nil
}

// outputName names a render after the digest of its key, so equal
// renders land in the same file.
func outputName(k richtext.RenderKey) string {
	return k.Digest().Short() + ".png"
}

// ParseCmd prints the parse result of markup.
type ParseCmd struct {
	Text  string `arg:"" help:"Markup to parse"`
	Plain bool   `name:"plain" help:"Print segment text without terminal styling"`
}

func (c *ParseCmd) Run() error {
	res, err := markup.ParseWithRefs(c.Text)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(os.Stdout)
	if c.Plain {
		out = termenv.NewOutput(os.Stdout, termenv.WithProfile(termenv.Ascii))
	}
	printResult(out, res)
	return nil
}

func printResult(out *termenv.Output, res *markup.Result) {
	fmt.Fprintf(out, "%d segments\n", len(res.Segments))
	for i, seg := range res.Segments {
		fmt.Fprintf(out, "%3d  %-28s %s\n", i, describe(seg.Style), styled(out, seg))
	}
	for _, r := range res.Refs {
		fmt.Fprintf(out, "ref    %-12s [%d, %d)\n", r.Name, r.Start, r.End)
	}
	for _, a := range res.Anchors {
		fmt.Fprintf(out, "anchor %-12s %d\n", a.Name, a.Offset)
	}
}

// styled renders a segment's text with its style applied in the terminal.
func styled(out *termenv.Output, seg markup.Segment) termenv.Style {
	s := out.String(fmt.Sprintf("%q", seg.Text))
	st := seg.Style
	if st.Bold {
		s = s.Bold()
	}
	if st.Italic {
		s = s.Italic()
	}
	if st.Underline {
		s = s.Underline()
	}
	if st.Strikethrough {
		s = s.CrossOut()
	}
	if c, ok := st.ColorOverride(); ok {
		s = s.Foreground(out.Color("#" + markup.FormatColor(c)[:6]))
	}
	return s
}

// describe lists the non-default attributes of st.
func describe(st markup.Style) string {
	var parts []string
	for _, f := range []struct {
		on   bool
		name string
	}{
		{st.Bold, "b"},
		{st.Italic, "i"},
		{st.Underline, "u"},
		{st.Strikethrough, "s"},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if st.FontFamily != "" {
		parts = append(parts, "font="+st.FontFamily)
	}
	if size, ok := st.SizeOverride(); ok {
		parts = append(parts, fmt.Sprintf("size=%d", size))
	}
	if c, ok := st.ColorOverride(); ok {
		parts = append(parts, "color="+markup.FormatColor(c))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// EscapeCmd escapes text for markup.
type EscapeCmd struct {
	Text []string `arg:"" help:"Text to escape"`
}

func (c *EscapeCmd) Run() error {
	return writeEscaped(os.Stdout, strings.Join(c.Text, " "))
}

func writeEscaped(w io.Writer, text string) error {
	_, err := fmt.Fprintln(w, markup.Escape(text))
	return err
}

// FontsCmd lists font families.
type FontsCmd struct{}

func (c *FontsCmd) Run() error {
	rc, err := newContext()
	if err != nil {
		return err
	}
	return listFamilies(os.Stdout, rc.Fonts())
}

func listFamilies(w io.Writer, fonts *layout.FontCollection) error {
	def := fonts.DefaultFamily()
	for _, name := range fonts.Families() {
		mark := " "
		if strings.EqualFold(name, def) {
			mark = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, name); err != nil {
			return err
		}
	}
	return nil
}

// newContext creates a render context with the fonts named on the
// command line.
func newContext() (*richtext.Context, error) {
	rc := richtext.New()
	for _, path := range CLI.Fonts {
		if err := rc.LoadFont(path); err != nil {
			return nil, fmt.Errorf("load font %s: %w", filepath.Base(path), err)
		}
	}
	return rc, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("richtext"),
		kong.Description("Render and inspect richtext markup"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if CLI.Verbose {
		richtext.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
