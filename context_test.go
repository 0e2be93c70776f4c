package richtext

import (
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/gogpu/richtext/layout"
)

func TestNewDefaults(t *testing.T) {
	rc := New()
	if rc.Fonts() == nil || rc.Cache() == nil || rc.engine == nil {
		t.Fatal("New() left nil collaborators")
	}
	if rc.maxTextureSize != DefaultMaxTextureSize {
		t.Errorf("maxTextureSize = %d", rc.maxTextureSize)
	}
	if rc.log() != Logger() {
		t.Error("context without WithLogger should use the package logger")
	}
}

func TestNewOptions(t *testing.T) {
	fonts := layout.NewFontCollection(layout.WithDefaultFamily(layout.MonoFamily))
	shared := NewTextureCache()
	l := slog.New(slog.NewTextHandler(os.Stderr, nil))

	rc := New(WithFontCollection(fonts), WithTextureCache(shared), WithLogger(l), WithMaxTextureSize(0))
	if rc.Fonts() != fonts || rc.Cache() != shared || rc.log() != l {
		t.Error("options not applied")
	}
	if rc.maxTextureSize != 0 {
		t.Errorf("maxTextureSize = %d, want 0", rc.maxTextureSize)
	}
}

func TestSharedTextureCache(t *testing.T) {
	shared := NewTextureCache()
	e := &fakeEngine{}
	a := New(WithEngine(e), WithTextureCache(shared)).NewTexture()
	b := New(WithEngine(e), WithTextureCache(shared)).NewTexture()
	a.SetText("same")
	b.SetText("same")
	if a.Image() != b.Image() || e.calls != 1 {
		t.Errorf("contexts sharing a cache did not share the image (calls=%d)", e.calls)
	}
	if shared.Bytes() != len(a.Image().Pix()) {
		t.Errorf("Bytes() = %d, want %d", shared.Bytes(), len(a.Image().Pix()))
	}
}

func TestSharedTextureCacheSeparatesFonts(t *testing.T) {
	shared := NewTextureCache()
	mono := layout.NewFontCollection(layout.WithDefaultFamily(layout.MonoFamily))

	render := func(rc *Context) *TextTexture {
		tex := rc.NewTexture()
		tex.SetText("iiiiiiii")
		return tex
	}

	proportional := render(New(WithTextureCache(shared)))
	monoShared := render(New(WithFontCollection(mono), WithTextureCache(shared)))
	monoAlone := render(New(WithFontCollection(layout.NewFontCollection(layout.WithDefaultFamily(layout.MonoFamily)))))

	if proportional.Image() == monoShared.Image() {
		t.Fatal("contexts with different fonts shared an image")
	}
	if monoShared.Width() != monoAlone.Width() {
		t.Errorf("mono width with shared cache = %d, want %d", monoShared.Width(), monoAlone.Width())
	}
	if proportional.Width() >= monoShared.Width() {
		t.Errorf("proportional width %d should be below mono width %d", proportional.Width(), monoShared.Width())
	}

	// A second context over the same collection reuses the render.
	again := render(New(WithFontCollection(mono), WithTextureCache(shared)))
	if again.Image() != monoShared.Image() {
		t.Error("contexts over the same fonts did not share the image")
	}
	if shared.Len() != 2 {
		t.Errorf("cache Len = %d, want 2", shared.Len())
	}
}

func TestContextLoadFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	rc := New(WithFontCollection(layout.NewFontCollection(layout.WithoutBuiltinFonts())))
	tex := rc.NewTexture()
	tex.SetText("x")
	if err := rc.LoadFont(path); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
	if fams := rc.Fonts().Families(); len(fams) != 1 || fams[0] != layout.MonoFamily {
		t.Errorf("Families() = %v", fams)
	}
	if tex.Image() == nil {
		t.Fatal("no image after loading a font")
	}

	rc.Cache().Insert(RenderKey{Text: "stale"}, &Entry{Width: 1, Height: 1})
	if err := rc.LoadFont(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("LoadFont(missing) succeeded")
	}
	if rc.Cache().Len() == 0 {
		t.Error("failed LoadFont cleared the cache")
	}
	if err := rc.LoadFont(path); err != nil {
		t.Fatal(err)
	}
	if rc.Cache().Len() != 0 {
		t.Error("LoadFont did not clear the cache")
	}
}

func inkCount(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestRenderWithLayoutEngine(t *testing.T) {
	rc := New()
	tex := rc.NewTexture()
	tex.SetMarkup(true)
	tex.SetFontSize(24)
	tex.SetText("Hello [ref=w][b]world[/b][/ref][anchor=end]")

	if err := tex.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	img := tex.Image()
	if img == nil {
		t.Fatal("no image")
	}
	if img.Width() != tex.Width() || img.Height() != tex.Height() {
		t.Errorf("image %dx%d, texture %dx%d", img.Width(), img.Height(), tex.Width(), tex.Height())
	}
	if inkCount(img.RGBA()) == 0 {
		t.Error("image is blank")
	}

	refs := tex.Refs()
	if len(refs) != 1 || refs[0].Name != "w" {
		t.Fatalf("refs = %+v", refs)
	}
	r := refs[0].Rect
	if r.Left <= 0 || r.Right > float64(tex.Width())+0.5 || r.Bottom > float64(tex.Height())+0.5 {
		t.Errorf("ref zone %+v outside %dx%d", r, tex.Width(), tex.Height())
	}

	anchors := tex.Anchors()
	if len(anchors) != 1 || anchors[0].X < r.Right-0.5 {
		t.Errorf("anchors = %+v, want after the ref", anchors)
	}

	s := NewRGBASurface(tex.Width()+10, tex.Height()+10)
	if err := tex.Render(s, 5, float64(tex.Height()+5)); err != nil {
		t.Fatal(err)
	}
	if inkCount(s.Target().(*image.RGBA)) == 0 {
		t.Error("surface is blank after Render")
	}
}

func TestRenderWrapAndShorten(t *testing.T) {
	rc := New()
	long := rc.NewTexture()
	long.SetText("the quick brown fox jumps over the lazy dog")

	wrapped := rc.NewTexture()
	wrapped.SetText(long.Text())
	wrapped.SetTextWidth(float64(long.Width()) / 3)
	if wrapped.Height() < 2*long.Height() {
		t.Errorf("wrapped height %d, single line %d", wrapped.Height(), long.Height())
	}
	if wrapped.Width() > long.Width()/3+1 {
		t.Errorf("wrapped width %d exceeds %d", wrapped.Width(), long.Width()/3)
	}

	short := rc.NewTexture()
	short.SetText(long.Text())
	short.SetTextWidth(float64(long.Width()) / 3)
	short.SetShorten(true)
	if short.Height() != long.Height() {
		t.Errorf("shortened height %d, want %d", short.Height(), long.Height())
	}
}
