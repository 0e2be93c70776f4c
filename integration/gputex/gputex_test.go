// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/richtext"
)

type fakeTexture struct {
	destroyed int
}

func (f *fakeTexture) Destroy() { f.destroyed++ }

// twoRows returns a 1x2 image: red on top, blue below.
func twoRows(t *testing.T) *richtext.Image {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(0, 1, color.RGBA{B: 255, A: 255})
	return richtext.NewImage(src)
}

func TestFormat(t *testing.T) {
	if Format() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format() = %v, want RGBA8Unorm", Format())
	}
}

func TestPixelsRowOrder(t *testing.T) {
	img := twoRows(t)
	red := []byte{255, 0, 0, 255}

	tests := []struct {
		name    string
		opts    []Option
		wantTop []byte
	}{
		{"top-down by default", nil, red},
		{"bottom-up", []Option{WithBottomUp()}, []byte{0, 0, 255, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewUploader(tt.opts...).pixels(img)
			if len(got) != 8 {
				t.Fatalf("len = %d, want 8", len(got))
			}
			if !bytes.Equal(got[:4], tt.wantTop) {
				t.Errorf("first row = %v, want %v", got[:4], tt.wantTop)
			}
		})
	}
}

func TestUploadErrors(t *testing.T) {
	u := NewUploader()
	if _, err := u.Upload(nil, nil); !errors.Is(err, richtext.ErrNilImage) {
		t.Errorf("nil image: err = %v, want ErrNilImage", err)
	}
	if _, err := u.Upload(nil, twoRows(t)); !errors.Is(err, ErrInvalidDrawContext) {
		t.Errorf("nil dc: err = %v, want ErrInvalidDrawContext", err)
	}

	u.Close()
	if _, err := u.Upload(nil, twoRows(t)); !errors.Is(err, ErrUploaderClosed) {
		t.Errorf("closed: err = %v, want ErrUploaderClosed", err)
	}
}

func TestReleaseDestroysTexture(t *testing.T) {
	u := NewUploader()
	img := twoRows(t)
	tex := &fakeTexture{}
	u.textures.Set(img.ID(), tex)

	if !u.Has(img.ID()) {
		t.Fatal("Has = false after insert")
	}
	if !u.Release(img.ID()) {
		t.Fatal("Release = false, want true")
	}
	if tex.destroyed != 1 {
		t.Errorf("destroyed %d times, want 1", tex.destroyed)
	}
	if u.Release(img.ID()) {
		t.Error("second Release = true, want false")
	}
	if u.Len() != 0 {
		t.Errorf("Len = %d, want 0", u.Len())
	}
}

func TestCloseDestroysAll(t *testing.T) {
	u := NewUploader()
	var texs []*fakeTexture
	for i := 0; i < 3; i++ {
		src := image.NewRGBA(image.Rect(0, 0, i+1, 1))
		tex := &fakeTexture{}
		texs = append(texs, tex)
		u.textures.Set(richtext.NewImage(src).ID(), tex)
	}
	// Non-destroyable textures are dropped silently.
	u.textures.Set(richtext.Digest{1}, "opaque")

	u.Close()
	u.Close()
	for i, tex := range texs {
		if tex.destroyed != 1 {
			t.Errorf("texture %d destroyed %d times, want 1", i, tex.destroyed)
		}
	}
	if u.Len() != 0 {
		t.Errorf("Len = %d after Close, want 0", u.Len())
	}
}

func TestSurfaceNilDrawContext(t *testing.T) {
	s := NewSurface(nil, NewUploader())
	if err := s.DrawImage(twoRows(t), 0, 0); !errors.Is(err, ErrInvalidDrawContext) {
		t.Errorf("err = %v, want ErrInvalidDrawContext", err)
	}
}
