// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/richtext"
	"github.com/gogpu/richtext/cache"
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithBottomUp uploads rows in the image's native bottom-up order.
func WithBottomUp() Option {
	return func(u *Uploader) {
		u.bottomUp = true
	}
}

// Format returns the pixel format of uploaded textures.
func Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Uploader creates one GPU texture per distinct image and keeps it until
// it is released.
type Uploader struct {
	textures *cache.Cache[richtext.Digest, any]
	bottomUp bool
	closed   bool
}

// NewUploader creates an empty uploader.
func NewUploader(opts ...Option) *Uploader {
	u := &Uploader{
		// GPU textures must be destroyed explicitly, so the cache never
		// evicts on its own.
		textures: cache.New[richtext.Digest, any](0),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload returns the GPU texture for img, creating it on first use.
func (u *Uploader) Upload(dc gpucontext.TextureDrawer, img *richtext.Image) (gpucontext.Texture, error) {
	if u.closed {
		return nil, ErrUploaderClosed
	}
	if img == nil {
		return nil, richtext.ErrNilImage
	}
	if dc == nil {
		return nil, ErrInvalidDrawContext
	}

	tex, ok := u.textures.Get(img.ID())
	if !ok {
		creator := dc.TextureCreator()
		if creator == nil {
			return nil, ErrInvalidRenderer
		}

		realTex, err := creator.NewTextureFromRGBA(img.Width(), img.Height(), u.pixels(img))
		if err != nil {
			return nil, fmt.Errorf("gputex: NewTextureFromRGBA failed: %w", err)
		}

		// richtext pixels are premultiplied.
		if pt, ok := realTex.(interface{ SetPremultiplied(bool) }); ok {
			pt.SetPremultiplied(true)
		}

		tex = realTex
		u.textures.Set(img.ID(), tex)
		richtext.Logger().Debug("gputex: texture uploaded",
			"id", img.ID().Short(), "width", img.Width(), "height", img.Height())
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return nil, ErrInvalidTexture
	}
	return gpuTex, nil
}

// pixels returns the upload buffer for img.
func (u *Uploader) pixels(img *richtext.Image) []byte {
	if u.bottomUp {
		return img.Pix()
	}
	return img.RGBA().Pix
}

// Has reports whether a texture exists for the image with the given ID.
func (u *Uploader) Has(id richtext.Digest) bool {
	_, ok := u.textures.Get(id)
	return ok
}

// Release destroys the texture for the image with the given ID.
// It reports whether a texture was released.
func (u *Uploader) Release(id richtext.Digest) bool {
	tex, ok := u.textures.Get(id)
	if !ok {
		return false
	}
	u.textures.Delete(id)
	destroy(tex)
	return true
}

// Len returns the number of live textures.
func (u *Uploader) Len() int {
	return u.textures.Len()
}

// Close destroys every texture. Upload fails afterwards.
func (u *Uploader) Close() {
	if u.closed {
		return
	}
	u.textures.Range(func(_ richtext.Digest, tex any) bool {
		destroy(tex)
		return true
	})
	u.textures.Clear()
	u.closed = true
}

func destroy(tex any) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
