// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import (
	"math"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/richtext"
)

// Surface draws richtext images into a gogpu window.
type Surface struct {
	dc gpucontext.TextureDrawer
	up *Uploader
}

// NewSurface creates a Surface drawing through dc. Textures are taken
// from up, which outlives the surface; a surface is typically created
// once per frame.
func NewSurface(dc gpucontext.TextureDrawer, up *Uploader) *Surface {
	return &Surface{dc: dc, up: up}
}

// DrawImage implements richtext.Surface. Positions are rounded to whole
// pixels.
func (s *Surface) DrawImage(img *richtext.Image, x, y float64) error {
	if s.dc == nil {
		return ErrInvalidDrawContext
	}
	tex, err := s.up.Upload(s.dc, img)
	if err != nil {
		return err
	}
	return s.dc.DrawTexture(tex, float32(math.Round(x)), float32(math.Round(y)))
}

var _ richtext.Surface = (*Surface)(nil)
