// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gputex

import "errors"

// Upload errors.
var (
	// ErrInvalidDrawContext is returned when the draw context is nil.
	ErrInvalidDrawContext = errors.New("gputex: dc must implement gpucontext.TextureDrawer")

	// ErrInvalidRenderer is returned when the draw context has no
	// TextureCreator.
	ErrInvalidRenderer = errors.New("gputex: renderer must implement gpucontext.TextureCreator")

	// ErrInvalidTexture is returned when the created texture cannot be
	// drawn.
	ErrInvalidTexture = errors.New("gputex: texture does not implement gpucontext.Texture")

	// ErrUploaderClosed is returned by Upload after Close.
	ErrUploaderClosed = errors.New("gputex: uploader is closed")
)
