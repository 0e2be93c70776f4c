// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gputex uploads richtext images to gogpu textures.
//
// The data flow is:
//
//	TextTexture (markup) -> richtext.Image (CPU) -> GPU Texture -> Window
//
// # Architecture
//
// Uploader owns the GPU side of the texture cache. Images are keyed by
// their content digest, so every TextTexture that renders the same pixels
// shares one GPU texture:
//
//   - Upload creates the texture on first use through the draw context's
//     TextureCreator
//   - Release destroys the texture for one image
//   - Close destroys all of them
//
// Surface adapts a gpucontext.TextureDrawer to richtext.Surface, so that
// TextTexture.Render and Label.Render can draw straight into a window.
//
// # Usage
//
//	up := gputex.NewUploader()
//	defer up.Close()
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    s := gputex.NewSurface(dc.AsTextureDrawer(), up)
//	    _ = label.Render(s)
//	})
//
// # Pixel Format
//
// Textures are 8-bit RGBA with premultiplied alpha
// (gputypes.TextureFormatRGBA8Unorm). Rows are uploaded top-down by
// default, matching gogpu's top-left origin; WithBottomUp keeps the
// image's native bottom-up order for consumers with a bottom-left origin.
//
// # Thread Safety
//
// Uploader and Surface are NOT safe for concurrent use. Use them from the
// rendering goroutine.
package gputex
