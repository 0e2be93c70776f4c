package richtext

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Image is an immutable rendered text block.
//
// Rows are stored bottom-up: row 0 of Pix is the bottom row of the text.
// This is the texture coordinate convention of GPU consumers; Surface
// implementations that draw top-down flip it back. Pixels are 8-bit RGBA
// with premultiplied alpha, as in image.RGBA.
//
// An Image is shared between the texture cache and every TextTexture
// rendering the same key. It must not be modified.
type Image struct {
	id     Digest
	width  int
	height int
	stride int
	pix    []byte
}

// NewImage copies a top-down RGBA image into a new Image, flipping it
// vertically once and computing its content digest.
func NewImage(src *image.RGBA) *Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	stride := w * 4
	pix := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		from := src.PixOffset(b.Min.X, b.Min.Y+y)
		to := (h - 1 - y) * stride
		copy(pix[to:to+stride], src.Pix[from:from+stride])
	}

	img := &Image{width: w, height: h, stride: stride, pix: pix}
	img.id = digestPixels(w, h, pix)
	return img
}

func digestPixels(w, h int, pix []byte) Digest {
	hasher := blake3.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(w)) //nolint:gosec // dimensions are non-negative
	binary.LittleEndian.PutUint64(dims[8:], uint64(h)) //nolint:gosec // dimensions are non-negative
	hasher.Write(dims[:])
	hasher.Write(pix)

	var d Digest
	copy(d[:], hasher.Sum(nil))
	return d
}

// ID returns the BLAKE3 digest of the image's dimensions and pixels.
// Images with equal pixels have equal IDs.
func (img *Image) ID() Digest {
	return img.id
}

// Width returns the width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Stride returns the number of bytes per row.
func (img *Image) Stride() int {
	return img.stride
}

// Pix returns the bottom-up pixel data. The slice must not be modified.
func (img *Image) Pix() []byte {
	return img.pix
}

// RGBA returns a top-down copy of the image.
func (img *Image) RGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.width, img.height))
	for y := 0; y < img.height; y++ {
		from := (img.height - 1 - y) * img.stride
		copy(out.Pix[y*out.Stride:y*out.Stride+img.stride], img.pix[from:from+img.stride])
	}
	return out
}

// WritePNG encodes the image top-down as PNG.
func (img *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, img.RGBA())
}

// SavePNG writes the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("richtext: create %s: %w", path, err)
	}

	bw := bufio.NewWriter(f)
	if err := img.WritePNG(bw); err != nil {
		_ = f.Close()
		return fmt.Errorf("richtext: encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("richtext: write %s: %w", path, err)
	}
	return f.Close()
}
