package richtext

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Surface is a drawing target for rendered text.
// Coordinates have the origin at the top-left with Y growing downward;
// (x, y) is where the image's top-left corner lands.
type Surface interface {
	DrawImage(img *Image, x, y float64) error
}

// ImageSurface draws onto an in-memory image. Positions are rounded to
// whole pixels and images are composited with the Over operator.
type ImageSurface struct {
	dst draw.Image
}

// NewImageSurface wraps dst.
func NewImageSurface(dst draw.Image) *ImageSurface {
	return &ImageSurface{dst: dst}
}

// NewRGBASurface creates a transparent w x h surface.
func NewRGBASurface(w, h int) *ImageSurface {
	return NewImageSurface(image.NewRGBA(image.Rect(0, 0, w, h)))
}

// Target returns the underlying image.
func (s *ImageSurface) Target() draw.Image {
	return s.dst
}

// DrawImage implements Surface. The image is flipped back to top-down
// rows before compositing.
func (s *ImageSurface) DrawImage(img *Image, x, y float64) error {
	if img == nil {
		return ErrNilImage
	}
	src := img.RGBA()
	at := image.Pt(int(math.Round(x)), int(math.Round(y)))
	r := image.Rectangle{Min: at, Max: at.Add(src.Bounds().Size())}
	draw.Draw(s.dst, r, src, image.Point{}, draw.Over)
	return nil
}
