package richtext

import "errors"

// Sentinel errors for the richtext package.
var (
	// ErrTextureTooLarge is reported (as a warning) when a rendered text
	// block exceeds the maximum texture size. The texture is left without
	// an image.
	ErrTextureTooLarge = errors.New("richtext: texture exceeds maximum size")

	// ErrNilSurface is returned by Render when called with a nil surface.
	ErrNilSurface = errors.New("richtext: nil surface")

	// ErrNilImage is returned by Surface implementations given a nil image.
	ErrNilImage = errors.New("richtext: nil image")
)
