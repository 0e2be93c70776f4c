package layout

import "errors"

// Sentinel errors for the layout package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("layout: empty font data")

	// ErrNoFonts is returned when a paragraph is built against a
	// collection that holds no typeface at all.
	ErrNoFonts = errors.New("layout: font collection is empty")

	// ErrUnknownAlignment is returned by ParseAlignment.
	ErrUnknownAlignment = errors.New("layout: unknown alignment")

	// ErrInvalidLocale is returned when ParagraphStyle.Locale is not a
	// valid BCP 47 tag.
	ErrInvalidLocale = errors.New("layout: invalid locale")
)
