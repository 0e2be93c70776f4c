package markup

import (
	"image/color"
	"strconv"
)

// ParseColor parses a color tag value.
//
// Accepted forms are RRGGBB (opaque) and RRGGBBAA, each with an optional
// leading '#'. Anything else yields opaque white and ok == false.
func ParseColor(hex string) (c color.NRGBA, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8
	a = 0xff

	switch len(hex) {
	case 6:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) &&
			parseHex(hex[6:8], &a)
	}
	if !ok {
		return White, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

// FormatColor returns the RRGGBBAA form of c, suitable for a color tag.
func FormatColor(c color.NRGBA) string {
	const digits = "0123456789abcdef"
	buf := make([]byte, 0, 8)
	for _, v := range [4]uint8{c.R, c.G, c.B, c.A} {
		buf = append(buf, digits[v>>4], digits[v&0x0f])
	}
	return string(buf)
}

func parseHex(s string, val *uint8) bool {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return false
	}
	*val = uint8(n)
	return true
}
