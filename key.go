package richtext

import (
	"encoding/binary"
	"encoding/hex"
	"image/color"
	"math"

	"github.com/zeebo/blake3"

	"github.com/gogpu/richtext/layout"
)

// keyPrecision is the number of decimal digits kept for float fields.
const keyPrecision = 1000

// RenderKey is every input that affects the pixels of a rendered text block.
// Two textures with equal canonical keys share one cached image.
type RenderKey struct {
	Text       string
	FontFamily string
	FontSize   float64
	Color      color.NRGBA
	Markup     bool

	// Base style flags. They only affect output when Markup is false.
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool

	LineHeight float64

	// Width is the wrap width; -1 means unconstrained.
	Width float64

	MaxLines int
	Align    layout.Alignment
	Shorten  bool

	// Source identifies the engine and fonts that lay out the text.
	// Contexts sharing a cache share renders only when their sources match.
	Source uint64
}

// Canonical returns k with floats rounded to three decimals, a non-positive
// Width normalized to -1 and, when Markup is set, the base style flags cleared.
// Canonical keys are safe to compare with == and to use as map keys.
func (k RenderKey) Canonical() RenderKey {
	k.FontSize = round3(k.FontSize)
	k.LineHeight = round3(k.LineHeight)
	k.Width = round3(k.Width)
	if !(k.Width > 0) {
		k.Width = -1
	}
	if k.MaxLines < 0 {
		k.MaxLines = 0
	}
	if k.Markup {
		k.Bold, k.Italic, k.Underline, k.Strikethrough = false, false, false, false
	}
	return k
}

func round3(v float64) float64 {
	r := math.Round(v*keyPrecision) / keyPrecision
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// Digest returns a BLAKE3 digest of the canonical key.
func (k RenderKey) Digest() Digest {
	k = k.Canonical()

	h := blake3.New()
	var buf [8]byte
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		h.Write(buf[:])
		h.Write([]byte(s))
	}
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	writeBool := func(b bool) {
		if b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}

	writeString(k.Text)
	writeString(k.FontFamily)
	writeFloat(k.FontSize)
	h.Write([]byte{k.Color.R, k.Color.G, k.Color.B, k.Color.A})
	writeBool(k.Markup)
	writeBool(k.Bold)
	writeBool(k.Italic)
	writeBool(k.Underline)
	writeBool(k.Strikethrough)
	writeFloat(k.LineHeight)
	writeFloat(k.Width)
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(k.MaxLines))) //nolint:gosec // sign is preserved by the two's complement round trip
	h.Write(buf[:])
	h.Write([]byte{byte(k.Align)})
	writeBool(k.Shorten)
	binary.LittleEndian.PutUint64(buf[:], k.Source)
	h.Write(buf[:])

	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// Digest is a 256-bit BLAKE3 content digest.
type Digest [32]byte

// String returns the digest in hex.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Short returns the first 12 hex digits, enough for file names and logs.
func (d Digest) Short() string {
	return hex.EncodeToString(d[:6])
}

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}
