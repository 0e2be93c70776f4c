package layout

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/richtext/internal/logging"
)

// Built-in family names.
const (
	DefaultFamily = "Go"
	MonoFamily    = "Go Mono"
)

// FontCollection maps family names to typefaces.
// Family lookup is case-insensitive.
// FontCollection is safe for concurrent use.
type FontCollection struct {
	mu            sync.RWMutex
	families      map[string][]*Typeface
	names         map[string]string // lower-case key -> display name
	defaultFamily string
}

// NewFontCollection creates a collection. Unless WithoutBuiltinFonts is
// given, the Go and Go Mono families are registered.
func NewFontCollection(opts ...CollectionOption) *FontCollection {
	o := defaultCollectionOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &FontCollection{
		families:      make(map[string][]*Typeface),
		names:         make(map[string]string),
		defaultFamily: o.defaultFamily,
	}
	if o.builtin {
		c.registerBuiltin()
	}
	return c
}

func (c *FontCollection) registerBuiltin() {
	builtin := []struct {
		family string
		data   []byte
	}{
		{DefaultFamily, goregular.TTF},
		{DefaultFamily, gobold.TTF},
		{DefaultFamily, goitalic.TTF},
		{DefaultFamily, gobolditalic.TTF},
		{MonoFamily, gomono.TTF},
		{MonoFamily, gomonobold.TTF},
		{MonoFamily, gomonoitalic.TTF},
		{MonoFamily, gomonobolditalic.TTF},
	}
	for _, b := range builtin {
		tf, err := ParseTypeface(b.data)
		if err != nil {
			logging.Logger().Error("layout: builtin font", "family", b.family, "err", err)
			continue
		}
		c.RegisterAs(b.family, tf)
	}
}

// Register adds tf under its own family name.
func (c *FontCollection) Register(tf *Typeface) {
	c.RegisterAs(tf.Family(), tf)
}

// RegisterAs adds tf under the given family name. A typeface with the
// same style already registered for the family is replaced.
func (c *FontCollection) RegisterAs(family string, tf *Typeface) {
	if tf == nil || family == "" {
		return
	}
	key := strings.ToLower(family)

	c.mu.Lock()
	defer c.mu.Unlock()

	faces := c.families[key]
	for i, existing := range faces {
		if existing.style == tf.style {
			faces[i] = tf
			return
		}
	}
	c.families[key] = append(faces, tf)
	if _, ok := c.names[key]; !ok {
		c.names[key] = family
	}
}

// LoadFile reads a TrueType or OpenType file and registers it under the
// family name from its name table.
func (c *FontCollection) LoadFile(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: load font: %w", err)
	}
	tf, err := ParseTypeface(data)
	if err != nil {
		return nil, fmt.Errorf("layout: load font %s: %w", path, err)
	}
	if tf.Family() == "" {
		return nil, fmt.Errorf("layout: load font %s: no family name", path)
	}
	c.Register(tf)
	logging.Logger().Info("layout: font loaded", "path", path, "family", tf.Family(), "style", tf.Style().String())
	return tf, nil
}

// Families returns the registered family names in sorted order.
func (c *FontCollection) Families() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// DefaultFamily returns the fallback family name.
func (c *FontCollection) DefaultFamily() string {
	return c.defaultFamily
}

// Match returns the typeface of family that best matches style.
// Unknown or empty families fall back to the default family, and then to
// any registered family. Match returns nil only for an empty collection.
func (c *FontCollection) Match(family string, style FontStyle) *Typeface {
	c.mu.RLock()
	defer c.mu.RUnlock()

	faces := c.families[strings.ToLower(family)]
	if len(faces) == 0 {
		if family != "" {
			logging.Logger().Debug("layout: font family not found, using default",
				"family", family, "default", c.defaultFamily)
		}
		faces = c.families[strings.ToLower(c.defaultFamily)]
	}
	if len(faces) == 0 {
		faces = c.anyFamilyLocked()
	}
	return closestStyle(faces, style)
}

// anyFamilyLocked returns the faces of the alphabetically first family.
func (c *FontCollection) anyFamilyLocked() []*Typeface {
	var first string
	for key := range c.families {
		if first == "" || key < first {
			first = key
		}
	}
	return c.families[first]
}

// closestStyle picks the face with the nearest weight, preferring the
// requested slant. Ties go to the earlier registration.
func closestStyle(faces []*Typeface, style FontStyle) *Typeface {
	var best *Typeface
	bestScore := 0
	for _, tf := range faces {
		score := abs(int(tf.style.Weight) - int(style.Weight))
		if tf.style.Slant != style.Slant {
			score += 10000
		}
		if best == nil || score < bestScore {
			best, bestScore = tf, score
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
