package richtext

import (
	"sync"

	"github.com/gogpu/richtext/cache"
)

// Entry is one cached render: the shared image plus the geometry it was
// rendered with. Entries are immutable once inserted.
type Entry struct {
	Image   *Image
	Width   int
	Height  int
	Refs    []RefZone
	Anchors []Anchor
}

// TextureCache maps canonical render keys to rendered entries.
//
// It never evicts on its own: entries live until Clear. Equal keys always
// resolve to the same *Image, so textures rendering the same content share
// pixels.
type TextureCache struct {
	store *cache.Cache[RenderKey, *Entry]

	mu      sync.Mutex
	sources map[any]uint64
	next    uint64
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{
		store:   cache.New[RenderKey, *Entry](0),
		sources: make(map[any]uint64),
	}
}

// source returns the RenderKey.Source of contexts whose engine has the
// given identity. A nil identity always gets a fresh source.
func (c *TextureCache) source(identity any) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if identity != nil {
		if id, ok := c.sources[identity]; ok {
			return id
		}
	}
	c.next++
	if identity != nil {
		c.sources[identity] = c.next
	}
	return c.next
}

// Lookup returns the entry for key. The key is canonicalized first.
func (c *TextureCache) Lookup(key RenderKey) (*Entry, bool) {
	return c.store.Get(key.Canonical())
}

// Insert stores e under key, replacing any previous entry.
func (c *TextureCache) Insert(key RenderKey, e *Entry) {
	if e == nil {
		return
	}
	c.store.Set(key.Canonical(), e)
}

// Clear removes every entry. Textures keep the images they already hold.
func (c *TextureCache) Clear() {
	c.store.Clear()
}

// Len returns the number of cached entries.
func (c *TextureCache) Len() int {
	return c.store.Len()
}

// Stats returns lookup statistics.
func (c *TextureCache) Stats() cache.Stats {
	return c.store.Stats()
}

// Bytes returns the total pixel memory held by distinct cached images.
func (c *TextureCache) Bytes() int {
	seen := make(map[*Image]struct{})
	total := 0
	c.store.Range(func(_ RenderKey, e *Entry) bool {
		if e.Image == nil {
			return true
		}
		if _, ok := seen[e.Image]; !ok {
			seen[e.Image] = struct{}{}
			total += len(e.Image.pix)
		}
		return true
	})
	return total
}
