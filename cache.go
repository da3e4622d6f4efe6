package benchdocs

import (
	"sync"
)

// IconCache holds rendered icon PNGs. Icons depend only on the logo
// geometry, so each kind is rendered at most once per process.
type IconCache struct {
	mu     sync.RWMutex
	icons  map[IconKind][]byte
	render func(IconKind) ([]byte, error)
}

// NewIconCache creates an IconCache that renders with RenderIcon.
func NewIconCache() *IconCache {
	return &IconCache{
		icons:  make(map[IconKind][]byte),
		render: RenderIcon,
	}
}

// Get returns the PNG bytes for kind, rendering on first use.
// It tries a read lock first; only takes a write lock if a render is needed.
func (c *IconCache) Get(kind IconKind) ([]byte, error) {
	c.mu.RLock()
	data, ok := c.icons[kind]
	c.mu.RUnlock()
	if ok {
		return data, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.icons[kind]; ok {
		return data, nil
	}
	data, err := c.render(kind)
	if err != nil {
		return nil, err
	}
	c.icons[kind] = data
	return data, nil
}

// Invalidate drops every cached icon.
func (c *IconCache) Invalidate() {
	c.mu.Lock()
	c.icons = make(map[IconKind][]byte)
	c.mu.Unlock()
}
