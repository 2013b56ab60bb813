package bistro

import (
	"sync"
	"time"
)

// PageCache is an in-memory cache of rendered pages keyed by path and UI
// state, with a TTL. A non-positive TTL disables it.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	ttl   time.Duration
	// gen advances on Invalidate so renders started before it are not stored.
	gen uint64
}

type cachedPage struct {
	body    []byte
	fetched time.Time
}

// NewPageCache creates a PageCache with the given TTL.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{pages: make(map[string]cachedPage), ttl: ttl}
}

// Enabled reports whether pages are cached at all.
func (c *PageCache) Enabled() bool {
	return c != nil && c.ttl > 0
}

func (c *PageCache) valid(p cachedPage) bool {
	return time.Since(p.fetched) < c.ttl
}

// Invalidate drops every page so the next request renders afresh.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[string]cachedPage)
	c.gen++
	c.mu.Unlock()
}

// Len returns the number of cached pages, fresh or not.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Get returns the cached body for key if it is still fresh.
func (c *PageCache) Get(key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	c.mu.RLock()
	p, ok := c.pages[key]
	c.mu.RUnlock()
	if !ok || !c.valid(p) {
		return nil, false
	}
	return p.body, true
}

// Generation identifies the cache's current contents. Capture it before
// reading anything a render depends on and pass it to GetOrRenderSince.
func (c *PageCache) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// GetOrRender returns the cached body for key, calling render on a miss.
// Rendering happens outside the lock; a result is dropped if the cache was
// invalidated while it ran.
func (c *PageCache) GetOrRender(key string, render func() ([]byte, error)) ([]byte, error) {
	return c.GetOrRenderSince(key, c.Generation(), render)
}

// GetOrRenderSince is GetOrRender for a render whose inputs were read at
// generation gen. The result is only stored if no Invalidate happened since.
func (c *PageCache) GetOrRenderSince(key string, gen uint64, render func() ([]byte, error)) ([]byte, error) {
	if !c.Enabled() {
		return render()
	}
	if body, ok := c.Get(key); ok {
		return body, nil
	}

	body, err := render()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.gen == gen {
		c.pages[key] = cachedPage{body: body, fetched: time.Now()}
	}
	c.mu.Unlock()
	return body, nil
}
