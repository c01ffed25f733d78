// Package cache holds fetched collections keyed by resource and query
// variant. Writes never patch cached data; a mutation drops every variant of
// the resource and the next read re-fetches.
package cache

import "sync"

type key struct {
	resource string
	variant  string
}

// Cache is a process-wide collection cache shared by the resource services.
type Cache struct {
	mu      sync.RWMutex
	entries map[key]any
}

func New() *Cache {
	return &Cache{entries: make(map[key]any)}
}

// Get returns the cached value for resource/variant. Variant is the parent
// id or search query a filtered list was fetched with; plain lists use "".
func (c *Cache) Get(resource, variant string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key{resource, variant}]
	return v, ok
}

// Set stores a fetched collection.
func (c *Cache) Set(resource, variant string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key{resource, variant}] = value
}

// Invalidate drops every variant of the resource.
func (c *Cache) Invalidate(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.resource == resource {
			delete(c.entries, k)
		}
	}
}

// Clear drops everything, used on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[key]any)
}

// Lookup is the typed view over Get. A cached value of the wrong type is
// treated as a miss.
func Lookup[T any](c *Cache, resource, variant string) (T, bool) {
	var zero T
	v, ok := c.Get(resource, variant)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}
