package view

import (
	"sort"
)

// Collection holds the ordered in-memory copy of one server resource for the
// lifetime of a page view. Each page owns its collections exclusively and
// drives them from a single goroutine, so no locking is involved.
type Collection[T any] struct {
	items []T
	id    func(T) int64
}

// NewCollection creates an empty collection keyed by the given id extractor
func NewCollection[T any](id func(T) int64) *Collection[T] {
	return &Collection[T]{id: id}
}

// Replace swaps the full contents for a freshly fetched list
func (c *Collection[T]) Replace(items []T) {
	c.items = make([]T, len(items))
	copy(c.items, items)
}

// Items returns a copy of the current contents in order
func (c *Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of records held
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Get returns the record with the given id, if present
func (c *Collection[T]) Get(id int64) (T, bool) {
	for _, item := range c.items {
		if c.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Append adds a record to the end of the collection
func (c *Collection[T]) Append(item T) {
	c.items = append(c.items, item)
}

// Upsert replaces the record with a matching id in place, or appends when no
// record matches. The relative order of all other records is unchanged.
func (c *Collection[T]) Upsert(item T) {
	id := c.id(item)
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove deletes the record with the given id and reports whether one was
// removed. All other records keep their relative order.
func (c *Collection[T]) Remove(id int64) bool {
	for i := range c.items {
		if c.id(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Sort orders the collection for display
func (c *Collection[T]) Sort(less func(a, b T) bool) {
	sort.SliceStable(c.items, func(i, j int) bool {
		return less(c.items[i], c.items[j])
	})
}
