package client

import (
	"sync"

	"github.com/vodex-console/dto"
)

// collection is the shared in-memory state of one entity repository: the
// last fetched page, its pagination metadata and the current item pointer.
// Each list request carries a generation number; a response older than the
// latest issued request is discarded, so rapid refreshes cannot clobber a
// newer page with a staler one.
type collection[T any] struct {
	mu         sync.Mutex
	items      []T
	pagination dto.Pagination
	current    *T
	generation uint64
	idOf       func(T) string
}

func newCollection[T any](idOf func(T) string) *collection[T] {
	return &collection[T]{idOf: idOf}
}

// begin registers a new list request and returns its generation number.
func (c *collection[T]) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	return c.generation
}

// replace swaps in a fetched page. It reports false, leaving the state
// untouched, when a newer request has been issued since gen was taken.
func (c *collection[T]) replace(gen uint64, items []T, pagination dto.Pagination) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.generation {
		return false
	}
	c.items = items
	c.pagination = pagination
	return true
}

// prepend puts a freshly created entity at the head of the collection and
// bumps the total count.
func (c *collection[T]) prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.pagination.TotalItems++
}

// setCurrent records the current item pointer.
func (c *collection[T]) setCurrent(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &item
}

// update replaces the stored element with the given id, and the current
// pointer when it refers to the same id.
func (c *collection[T]) update(item T) {
	id := c.idOf(item)
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items[i] = item
			break
		}
	}
	if c.current != nil && c.idOf(*c.current) == id {
		c.current = &item
	}
}

// remove drops the element with the given id and clears a matching current
// pointer.
func (c *collection[T]) remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.idOf(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			if c.pagination.TotalItems > 0 {
				c.pagination.TotalItems--
			}
			break
		}
	}
	if c.current != nil && c.idOf(*c.current) == id {
		c.current = nil
	}
}

// Items returns a copy of the collection's elements.
func (c *collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Pagination returns the last fetched pagination metadata.
func (c *collection[T]) Pagination() dto.Pagination {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Current returns the current item pointer, or nil.
func (c *collection[T]) Current() *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	item := *c.current
	return &item
}
