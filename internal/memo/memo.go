// Package memo provides a small bounded memoization cache for pure
// functions. It combines a map with a linked list to track recency,
// evicting the least recently used entry when full.
package memo

import "sync"

const DefaultMax = 512

// Cache memoizes values keyed by a comparable key.
// It is safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu sync.Mutex

	m          map[K]*entry[K, V]
	head, tail *entry[K, V]
	max        int
}

type entry[K comparable, V any] struct {
	k K
	v V

	prev, next *entry[K, V]
}

// New returns a pointer to a new Cache.
// If max > 0, the cache will only be allowed to contain max number
// of entries. Otherwise a default maximum number will be used.
func New[K comparable, V any](max int) *Cache[K, V] {
	if max <= 0 {
		max = DefaultMax
	}

	return &Cache[K, V]{
		m:   make(map[K]*entry[K, V]),
		max: max,
	}
}

// Do returns the value memoized under k, computing and storing it
// with f on a miss. f is called at most once per distinct key while
// the key remains cached; it runs under the cache lock, so it must
// not call back into the same cache.
func (c *Cache[K, V]) Do(k K, f func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.m[k]; ok {
		c.remove(e)
		c.push(e)
		return e.v
	}

	if len(c.m) >= c.max {
		head := c.head
		c.remove(head)
		delete(c.m, head.k)
	}

	e := &entry[K, V]{
		k: k,
		v: f(),
	}
	c.m[k] = e
	c.push(e)

	return e.v
}

// Get reads a memoized value without computing anything.
// If the key was not found, ok will be false.
// Get does not affect the recency of the key.
func (c *Cache[K, V]) Get(k K) (v V, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.m[k]
	if !ok {
		return
	}

	return e.v, true
}

// Len returns the number of memoized entries.
func (c *Cache[_, _]) Len() int {
	c.mu.Lock()
	l := len(c.m)
	c.mu.Unlock()
	return l
}

func (c *Cache[K, V]) remove(e *entry[K, V]) {
	if e == nil {
		panic("nil entry")
	}

	if c.head == nil || c.tail == nil {
		panic("nil head or tail")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		if c.head != e {
			panic("entry has no previous node but it is not the head")
		}
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		if c.tail != e {
			panic("entry has no next node but it is not the tail")
		}
		c.tail = e.prev
	}

	e.prev, e.next = nil, nil
}

func (c *Cache[K, V]) push(e *entry[K, V]) {
	if e == nil {
		panic("nil entry")
	}

	if c.head == nil && c.tail == nil {
		c.head, c.tail = e, e
		return
	}

	e.prev = c.tail
	c.tail.next = e

	e.next = nil
	c.tail = e
}
