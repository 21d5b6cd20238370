// Package lru implements a fixed-capacity least recently used cache.
//
// Entries live in an arena threaded into a doubly linked recency
// list with head and tail sentinels. A map from key to arena handle gives
// O(1) lookup. The arena grows with the number of entries; once the cache
// is full, evicted slots are reused, so Get and Put are O(1) and do not
// allocate list nodes.
//
// A Cache is not safe for concurrent use.
package lru

import (
	"fmt"
)

// Stats counts cache activity since construction or the last Purge.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Option configures a Cache.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict registers fn to be called with every entry evicted for
// capacity. Remove and Purge do not trigger it.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(c *Cache[K, V]) {
		c.onEvict = fn
	}
}

// Cache implements a Least Recently Used cache
type Cache[K comparable, V any] struct {
	capacity int
	index    index[K]
	list     recencyList[K, V]
	onEvict  func(K, V)
	stats    Stats
}

// New creates a cache holding at most capacity entries.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 || capacity > MaxCapacity {
		return nil, fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidCapacity, capacity, MaxCapacity)
	}
	c := &Cache[K, V]{
		capacity: capacity,
		index:    newIndex[K](),
		// One spare slot holds the new entry until the victim is unlinked.
		list: newRecencyList[K, V](capacity + 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int, opts ...Option[K, V]) *Cache[K, V] {
	c, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get retrieves a value from the cache and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.index.lookup(key)
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}
	n := c.resolve(h)
	c.list.moveToHead(h.slot)
	c.stats.Hits++
	return n.value, true
}

// Put adds or updates a key-value pair. It reports whether an older entry
// was evicted to make room.
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	if h, ok := c.index.lookup(key); ok {
		c.resolve(h).value = value
		c.list.moveToHead(h.slot)
		return false
	}

	h := c.list.alloc(key, value)
	c.index.insert(key, h)
	c.list.insertAtHead(h.slot)

	if c.list.len > c.capacity {
		c.evictOldest()
		return true
	}
	return false
}

// evictOldest removes the least recently used entry
func (c *Cache[K, V]) evictOldest() {
	slot := c.list.removeTail()
	n := &c.list.nodes[slot]
	key, value := n.key, n.value
	c.index.remove(key)
	c.list.release(slot)
	c.stats.Evictions++
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}

// Remove removes a specific key from the cache. It reports whether the key
// was present.
func (c *Cache[K, V]) Remove(key K) bool {
	h, ok := c.index.lookup(key)
	if !ok {
		return false
	}
	c.resolve(h)
	c.list.unlink(h.slot)
	c.index.remove(key)
	c.list.release(h.slot)
	return true
}

// Peek returns the value for key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.index.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return c.resolve(h).value, true
}

// Contains reports whether key is cached, without updating its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index.lookup(key)
	return ok
}

// Oldest returns the entry that the next overflowing Put would evict.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	slot := c.list.back()
	if slot == headSlot {
		return key, value, false
	}
	n := &c.list.nodes[slot]
	return n.key, n.value, true
}

// Keys returns the cached keys from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, c.list.len)
	for slot := c.list.front(); slot != tailSlot; slot = c.list.nodes[slot].next {
		keys = append(keys, c.list.nodes[slot].key)
	}
	return keys
}

// Len returns the current number of items in the cache
func (c *Cache[K, V]) Len() int {
	return c.list.len
}

// Cap returns the capacity the cache was created with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Stats returns a snapshot of the hit, miss and eviction counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.stats
}

// Purge drops every entry and resets the counters. Capacity is unchanged.
func (c *Cache[K, V]) Purge() {
	clear(c.index.m)
	c.list.reset()
	c.stats = Stats{}
}

// resolve maps a handle from the index to its live node.
func (c *Cache[K, V]) resolve(h handle) *node[K, V] {
	if h.slot < firstSlot || int(h.slot) >= len(c.list.nodes) {
		panic(invariantError(fmt.Sprintf("handle slot %d out of range", h.slot)))
	}
	n := &c.list.nodes[h.slot]
	if n.gen != h.gen || !n.linked {
		panic(invariantError(fmt.Sprintf("stale handle for slot %d", h.slot)))
	}
	return n
}

// checkInvariants walks the recency list and cross-checks it against the
// index.
func (c *Cache[K, V]) checkInvariants() error {
	seen := 0
	prev := headSlot
	for slot := c.list.front(); slot != tailSlot; slot = c.list.nodes[slot].next {
		if seen > len(c.list.nodes) {
			return invariantError("cycle in recency list")
		}
		if slot < firstSlot || int(slot) >= len(c.list.nodes) {
			return invariantError(fmt.Sprintf("link to slot %d", slot))
		}
		n := &c.list.nodes[slot]
		if n.prev != prev {
			return invariantError(fmt.Sprintf("slot %d prev=%d, want %d", slot, n.prev, prev))
		}
		if !n.linked {
			return invariantError(fmt.Sprintf("slot %d reachable but not linked", slot))
		}
		h, ok := c.index.lookup(n.key)
		if !ok {
			return invariantError(fmt.Sprintf("key %v in list but not in index", n.key))
		}
		if h.slot != slot || h.gen != n.gen {
			return invariantError(fmt.Sprintf("key %v indexed at slot %d, lives at %d", n.key, h.slot, slot))
		}
		prev = slot
		seen++
	}
	if c.list.nodes[tailSlot].prev != prev {
		return invariantError("tail sentinel prev is stale")
	}
	if seen != c.list.len || seen != c.index.len() {
		return invariantError(fmt.Sprintf("list walk=%d list len=%d index len=%d", seen, c.list.len, c.index.len()))
	}
	if seen > c.capacity {
		return invariantError(fmt.Sprintf("size %d exceeds capacity %d", seen, c.capacity))
	}
	return nil
}
