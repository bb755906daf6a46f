// Package cache keeps recently computed similarity responses in a bounded
// LRU keyed by a 64-bit xxhash of the request.
package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed-capacity LRU. A zero-capacity Cache stores nothing and
// always misses. It is safe for concurrent use.
type Cache[V any] struct {
	lru *lru.Cache[uint64, V]
}

// New creates a cache holding at most size entries. size 0 disables it.
func New[V any](size int) (*Cache[V], error) {
	if size <= 0 {
		return &Cache[V]{}, nil
	}

	l, err := lru.New[uint64, V](size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lru: l}, nil
}

// Enabled reports whether the cache stores anything.
func (c *Cache[V]) Enabled() bool {
	return c.lru != nil
}

// Get returns the value stored under key.
func (c *Cache[V]) Get(key uint64) (V, bool) {
	if c.lru == nil {
		var zero V
		return zero, false
	}
	return c.lru.Get(key)
}

// Add stores value under key, evicting the least recently used entry when
// full.
func (c *Cache[V]) Add(key uint64, value V) {
	if c.lru != nil {
		c.lru.Add(key, value)
	}
}

// Len returns the number of stored entries.
func (c *Cache[V]) Len() int {
	if c.lru == nil {
		return 0
	}
	return c.lru.Len()
}

// Purge removes every entry.
func (c *Cache[V]) Purge() {
	if c.lru != nil {
		c.lru.Purge()
	}
}

// Key hashes an ordered list of request fields. Each part is
// length-prefixed, so ("AB", "C") and ("A", "BC") hash differently.
type Key struct {
	d *xxhash.Digest
}

// NewKey starts a key for the named operation.
func NewKey(op string) *Key {
	k := &Key{d: xxhash.New()}
	return k.String(op)
}

// String appends a string part.
func (k *Key) String(s string) *Key {
	k.d.WriteString(strconv.Itoa(len(s)))
	k.d.WriteString(":")
	k.d.WriteString(s)
	return k
}

// Int appends an integer part.
func (k *Key) Int(n int64) *Key {
	return k.String(strconv.FormatInt(n, 10))
}

// Uint appends an unsigned integer part.
func (k *Key) Uint(n uint64) *Key {
	return k.String(strconv.FormatUint(n, 10))
}

// Strings appends a count followed by every element.
func (k *Key) Strings(ss []string) *Key {
	k.Int(int64(len(ss)))
	for _, s := range ss {
		k.String(s)
	}
	return k
}

// Sum returns the 64-bit key.
func (k *Key) Sum() uint64 {
	return k.d.Sum64()
}
