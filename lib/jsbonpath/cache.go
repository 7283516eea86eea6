// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsbonpath

import (
	"fmt"
	"sync"

	"github.com/zeebo/blake3"

	"github.com/Omikhleia/JSBON/lib/jsbon"
)

// CacheKey returns a content-addressed key for a (root, path) lookup:
// the BLAKE3 digest of root's JSBON encoding, combined with path. Two
// trees that encode to the same bytes share a key regardless of Go
// pointer identity, the same content-addressing idea as the teacher's
// artifact cache index, just keyed on a decoded tree's wire bytes
// instead of a stored chunk's.
func CacheKey(root any, path string) (string, error) {
	data, err := jsbon.Encode(root, jsbon.EncodeOptions{})
	if err != nil {
		return "", fmt.Errorf("jsbonpath: encoding root for cache key: %w", err)
	}
	hasher := blake3.New()
	hasher.Write(data)
	hasher.Write([]byte{0})
	hasher.Write([]byte(path))
	return string(hasher.Sum(nil)), nil
}

// cacheEntry holds a memoized Get result, including a negative ("not
// found") result so repeated misses on the same content don't re-walk
// the tree either.
type cacheEntry struct {
	value any
	ok    bool
}

// Cache memoizes Get lookups by content-addressed key, for callers
// that repeatedly query the same decoded document (e.g. a server
// re-resolving the same handful of paths against each request's
// payload). It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]cacheEntry)}
}

// Get resolves path against root like the package-level Get, but
// returns a cached result when root's content and path were looked up
// before. The encode-then-hash cost of computing the cache key is the
// same order as the walk itself, so Cache pays off only when the same
// (content, path) pair recurs.
func (c *Cache) Get(root any, path string) (any, bool, error) {
	key, err := CacheKey(root, path)
	if err != nil {
		return nil, false, err
	}

	c.mu.RLock()
	entry, found := c.entries[key]
	c.mu.RUnlock()
	if found {
		return entry.value, entry.ok, nil
	}

	value, ok := Get(root, path)

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, ok: ok}
	c.mu.Unlock()

	return value, ok, nil
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
