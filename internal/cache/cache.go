// Package cache memoizes parse results keyed by a digest of the input and
// the options that produced them.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the entry count for caches built with New.
const DefaultSize = 256

// Cache stores values by string key.
type Cache[V any] interface {
	Get(key string) (V, bool)
	Set(key string, value V)
	Has(key string) bool
}

// Key digests an input together with everything that influences its result.
// Parts that differ produce different keys, so stale options can never
// serve a hit.
func Key(input string, parts ...any) string {
	h := sha256.New()
	h.Write([]byte(input))
	if len(parts) > 0 {
		var sb strings.Builder
		for _, p := range parts {
			fmt.Fprintf(&sb, "|%v", p)
		}
		h.Write([]byte(sb.String()))
	}
	return hex.EncodeToString(h.Sum(nil))
}

type lruCache[V any] struct {
	inner *lru.Cache[string, V]
}

// New builds an LRU cache holding up to size entries; size <= 0 uses
// DefaultSize.
func New[V any](size int) Cache[V] {
	if size <= 0 {
		size = DefaultSize
	}
	// Errors only occur for non-positive sizes, which we just ruled out.
	inner, _ := lru.New[string, V](size)
	return &lruCache[V]{inner: inner}
}

func (c *lruCache[V]) Get(key string) (V, bool) { return c.inner.Get(key) }
func (c *lruCache[V]) Set(key string, value V)  { c.inner.Add(key, value) }
func (c *lruCache[V]) Has(key string) bool      { return c.inner.Contains(key) }
