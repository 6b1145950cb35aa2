package msgfmt

import (
	"container/list"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

type memoEntry struct {
	key   string
	value string
}

// memoCache is an in-memory cache for formatted strings with optional LRU
// eviction when a maximum entry count is configured.
//
// It uses a hash map for O(1) lookups and a doubly-linked list for O(1) LRU
// ordering. The most recently used entries are at the front of the list; the
// least recently used are at the back.
type memoCache struct {
	items      map[string]*list.Element
	eviction   *list.List
	group      singleflight.Group
	mu         sync.Mutex
	maxEntries int
}

func newMemoCache(maxEntries int) *memoCache {
	return &memoCache{
		items:      make(map[string]*list.Element),
		eviction:   list.New(),
		maxEntries: maxEntries,
	}
}

// getOrCompute returns the cached result for key, or calls fn to compute and
// cache it. Concurrent calls with the same key are deduplicated through
// singleflight, so fn runs once per key. Errors are not cached.
func (c *memoCache) getOrCompute(key string, fn func() (string, error)) (string, error) {
	if v, ok := c.get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		s, err := fn()
		if err != nil {
			return nil, err
		}
		c.set(key, s)
		return s, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (c *memoCache) get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		return "", false
	}

	// Move to front: mark as recently used.
	c.eviction.MoveToFront(elem)

	return elem.Value.(*memoEntry).value, true
}

func (c *memoCache) set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*memoEntry).value = value
		return
	}

	c.items[key] = c.eviction.PushFront(&memoEntry{key: key, value: value})

	if c.maxEntries > 0 && c.eviction.Len() > c.maxEntries {
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*memoEntry).key)
		}
	}
}

// memoKey builds a cache key from the formatting arguments. Every field is
// length-prefixed so distinct argument tuples cannot encode to the same key,
// and value encodings carry the dynamic type so 5 and "5" stay separate
// entries. Map iteration order is not deterministic, so value pairs are
// sorted before encoding.
func memoKey(message string, values M, locale string) string {
	var b strings.Builder
	field := func(s string) {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}

	field(message)
	field(locale)

	for _, k := range slices.Sorted(maps.Keys(values)) {
		field(k)
		field(fmt.Sprintf("%T=%v", values[k], values[k]))
	}

	return b.String()
}
