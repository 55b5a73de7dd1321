package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_ExpiresAfterTTL(t *testing.T) {
	current := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	cache := newTTLCache(60*time.Second, func() time.Time { return current })

	cache.set("k", int64(1500))

	got, ok := cache.get("k")
	assert.True(t, ok)
	assert.Equal(t, int64(1500), got)

	current = current.Add(59 * time.Second)
	_, ok = cache.get("k")
	assert.True(t, ok)

	current = current.Add(2 * time.Second)
	_, ok = cache.get("k")
	assert.False(t, ok)
}

func TestTTLCache_ZeroTTLDisablesCaching(t *testing.T) {
	cache := newTTLCache(0, nil)

	cache.set("k", 1)

	_, ok := cache.get("k")
	assert.False(t, ok)
}

func TestTTLCache_Delete(t *testing.T) {
	cache := newTTLCache(time.Minute, nil)

	cache.set("k", 1)
	cache.delete("k")

	_, ok := cache.get("k")
	assert.False(t, ok)
}

func TestTTLCache_Bounded(t *testing.T) {
	current := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	cache := newTTLCache(time.Minute, func() time.Time { return current })

	for i := 0; i < maxCacheEntries+10; i++ {
		cache.set(string(rune('a'+i%26))+time.Duration(i).String(), i)
	}

	cache.mu.Lock()
	size := len(cache.entries)
	cache.mu.Unlock()
	assert.LessOrEqual(t, size, maxCacheEntries)
}
