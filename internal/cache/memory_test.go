package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/nameparser/internal/model"
)

func sampleName() model.ParsedName {
	n := model.NewParsedName("Bruce Wayne aka Batman")
	n.ForeName = model.Some("Bruce")
	n.SurName = model.Some("Wayne")
	n.Aliases = append(n.Aliases, "Batman")
	n.HasNonName = true
	return n
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("John Jacob")
	b := CacheKey("John Jacob")
	c := CacheKey("john jacob")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.True(t, strings.HasPrefix(a, "nameparser:v1:"))
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := CacheKey("Bruce Wayne aka Batman")

	_, found := c.Get(key)
	assert.False(t, found)

	c.Set(key, sampleName(), 0)

	got, found := c.Get(key)
	require.True(t, found)
	assert.Equal(t, sampleName(), got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := CacheKey("x")

	stored := sampleName()
	c.Set(key, stored, 0)
	stored.Aliases[0] = "mutated after set"

	got, _ := c.Get(key)
	got.Aliases[0] = "mutated after get"

	again, _ := c.Get(key)
	assert.Equal(t, []string{"Batman"}, again.Aliases)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	key := CacheKey("short lived")

	c.Set(key, sampleName(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	_, found := c.Get(key)
	assert.False(t, found)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	c.Set("a", sampleName(), 0)
	c.Set("b", sampleName(), 0)

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}
