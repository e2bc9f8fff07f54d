package suggest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationCachePutGet(t *testing.T) {
	c := NewValidationCache(4)
	c.Put("hello", true)

	valid, found := c.Get("hello")
	require.True(t, found)
	require.True(t, valid)

	_, found = c.Get("absent")
	require.False(t, found)
}

func TestValidationCacheEvictsLRU(t *testing.T) {
	c := NewValidationCache(2)
	c.Put("a", true)
	c.Put("b", true)
	c.Get("a") // touch a so b becomes least recently used
	c.Put("c", true)

	_, found := c.Get("b")
	require.False(t, found)

	_, found = c.Get("a")
	require.True(t, found)
	_, found = c.Get("c")
	require.True(t, found)
}

func TestValidationCacheClear(t *testing.T) {
	c := NewValidationCache(4)
	c.Put("hello", true)
	c.Clear()

	_, found := c.Get("hello")
	require.False(t, found)
}
