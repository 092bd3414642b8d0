package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot_PutGet(t *testing.T) {
	c := NewSnapshot[string]()

	_, ok := c.Get()
	assert.False(t, ok, "empty cache should miss")

	c.Put("hello", time.Minute)

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, "hello", got)
}

func TestSnapshot_ExpiresAtBoundary(t *testing.T) {
	c := NewSnapshot[int]()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Put(42, 10*time.Minute)

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, 42, got)

	// Exactly at expiresAt the entry must already be a miss.
	current = current.Add(10 * time.Minute)
	_, ok = c.Get()
	assert.False(t, ok)

	current = current.Add(time.Hour)
	_, ok = c.Get()
	assert.False(t, ok)
}

func TestSnapshot_Clear(t *testing.T) {
	c := NewSnapshot[string]()
	c.Put("cached", time.Hour)

	c.Clear()

	_, ok := c.Get()
	assert.False(t, ok, "cleared cache must not return a value")
}

func TestTTLMap_KeyedExpiry(t *testing.T) {
	m := NewTTLMap[string, int]()

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	m.Put("aries:daily", 7, 5*time.Minute)
	m.Put("leo:daily", 9, time.Hour)

	got, ok := m.Get("aries:daily")
	require.True(t, ok)
	assert.Equal(t, 7, got)

	current = current.Add(10 * time.Minute)

	_, ok = m.Get("aries:daily")
	assert.False(t, ok, "expired entry should miss")

	got, ok = m.Get("leo:daily")
	require.True(t, ok)
	assert.Equal(t, 9, got)
}

func TestTTLMap_Clear(t *testing.T) {
	m := NewTTLMap[string, string]()
	m.Put("k", "v", time.Hour)

	m.Clear()

	_, ok := m.Get("k")
	assert.False(t, ok)
}
