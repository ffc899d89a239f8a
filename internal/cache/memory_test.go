package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, ok := c.Get(ctx, "locations")
	assert.False(t, ok, "miss on empty cache")

	require.NoError(t, c.Set(ctx, "locations", `["Lyon","Paris"]`, time.Hour))

	value, ok := c.Get(ctx, "locations")
	require.True(t, ok)
	assert.Equal(t, `["Lyon","Paris"]`, value)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	clock := time.Now()
	c.now = func() time.Time { return clock }

	require.NoError(t, c.Set(ctx, "defaults:Lyon", `{"notary_pct":0.08}`, time.Minute))

	_, ok := c.Get(ctx, "defaults:Lyon")
	assert.True(t, ok, "fresh entry is served")

	clock = clock.Add(2 * time.Minute)
	_, ok = c.Get(ctx, "defaults:Lyon")
	assert.False(t, ok, "expired entry is dropped")
}

func TestMemoryCacheZeroTTLNeverExpires(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	clock := time.Now()
	c.now = func() time.Time { return clock }

	require.NoError(t, c.Set(ctx, "k", "v", 0))

	clock = clock.Add(24 * time.Hour)
	_, ok := c.Get(ctx, "k")
	assert.True(t, ok)
}

func TestMemoryCacheOverwrite(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "old", time.Hour))
	require.NoError(t, c.Set(ctx, "k", "new", time.Hour))

	value, _ := c.Get(ctx, "k")
	assert.Equal(t, "new", value)
}
