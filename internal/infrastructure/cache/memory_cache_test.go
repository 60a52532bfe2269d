package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/4ak45h/Legacy-Planner/internal/infrastructure/cache"
)

func TestMemorySnapshotCache_RoundTrip(t *testing.T) {
	c := cache.NewMemorySnapshotCache()
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "tok", []byte("payload"), 0))

	payload, ok, err := c.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), payload)

	require.NoError(t, c.Invalidate(ctx, "tok"))
	_, ok, err = c.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySnapshotCache_TTLExpires(t *testing.T) {
	c := cache.NewMemorySnapshotCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tok", []byte("payload"), 10*time.Millisecond))

	_, ok, err := c.Get(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, ok)

	time.Sleep(20 * time.Millisecond)

	_, ok, err = c.Get(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, ok)
}
