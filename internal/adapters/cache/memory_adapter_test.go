package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/medtour-backend/internal/adapters/cache"
)

func TestMemoryAdapter_SetAndGet(t *testing.T) {
	adapter := cache.NewMemoryAdapter()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("value"), time.Minute))

	got, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), got)
}

func TestMemoryAdapter_MissingKey(t *testing.T) {
	adapter := cache.NewMemoryAdapter()

	_, err := adapter.Get(context.Background(), "missing")
	assert.Error(t, err)
}

func TestMemoryAdapter_ExpiryWithFakeClock(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	adapter := cache.NewMemoryAdapterWithClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("v"), 30*time.Second))

	now = now.Add(29 * time.Second)
	_, err := adapter.Get(ctx, "k")
	assert.NoError(t, err)

	now = now.Add(2 * time.Second)
	_, err = adapter.Get(ctx, "k")
	assert.Error(t, err)
}

func TestMemoryAdapter_GetReturnsCopy(t *testing.T) {
	adapter := cache.NewMemoryAdapter()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "k", []byte("abc"), time.Minute))

	got, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := adapter.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryAdapter_DeleteAndClear(t *testing.T) {
	adapter := cache.NewMemoryAdapter()
	ctx := context.Background()

	require.NoError(t, adapter.Set(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, adapter.Set(ctx, "b", []byte("2"), time.Minute))

	require.NoError(t, adapter.Delete(ctx, "a"))
	_, err := adapter.Get(ctx, "a")
	assert.Error(t, err)

	require.NoError(t, adapter.Clear(ctx))
	_, err = adapter.Get(ctx, "b")
	assert.Error(t, err)
}
