package cache

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/cache"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)
	t.Cleanup(func() { _ = c.Close() })
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "short", []byte("a"), time.Minute))
	require.NoError(t, c.Set(ctx, "forever", []byte("b"), 0))

	got, ok, err := c.Get(ctx, "short")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), got)

	now = now.Add(2 * time.Minute)
	_, ok, _ = c.Get(ctx, "short")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "forever")
	assert.True(t, ok)

	c.sweep()
	assert.Equal(t, 1, c.Len())

	require.NoError(t, c.Delete(ctx, "forever"))
	assert.Equal(t, 0, c.Len())
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(time.Hour)
	t.Cleanup(func() { _ = c.Close() })

	type quote struct {
		Ticker string  `json:"ticker"`
		Price  float64 `json:"price"`
	}
	require.NoError(t, cache.SetJSON(ctx, c, "q:AAPL", quote{"AAPL", 190.5}, time.Minute))

	var got quote
	ok, err := cache.GetJSON(ctx, c, "q:AAPL", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 190.5, got.Price)

	ok, err = cache.GetJSON(ctx, c, "q:MSFT", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	_, err := NewRedisCache(ctx, &config.Redis{URL: "not a url"}, logger)
	assert.Error(t, err)

	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	c, err := NewRedisCache(ctx, &config.Redis{URL: url, KeyPrefix: "aq-test:"}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)
	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
