package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/cache"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// CachedPrices implements provider.Prices with a cache in front of next.
// Concurrent misses for the same ticker share one upstream call.
type CachedPrices struct {
	next     provider.Prices
	cache    cache.Cache
	ttl      time.Duration
	prefix   string
	inflight singleflight.Group
	logger   *slog.Logger
}

// NewCachedPrices creates a CachedPrices.
func NewCachedPrices(next provider.Prices, c cache.Cache, ttl time.Duration, prefix string, logger *slog.Logger) *CachedPrices {
	return &CachedPrices{next: next, cache: c, ttl: ttl, prefix: prefix, logger: logger}
}

// CurrentPrice returns the cached quote or fetches and caches a fresh one.
// Nil and zero quotes are never cached.
func (c *CachedPrices) CurrentPrice(ctx context.Context, ticker string) (*decimal.Decimal, error) {
	ticker = domain.NormalizeTicker(ticker)
	key := c.prefix + ticker

	var cached decimal.Decimal
	if ok, err := cache.GetJSON(ctx, c.cache, key, &cached); err != nil {
		c.logger.Error("Error getting quote from cache", "key", key, "error", err)
	} else if ok {
		c.logger.Debug("Cache hit for CurrentPrice", "key", key)
		return &cached, nil
	}

	c.logger.Debug("Cache miss for CurrentPrice, fetching from provider", "key", key)
	v, err, shared := c.inflight.Do(key, func() (any, error) {
		price, err := c.next.CurrentPrice(ctx, ticker)
		if err != nil {
			return nil, err
		}
		if price == nil || price.IsZero() {
			return price, nil
		}
		if err := cache.SetJSON(ctx, c.cache, key, price, c.ttl); err != nil {
			c.logger.Error("Error setting quote cache", "key", key, "error", err)
		}
		return price, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("Shared in-flight quote lookup", "key", key)
	}
	price, _ := v.(*decimal.Decimal)
	return price, nil
}
