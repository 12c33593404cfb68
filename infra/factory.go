package infra

import (
	"context"
	"io"
	"log/slog"

	infra_cache "github.com/amirasaad/alphaquantum/infra/cache"
	infra_provider "github.com/amirasaad/alphaquantum/infra/provider"
	"github.com/amirasaad/alphaquantum/pkg/cache"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/provider"
)

// NewCache returns a Redis cache when cfg.URL is set and an in-memory cache
// otherwise. The returned closer releases it.
func NewCache(ctx context.Context, cfg *config.Redis, logger *slog.Logger) (cache.Cache, io.Closer, error) {
	if cfg != nil && cfg.URL != "" {
		rc, err := infra_cache.NewRedisCache(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to connect to Redis", "error", err)
			return nil, nil, err
		}
		logger.Info("Using Redis cache", "prefix", cfg.KeyPrefix)
		return rc, rc, nil
	}
	mc := infra_cache.NewMemoryCache(0)
	logger.Info("Using in-memory cache")
	return mc, mc, nil
}

// NewMarketDataSystem creates the provider clients, the fallback chains and
// the quote cache in front of current prices.
func NewMarketDataSystem(
	logger *slog.Logger,
	cfg *config.MarketData,
	quotes *config.QuoteCache,
	quoteCache cache.Cache,
) provider.MarketData {
	td := infra_provider.NewTwelveData(cfg.TwelveData, logger)
	fh := infra_provider.NewFinnhub(cfg.Finnhub, logger)
	av := infra_provider.NewAlphaVantage(cfg.AlphaVantage, logger)

	for name, key := range map[string]string{
		"twelvedata":   cfg.TwelveData.ApiKey,
		"finnhub":      cfg.Finnhub.ApiKey,
		"alphavantage": cfg.AlphaVantage.ApiKey,
	} {
		if key == "" {
			logger.Warn("No API key configured, provider disabled", "provider", name)
			continue
		}
		logger.Info("Market data provider configured", "provider", name, "apiKey", maskAPIKey(key))
	}

	agg := infra_provider.NewAggregator(td, fh, av, logger)
	if quoteCache == nil {
		return agg
	}
	cached := infra_provider.NewCachedPrices(agg, quoteCache, quotes.TTL, quotes.Prefix, logger)
	logger.Info("Market data system initialized", "quoteCacheTTL", quotes.TTL)
	return agg.WithPrices(cached)
}

// maskAPIKey returns a masked version of the API key for logging
func maskAPIKey(apiKey string) string {
	if len(apiKey) <= 8 {
		return "***"
	}
	return apiKey[:4] + "..." + apiKey[len(apiKey)-4:]
}
