package provider

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/shopspring/decimal"
)

// Aggregator routes each market-data port to the provider that serves it.
//
//   - prices: Twelve Data, then Finnhub
//   - daily series: Twelve Data, then Alpha Vantage
//   - metrics: Finnhub
//   - fundamentals and corporate events: Alpha Vantage
type Aggregator struct {
	prices      []provider.Prices
	series      []provider.Series
	metrics     provider.Metrics
	fundamental *AlphaVantage
	logger      *slog.Logger
}

var _ provider.MarketData = (*Aggregator)(nil)

// NewAggregator wires the three clients together.
func NewAggregator(td *TwelveData, fh *Finnhub, av *AlphaVantage, logger *slog.Logger) *Aggregator {
	return &Aggregator{
		prices:      []provider.Prices{td, fh},
		series:      []provider.Series{td, av},
		metrics:     fh,
		fundamental: av,
		logger:      logger,
	}
}

// WithPrices returns a copy whose CurrentPrice goes through p. The
// receiver keeps its own chain, so p may wrap it.
func (a *Aggregator) WithPrices(p provider.Prices) *Aggregator {
	cp := *a
	cp.prices = []provider.Prices{p}
	return &cp
}

// CurrentPrice tries each price source in order.
func (a *Aggregator) CurrentPrice(ctx context.Context, ticker string) (*decimal.Decimal, error) {
	var errs []error
	for _, p := range a.prices {
		price, err := p.CurrentPrice(ctx, ticker)
		if err == nil && price != nil {
			return price, nil
		}
		if err != nil && !errors.Is(err, provider.ErrNotConfigured) {
			a.logger.Warn("Price source failed, trying next", "ticker", ticker, "error", err)
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// DailyCloses tries Twelve Data and falls back to Alpha Vantage when it
// fails or returns nothing.
func (a *Aggregator) DailyCloses(ctx context.Context, ticker string, days int) ([]portfolio.PricePoint, error) {
	var errs []error
	for _, s := range a.series {
		points, err := s.DailyCloses(ctx, ticker, days)
		if err == nil && len(points) > 0 {
			return points, nil
		}
		if err == nil {
			err = provider.ErrNoData
		}
		if !errors.Is(err, provider.ErrNotConfigured) {
			a.logger.Warn("Series source failed, trying next", "ticker", ticker, "error", err)
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (a *Aggregator) Metrics(ctx context.Context, ticker string) (watchlist.Metrics, error) {
	return a.metrics.Metrics(ctx, ticker)
}

func (a *Aggregator) Overview(ctx context.Context, ticker string) (fundamental.Overview, error) {
	return a.fundamental.Overview(ctx, ticker)
}

func (a *Aggregator) Earnings(ctx context.Context, ticker string) ([]provider.Earning, error) {
	return a.fundamental.Earnings(ctx, ticker)
}

func (a *Aggregator) Dividends(ctx context.Context, ticker string) ([]provider.DividendPayment, error) {
	return a.fundamental.Dividends(ctx, ticker)
}
