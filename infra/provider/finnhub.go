package provider

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/shopspring/decimal"
)

// Finnhub serves quotes and valuation metrics from finnhub.io.
type Finnhub struct {
	httpClient
	apiKey string
}

// NewFinnhub creates a Finnhub client.
func NewFinnhub(cfg *config.Finnhub, logger *slog.Logger) *Finnhub {
	return &Finnhub{
		httpClient: newHTTPClient("finnhub", cfg.ApiUrl, cfg.HTTPTimeout, logger),
		apiKey:     cfg.ApiKey,
	}
}

// CurrentPrice returns the "c" field of /quote. Finnhub answers unknown
// symbols with zeros, which are reported as no data.
func (f *Finnhub) CurrentPrice(ctx context.Context, ticker string) (*decimal.Decimal, error) {
	if f.apiKey == "" {
		return nil, provider.ErrNotConfigured
	}
	var body struct {
		Current *float64 `json:"c"`
	}
	params := url.Values{"symbol": {domain.NormalizeTicker(ticker)}, "token": {f.apiKey}}
	if err := f.getJSON(ctx, "/quote", params, &body); err != nil {
		return nil, err
	}
	price := positive(body.Current)
	if price == nil {
		return nil, provider.ErrNoData
	}
	return price, nil
}

// Metrics combines /quote with /stock/metric. A failed metric call still
// returns the quote.
func (f *Finnhub) Metrics(ctx context.Context, ticker string) (watchlist.Metrics, error) {
	if f.apiKey == "" {
		return watchlist.Metrics{}, provider.ErrNotConfigured
	}
	price, err := f.CurrentPrice(ctx, ticker)
	if err != nil {
		f.logger.Warn("Finnhub quote failed", "ticker", ticker, "error", err)
	}
	m := watchlist.Metrics{Price: price}

	var body struct {
		Metric struct {
			PE      *float64 `json:"peInclExtraTTM"`
			High52W *float64 `json:"52WeekHigh"`
			Low52W  *float64 `json:"52WeekLow"`
		} `json:"metric"`
	}
	params := url.Values{"symbol": {domain.NormalizeTicker(ticker)}, "metric": {"all"}, "token": {f.apiKey}}
	if err := f.getJSON(ctx, "/stock/metric", params, &body); err != nil {
		if price == nil {
			return m, err
		}
		f.logger.Warn("Finnhub metrics failed", "ticker", ticker, "error", err)
		return m, nil
	}
	m.PE = number(body.Metric.PE)
	m.High52W = number(body.Metric.High52W)
	m.Low52W = number(body.Metric.Low52W)
	return m, nil
}

func number(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}

func positive(f *float64) *decimal.Decimal {
	d := number(f)
	if d == nil || !d.IsPositive() {
		return nil
	}
	return d
}
