package provider

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/shopspring/decimal"
)

// TwelveData serves prices and daily series from api.twelvedata.com.
type TwelveData struct {
	httpClient
	apiKey string
}

// twelveDataError is the body Twelve Data sends with status "error".
type twelveDataError struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e twelveDataError) err() error {
	if e.Status != "error" {
		return nil
	}
	if e.Code == 429 {
		return fmt.Errorf("twelvedata: %s: %w", e.Message, domain.ErrUpstreamRateLimited)
	}
	return fmt.Errorf("twelvedata: %d %s: %w", e.Code, e.Message, provider.ErrNoData)
}

// NewTwelveData creates a Twelve Data client.
func NewTwelveData(cfg *config.TwelveData, logger *slog.Logger) *TwelveData {
	return &TwelveData{
		httpClient: newHTTPClient("twelvedata", cfg.ApiUrl, cfg.HTTPTimeout, logger),
		apiKey:     cfg.ApiKey,
	}
}

// CurrentPrice calls /price.
func (t *TwelveData) CurrentPrice(ctx context.Context, ticker string) (*decimal.Decimal, error) {
	if t.apiKey == "" {
		return nil, provider.ErrNotConfigured
	}
	var body struct {
		twelveDataError
		Price string `json:"price"`
	}
	params := url.Values{"symbol": {domain.NormalizeTicker(ticker)}, "apikey": {t.apiKey}}
	if err := t.getJSON(ctx, "/price", params, &body); err != nil {
		return nil, err
	}
	if err := body.err(); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(body.Price)
	if err != nil {
		return nil, fmt.Errorf("twelvedata: price %q: %w", body.Price, provider.ErrNoData)
	}
	return &price, nil
}

// DailyCloses calls /time_series with a 1day interval in ascending order.
func (t *TwelveData) DailyCloses(ctx context.Context, ticker string, days int) ([]portfolio.PricePoint, error) {
	if t.apiKey == "" {
		return nil, provider.ErrNotConfigured
	}
	ticker = domain.NormalizeTicker(ticker)
	var body struct {
		twelveDataError
		Values []struct {
			Datetime string `json:"datetime"`
			Close    string `json:"close"`
		} `json:"values"`
	}
	params := url.Values{
		"symbol":     {ticker},
		"interval":   {"1day"},
		"outputsize": {strconv.Itoa(days)},
		"order":      {"ASC"},
		"apikey":     {t.apiKey},
	}
	if err := t.getJSON(ctx, "/time_series", params, &body); err != nil {
		return nil, err
	}
	if err := body.err(); err != nil {
		return nil, err
	}
	points := make([]portfolio.PricePoint, 0, len(body.Values))
	for _, v := range body.Values {
		if len(v.Datetime) < 10 {
			continue
		}
		date, err := time.Parse(domain.DateLayout, v.Datetime[:10])
		if err != nil {
			continue
		}
		closePrice, err := decimal.NewFromString(v.Close)
		if err != nil {
			continue
		}
		points = append(points, portfolio.PricePoint{Ticker: ticker, Date: date, Close: closePrice})
	}
	return ascending(points, days), nil
}
