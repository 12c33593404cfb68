package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/shopspring/decimal"
)

// AlphaVantage serves fundamentals, corporate events and a fallback daily
// series from alphavantage.co.
type AlphaVantage struct {
	httpClient
	apiKey string
}

// NewAlphaVantage creates an Alpha Vantage client.
func NewAlphaVantage(cfg *config.AlphaVantage, logger *slog.Logger) *AlphaVantage {
	return &AlphaVantage{
		httpClient: newHTTPClient("alphavantage", cfg.ApiUrl, cfg.HTTPTimeout, logger),
		apiKey:     cfg.ApiKey,
	}
}

// query calls function for ticker and decodes into a raw field map so the
// throttling notices can be detected before the payload is interpreted.
func (a *AlphaVantage) query(ctx context.Context, function, ticker string, extra url.Values) (map[string]json.RawMessage, error) {
	if a.apiKey == "" {
		return nil, provider.ErrNotConfigured
	}
	params := url.Values{
		"function": {function},
		"symbol":   {domain.NormalizeTicker(ticker)},
		"apikey":   {a.apiKey},
	}
	for k, v := range extra {
		params[k] = v
	}
	var body map[string]json.RawMessage
	if err := a.getJSON(ctx, "", params, &body); err != nil {
		return nil, err
	}
	for _, notice := range []string{"Note", "Information"} {
		if msg, ok := body[notice]; ok {
			return nil, fmt.Errorf("alphavantage %s: %s: %w", function, msg, domain.ErrUpstreamRateLimited)
		}
	}
	if msg, ok := body["Error Message"]; ok {
		return nil, fmt.Errorf("alphavantage %s: %s: %w", function, msg, provider.ErrNoData)
	}
	return body, nil
}

// Overview calls OVERVIEW. A body without "Name" has no data.
func (a *AlphaVantage) Overview(ctx context.Context, ticker string) (fundamental.Overview, error) {
	body, err := a.query(ctx, "OVERVIEW", ticker, nil)
	if err != nil {
		return fundamental.Overview{}, err
	}
	raw := make(map[string]string, len(body))
	for k, v := range body {
		var s string
		if json.Unmarshal(v, &s) == nil {
			raw[k] = s
		}
	}
	if raw["Name"] == "" {
		return fundamental.Overview{}, provider.ErrNoData
	}
	return fundamental.Normalize(raw), nil
}

// DailyCloses calls TIME_SERIES_DAILY_ADJUSTED in compact mode and prefers
// the adjusted close.
func (a *AlphaVantage) DailyCloses(ctx context.Context, ticker string, days int) ([]portfolio.PricePoint, error) {
	body, err := a.query(ctx, "TIME_SERIES_DAILY_ADJUSTED", ticker, url.Values{"outputsize": {"compact"}})
	if err != nil {
		return nil, err
	}
	var series map[string]map[string]string
	if raw, ok := body["Time Series (Daily)"]; !ok || json.Unmarshal(raw, &series) != nil {
		return nil, provider.ErrNoData
	}
	ticker = domain.NormalizeTicker(ticker)
	points := make([]portfolio.PricePoint, 0, len(series))
	for day, fields := range series {
		date, err := time.Parse(domain.DateLayout, day)
		if err != nil {
			continue
		}
		value := fields["5. adjusted close"]
		if value == "" {
			value = fields["4. close"]
		}
		closePrice, err := decimal.NewFromString(value)
		if err != nil {
			continue
		}
		points = append(points, portfolio.PricePoint{Ticker: ticker, Date: date, Close: closePrice})
	}
	return ascending(points, days), nil
}

// Earnings calls EARNINGS and returns the quarterly entries.
func (a *AlphaVantage) Earnings(ctx context.Context, ticker string) ([]provider.Earning, error) {
	body, err := a.query(ctx, "EARNINGS", ticker, nil)
	if err != nil {
		return nil, err
	}
	var quarters []struct {
		ReportedDate string `json:"reportedDate"`
		ReportedEPS  string `json:"reportedEPS"`
		EstimatedEPS string `json:"estimatedEPS"`
	}
	if raw, ok := body["quarterlyEarnings"]; ok {
		if err := json.Unmarshal(raw, &quarters); err != nil {
			return nil, fmt.Errorf("alphavantage EARNINGS: decode: %w", err)
		}
	}
	out := make([]provider.Earning, 0, len(quarters))
	for _, q := range quarters {
		date, err := time.Parse(domain.DateLayout, q.ReportedDate)
		if err != nil {
			continue
		}
		out = append(out, provider.Earning{ReportedDate: date, ReportedEPS: q.ReportedEPS, EstimatedEPS: q.EstimatedEPS})
	}
	return out, nil
}

// Dividends calls DIVIDEND_HISTORY.
func (a *AlphaVantage) Dividends(ctx context.Context, ticker string) ([]provider.DividendPayment, error) {
	body, err := a.query(ctx, "DIVIDEND_HISTORY", ticker, nil)
	if err != nil {
		return nil, err
	}
	var rows []struct {
		PaymentDate string      `json:"payment_date"`
		Dividend    json.Number `json:"dividend"`
	}
	if raw, ok := body["data"]; ok {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("alphavantage DIVIDEND_HISTORY: decode: %w", err)
		}
	}
	out := make([]provider.DividendPayment, 0, len(rows))
	for _, r := range rows {
		date, err := time.Parse(domain.DateLayout, r.PaymentDate)
		if err != nil {
			continue
		}
		out = append(out, provider.DividendPayment{PaymentDate: date, Amount: r.Dividend.String()})
	}
	return out, nil
}

// ascending sorts points by date and keeps the last n.
func ascending(points []portfolio.PricePoint, n int) []portfolio.PricePoint {
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	if n > 0 && len(points) > n {
		points = points[len(points)-n:]
	}
	return points
}
