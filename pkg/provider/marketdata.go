// Package provider defines the market-data ports the services depend on.
package provider

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotConfigured is returned by a client without an API key.
	ErrNotConfigured = errors.New("market data provider not configured")
	// ErrNoData is returned when a provider answers without usable data.
	ErrNoData = errors.New("market data provider returned no data")
)

// Prices returns the latest traded price of a ticker.
type Prices interface {
	CurrentPrice(ctx context.Context, ticker string) (*decimal.Decimal, error)
}

// Series returns daily closes, oldest first, limited to the last days points.
type Series interface {
	DailyCloses(ctx context.Context, ticker string, days int) ([]portfolio.PricePoint, error)
}

// Metrics returns the quote plus valuation metrics used by the watchlist.
type Metrics interface {
	Metrics(ctx context.Context, ticker string) (watchlist.Metrics, error)
}

// Fundamentals returns the normalized company overview.
type Fundamentals interface {
	Overview(ctx context.Context, ticker string) (fundamental.Overview, error)
}

// Earning is one reported quarter.
type Earning struct {
	ReportedDate time.Time
	ReportedEPS  string
	EstimatedEPS string
}

// DividendPayment is one historical dividend.
type DividendPayment struct {
	PaymentDate time.Time
	Amount      string
}

// CorporateEvents returns earnings and dividend history for the calendar.
type CorporateEvents interface {
	Earnings(ctx context.Context, ticker string) ([]Earning, error)
	Dividends(ctx context.Context, ticker string) ([]DividendPayment, error)
}

// MarketData bundles every market-data port.
type MarketData interface {
	Prices
	Series
	Metrics
	Fundamentals
	CorporateEvents
}
