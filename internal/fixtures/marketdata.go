package fixtures

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockMarketData is a testify mock of provider.MarketData.
type MockMarketData struct {
	mock.Mock
}

var _ provider.MarketData = (*MockMarketData)(nil)

func (m *MockMarketData) CurrentPrice(ctx context.Context, ticker string) (*decimal.Decimal, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*decimal.Decimal), args.Error(1)
}

func (m *MockMarketData) DailyCloses(ctx context.Context, ticker string, days int) ([]portfolio.PricePoint, error) {
	args := m.Called(ctx, ticker, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]portfolio.PricePoint), args.Error(1)
}

func (m *MockMarketData) Metrics(ctx context.Context, ticker string) (watchlist.Metrics, error) {
	args := m.Called(ctx, ticker)
	return args.Get(0).(watchlist.Metrics), args.Error(1)
}

func (m *MockMarketData) Overview(ctx context.Context, ticker string) (fundamental.Overview, error) {
	args := m.Called(ctx, ticker)
	return args.Get(0).(fundamental.Overview), args.Error(1)
}

func (m *MockMarketData) Earnings(ctx context.Context, ticker string) ([]provider.Earning, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.Earning), args.Error(1)
}

func (m *MockMarketData) Dividends(ctx context.Context, ticker string) ([]provider.DividendPayment, error) {
	args := m.Called(ctx, ticker)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]provider.DividendPayment), args.Error(1)
}

// Price returns a pointer to the decimal parsed from s.
func Price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
