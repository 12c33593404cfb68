package fundamental_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/internal/fixtures"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	fundamentalsvc "github.com/amirasaad/alphaquantum/pkg/service/fundamental"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAnalyze(t *testing.T) {
	ctx := context.Background()
	uow, _ := fixtures.NewUoW(t)
	userID := fixtures.CreateUser(t, uow, "ana")
	market := &fixtures.MockMarketData{}
	svc := fundamentalsvc.New(uow, market, fixtures.Logger())

	per := 30.1
	market.On("DailyCloses", mock.Anything, "AAPL", fundamentalsvc.MaxSeriesDays).Return([]portfolio.PricePoint{
		{Ticker: "AAPL", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Close: decimal.RequireFromString("170.5")},
		{Ticker: "AAPL", Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), Close: decimal.RequireFromString("172")},
	}, nil)
	market.On("Overview", mock.Anything, "AAPL").Return(fundamental.Overview{Name: "Apple Inc", PER: &per}, nil)

	report, err := svc.Analyze(ctx, userID, "aapl", 500)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-05-01", "2024-05-02"}, report.Series.Dates)
	assert.Equal(t, []float64{170.5, 172}, report.Series.Closes)
	assert.Equal(t, "Apple Inc", report.Overview.Name)

	stored, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "AAPL", stored[0].Ticker)
	var back fundamental.Report
	require.NoError(t, json.Unmarshal(stored[0].Data, &back))
	assert.Equal(t, report, back)
	market.AssertExpectations(t)
}

func TestAnalyzeFailures(t *testing.T) {
	ctx := context.Background()
	uow, _ := fixtures.NewUoW(t)
	userID := fixtures.CreateUser(t, uow, "ana")

	t.Run("rate limit surfaces", func(t *testing.T) {
		market := &fixtures.MockMarketData{}
		market.On("DailyCloses", mock.Anything, "IBM", 30).Return([]portfolio.PricePoint{}, nil)
		market.On("Overview", mock.Anything, "IBM").
			Return(fundamental.Overview{}, fmt.Errorf("alphavantage: %w", domain.ErrUpstreamRateLimited))
		_, err := fundamentalsvc.New(uow, market, fixtures.Logger()).Analyze(ctx, userID, "IBM", 30)
		assert.ErrorIs(t, err, domain.ErrUpstreamRateLimited)
	})

	t.Run("overview only", func(t *testing.T) {
		market := &fixtures.MockMarketData{}
		market.On("DailyCloses", mock.Anything, "SAP", 30).Return(nil, provider.ErrNoData)
		market.On("Overview", mock.Anything, "SAP").Return(fundamental.Overview{Name: "SAP SE"}, nil)
		report, err := fundamentalsvc.New(uow, market, fixtures.Logger()).Analyze(ctx, userID, "SAP", 30)
		require.NoError(t, err)
		assert.Empty(t, report.Series.Dates)
		assert.Equal(t, "SAP SE", report.Overview.Name)
	})

	t.Run("nothing found", func(t *testing.T) {
		market := &fixtures.MockMarketData{}
		market.On("DailyCloses", mock.Anything, "ZZZZ", 30).Return(nil, provider.ErrNoData)
		market.On("Overview", mock.Anything, "ZZZZ").Return(fundamental.Overview{}, provider.ErrNoData)
		_, err := fundamentalsvc.New(uow, market, fixtures.Logger()).Analyze(ctx, userID, "ZZZZ", 30)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ticker required", func(t *testing.T) {
		_, err := fundamentalsvc.New(uow, &fixtures.MockMarketData{}, fixtures.Logger()).Analyze(ctx, userID, " ", 30)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	stored, err := fundamentalsvc.New(uow, nil, fixtures.Logger()).List(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}
