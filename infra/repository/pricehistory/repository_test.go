package pricehistory

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/internal/testdb"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(ticker string, day int, close string) portfolio.PricePoint {
	return portfolio.PricePoint{
		Ticker: ticker,
		Date:   time.Date(2024, 2, day, 16, 30, 0, 0, time.UTC),
		Close:  decimal.RequireFromString(close),
	}
}

func TestPriceHistoryUpsert(t *testing.T) {
	ctx := context.Background()
	r := New(testdb.SQLite(t, &PriceHistory{}))

	require.NoError(t, r.Upsert(ctx, nil))
	require.NoError(t, r.Upsert(ctx, []portfolio.PricePoint{
		point("aapl", 1, "180.5"),
		point("AAPL", 2, "181"),
		point("MSFT", 1, "400"),
	}))
	require.NoError(t, r.Upsert(ctx, []portfolio.PricePoint{point("AAPL", 2, "182.25")}))

	got, err := r.List(ctx, []string{"aapl"}, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got[0].Date)
	assert.True(t, got[1].Close.Equal(decimal.RequireFromString("182.25")))

	got, err = r.List(ctx, []string{"AAPL", "MSFT"}, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AAPL", got[0].Ticker)

	got, err = r.List(ctx, nil, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, got)
}
