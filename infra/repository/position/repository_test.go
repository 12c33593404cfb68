package position

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/internal/testdb"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPosition(t *testing.T, userID uuid.UUID, portfolioID *uuid.UUID, ticker string) *portfolio.Position {
	t.Helper()
	p, err := portfolio.NewPosition(userID, portfolioID, "", ticker,
		decimal.NewFromInt(10), decimal.RequireFromString("12.5"),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func TestPositionRepository(t *testing.T) {
	ctx := context.Background()
	r := New(testdb.SQLite(t, &Position{}))
	userID := uuid.New()
	group := uuid.New()

	aapl := newPosition(t, userID, &group, "aapl")
	msft := newPosition(t, userID, nil, "MSFT")
	foreign := newPosition(t, uuid.New(), nil, "AAPL")
	for _, p := range []*portfolio.Position{aapl, msft, foreign} {
		require.NoError(t, r.Create(ctx, p))
	}

	t.Run("list is scoped and ordered", func(t *testing.T) {
		got, err := r.List(ctx, userID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "AAPL", got[0].Ticker)
		assert.Equal(t, "MSFT", got[1].Ticker)
		assert.Nil(t, got[0].CurrentPrice)
		assert.True(t, got[0].Quantity.Equal(decimal.NewFromInt(10)))
	})

	t.Run("find by ticker ignores case", func(t *testing.T) {
		got, err := r.FindByTicker(ctx, userID, "Aapl")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, aapl.ID, got.ID)

		got, err = r.FindByTicker(ctx, userID, "TSLA")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("get checks ownership", func(t *testing.T) {
		_, err := r.Get(ctx, userID, foreign.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("update stores price", func(t *testing.T) {
		aapl.SetPrice(ptr("15.456"))
		require.NoError(t, r.Update(ctx, aapl))
		got, err := r.Get(ctx, userID, aapl.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CurrentPrice)
		assert.True(t, got.CurrentPrice.Equal(decimal.RequireFromString("15.46")))
	})

	t.Run("portfolio scope", func(t *testing.T) {
		got, err := r.ListByPortfolio(ctx, userID, group)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, aapl.ID, got[0].ID)

		require.NoError(t, r.DeleteByPortfolio(ctx, userID, group))
		got, err = r.List(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("delete by ticker", func(t *testing.T) {
		require.NoError(t, r.DeleteByTicker(ctx, userID, "msft"))
		got, err := r.List(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, got)

		others, err := r.List(ctx, foreign.UserID)
		require.NoError(t, err)
		assert.Len(t, others, 1)
	})
}

func ptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
