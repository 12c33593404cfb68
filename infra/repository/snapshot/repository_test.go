package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/internal/testdb"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotUpsertIsIdempotentPerDay(t *testing.T) {
	ctx := context.Background()
	r := New(testdb.SQLite(t, &Snapshot{}))
	userID := uuid.New()
	day := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.Upsert(ctx, userID, portfolio.Snapshot{Date: day.Add(9 * time.Hour), Value: decimal.NewFromInt(100), Invested: decimal.NewFromInt(90)}))
	require.NoError(t, r.Upsert(ctx, userID, portfolio.Snapshot{Date: day, Value: decimal.RequireFromString("110.456"), Invested: decimal.NewFromInt(90)}))
	require.NoError(t, r.Upsert(ctx, userID, portfolio.Snapshot{Date: day.AddDate(0, 0, -1), Value: decimal.NewFromInt(95), Invested: decimal.NewFromInt(90)}))
	require.NoError(t, r.Upsert(ctx, uuid.New(), portfolio.Snapshot{Date: day, Value: decimal.NewFromInt(1), Invested: decimal.NewFromInt(1)}))

	got, err := r.List(ctx, userID, day.AddDate(0, 0, -30))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, day.AddDate(0, 0, -1), got[0].Date)
	assert.Equal(t, day, got[1].Date)
	assert.True(t, got[1].Value.Equal(decimal.RequireFromString("110.46")))

	got, err = r.List(ctx, userID, day)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
