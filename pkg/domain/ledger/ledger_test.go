package ledger

import (
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uid = uuid.New()

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func day(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

func tx(t *testing.T, typ Type, qty, price, commission string, d int) *Transaction {
	t.Helper()
	out, err := New(uid, "aapl", typ, dec(qty), dec(price), dec(commission), day(d), "")
	require.NoError(t, err)
	return out
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
		err  bool
	}{
		{"BUY", Buy, false},
		{"compra", Buy, false},
		{"Compra", Buy, false},
		{"sell", Sell, false},
		{"Venta", Sell, false},
		{"DIV", Dividend, false},
		{"dividendo", Dividend, false},
		{"split", "", true},
	}
	for _, tc := range tests {
		got, err := ParseType(tc.in)
		if tc.err {
			assert.ErrorIs(t, err, domain.ErrValidation)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestNewValidation(t *testing.T) {
	_, err := New(uid, "", Buy, dec("1"), dec("1"), decimal.Zero, day(1), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = New(uid, "AAPL", Buy, dec("0"), dec("1"), decimal.Zero, day(1), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = New(uid, "AAPL", Buy, dec("1"), dec("-1"), decimal.Zero, day(1), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = New(uid, "AAPL", Buy, dec("1"), dec("1"), dec("-0.5"), day(1), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = New(uid, "AAPL", Buy, dec("1"), dec("1"), decimal.Zero, time.Time{}, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "101", tx(t, Buy, "10", "10", "1", 1).Amount().String())
	assert.Equal(t, "-99", tx(t, Sell, "10", "10", "1", 1).Amount().String())
	assert.Equal(t, "2.5", tx(t, Dividend, "1", "2.5", "0", 1).Amount().String())
}

func TestRecompute(t *testing.T) {
	t.Run("average cost with commission", func(t *testing.T) {
		r := Recompute([]*Transaction{
			tx(t, Buy, "10", "100", "5", 1),
			tx(t, Buy, "10", "110", "5", 2),
		})
		assert.False(t, r.Closed)
		assert.Equal(t, "20", r.Quantity.String())
		assert.Equal(t, "105.5", r.AvgCost.String())
	})

	t.Run("sell keeps invested", func(t *testing.T) {
		r := Recompute([]*Transaction{
			tx(t, Sell, "5", "200", "0", 3),
			tx(t, Buy, "10", "100", "0", 1),
			tx(t, Dividend, "1", "7", "0", 2),
		})
		assert.Equal(t, "5", r.Quantity.String())
		assert.Equal(t, "200", r.AvgCost.String())
	})

	t.Run("quantized to four places", func(t *testing.T) {
		r := Recompute([]*Transaction{tx(t, Buy, "3", "10", "0", 1)})
		assert.Equal(t, "10", r.AvgCost.String())
		r = Recompute([]*Transaction{tx(t, Buy, "3", "10", "1", 1)})
		assert.Equal(t, "10.3333", r.AvgCost.String())
	})

	t.Run("fully sold closes", func(t *testing.T) {
		r := Recompute([]*Transaction{
			tx(t, Buy, "10", "100", "0", 1),
			tx(t, Sell, "10", "120", "0", 2),
		})
		assert.True(t, r.Closed)
	})

	t.Run("oversold closes", func(t *testing.T) {
		r := Recompute([]*Transaction{tx(t, Sell, "1", "1", "0", 1)})
		assert.True(t, r.Closed)
	})

	t.Run("empty ledger closes", func(t *testing.T) {
		assert.True(t, Recompute(nil).Closed)
	})
}

func TestSortTiesBreakOnCreation(t *testing.T) {
	first := tx(t, Buy, "1", "1", "0", 5)
	second := tx(t, Sell, "1", "1", "0", 5)
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	older := tx(t, Buy, "1", "1", "0", 1)
	txs := []*Transaction{second, first, older}
	Sort(txs)
	assert.Equal(t, []*Transaction{older, first, second}, txs)
}

func TestSharesOnDate(t *testing.T) {
	txs := []*Transaction{
		tx(t, Buy, "10", "1", "0", 1),
		tx(t, Sell, "4", "1", "0", 5),
		tx(t, Dividend, "1", "1", "0", 6),
		tx(t, Buy, "2", "1", "0", 10),
	}
	assert.Equal(t, "0", SharesOnDate(txs, day(1).AddDate(0, 0, -1)).String())
	assert.Equal(t, "10", SharesOnDate(txs, day(1)).String())
	assert.Equal(t, "6", SharesOnDate(txs, day(9)).String())
	assert.Equal(t, "8", SharesOnDate(txs, day(10).Add(20*time.Hour)).String())

	oversold := []*Transaction{tx(t, Sell, "3", "1", "0", 1)}
	assert.True(t, SharesOnDate(oversold, day(2)).IsZero())
}

func TestPnL(t *testing.T) {
	b1 := tx(t, Buy, "10", "100", "1", 1)
	s1 := tx(t, Sell, "4", "120", "1", 3)
	other, err := New(uid, "msft", Buy, dec("1"), dec("50"), decimal.Zero, day(2), "")
	require.NoError(t, err)

	rows, total := PnL([]*Transaction{s1, other, b1}, Filter{})
	require.Len(t, rows, 3)
	assert.Equal(t, b1, rows[0].Transaction)
	assert.Equal(t, "10", rows[0].PositionAfter.String())
	assert.Equal(t, "100.1", rows[0].AvgCostAfter.String())
	assert.Equal(t, "MSFT", rows[1].Transaction.Ticker)
	assert.Equal(t, "6", rows[2].PositionAfter.String())
	assert.Equal(t, "166.8333", rows[2].AvgCostAfter.String())
	// 1001 + 50 - 479
	assert.Equal(t, "572", total.String())

	from := day(2)
	rows, total = PnL([]*Transaction{s1, other, b1}, Filter{Ticker: "aapl", From: &from})
	require.Len(t, rows, 1)
	assert.Equal(t, s1, rows[0].Transaction)
	assert.Equal(t, "6", rows[0].PositionAfter.String())
	assert.Equal(t, "-479", total.String())

	records := CSVRecords(rows, total)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-03", records[0].Date)
	assert.Equal(t, "SELL", records[0].Type)
	assert.Equal(t, "4.0000", records[0].Quantity)
	assert.Equal(t, "-479.00", records[0].Amount)
	assert.Equal(t, "TOTAL", records[1].Date)
	assert.Equal(t, "-479.00", records[1].Amount)
}
