package alarm

import (
	"testing"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	a, err := New(uuid.New(), uuid.New(), "aapl", decimal.NewFromInt(200))
	require.NoError(t, err)
	assert.Equal(t, "AAPL", a.Ticker)

	below := decimal.NewFromInt(199)
	at := decimal.NewFromInt(200)
	assert.False(t, a.Check(nil))
	assert.False(t, a.Check(&below))
	assert.False(t, a.Activated)
	assert.True(t, a.Check(&at))
	assert.True(t, a.Activated)
	assert.False(t, a.Check(&at), "already activated")
}

func TestNewRejectsNonPositiveTarget(t *testing.T) {
	_, err := New(uuid.New(), uuid.New(), "AAPL", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
