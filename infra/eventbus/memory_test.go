package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/amirasaad/alphaquantum/pkg/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestMemoryEventBus_Emit(t *testing.T) {
	bus := NewWithMemory(discard())
	var got []string
	bus.Register(events.PositionOpenedType, func(_ context.Context, e events.Event) error {
		got = append(got, e.(events.PositionOpened).Ticker)
		return nil
	})
	bus.Register(events.PositionOpenedType, func(context.Context, events.Event) error {
		return errors.New("ignored")
	})
	bus.Register(events.PositionOpenedType, func(context.Context, events.Event) error {
		panic("boom")
	})

	require.NoError(t, bus.Emit(context.Background(), events.PositionOpened{Ticker: "AAPL"}))
	require.NoError(t, bus.Emit(context.Background(), events.TransactionRecorded{Ticker: "MSFT"}))

	assert.Equal(t, []string{"AAPL"}, got)
	assert.Len(t, bus.Published(), 2)
	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryAsyncEventBus_DrainsOnClose(t *testing.T) {
	bus := NewWithMemoryAsync(discard())
	var n atomic.Int32
	bus.Register(events.TransactionRecordedType, func(ctx context.Context, _ events.Event) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n.Add(1)
		return nil
	})
	bus.Register(events.TransactionRecordedType, func(context.Context, events.Event) error {
		panic("boom")
	})

	ctx, cancel := context.WithCancel(context.Background())
	for i := 0; i < 5; i++ {
		require.NoError(t, bus.Emit(ctx, events.TransactionRecorded{Ticker: "AAPL"}))
	}
	cancel()
	bus.Close()
	assert.Equal(t, int32(5), n.Load())
}
