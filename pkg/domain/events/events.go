// Package events defines the domain events published on the event bus.
package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Event is anything published on the bus.
type Event interface {
	Type() string
}

const (
	PositionOpenedType      = "position.opened"
	TransactionRecordedType = "transaction.recorded"
)

// PositionOpened is emitted after a position is created, directly or by the
// ledger.
type PositionOpened struct {
	UserID     uuid.UUID
	PositionID uuid.UUID
	Ticker     string
}

func (PositionOpened) Type() string { return PositionOpenedType }

// TransactionRecorded is emitted after a BUY or SELL is stored.
type TransactionRecorded struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Ticker        string
	// Kind is BUY or SELL.
	Kind     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Date     time.Time
}

func (TransactionRecorded) Type() string { return TransactionRecordedType }
