package pricehistory

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory is a daily close, unique per (ticker, date).
type PriceHistory struct {
	ID     uint            `gorm:"primaryKey"`
	Ticker string          `gorm:"size:10;not null;uniqueIndex:idx_price_history_ticker_date"`
	Date   time.Time       `gorm:"type:date;not null;uniqueIndex:idx_price_history_ticker_date"`
	Close  decimal.Decimal `gorm:"type:numeric(14,4);not null"`
}

func (PriceHistory) TableName() string { return "price_history" }
