package dividend

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/dividend"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dividend is a row of the dividends table.
type Dividend struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PositionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date       time.Time       `gorm:"type:date;not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(14,4);not null"`
	Note       string          `gorm:"size:255"`
}

func (Dividend) TableName() string { return "dividends" }

// withTicker is a dividend joined with its position's ticker.
type withTicker struct {
	Dividend
	Ticker string
}

func toModel(d *dividend.Dividend) *Dividend {
	return &Dividend{ID: d.ID, PositionID: d.PositionID, Date: d.Date, Amount: d.Amount, Note: d.Note}
}

func (m *withTicker) toDomain() *dividend.Dividend {
	return &dividend.Dividend{
		ID:         m.ID,
		PositionID: m.PositionID,
		Ticker:     m.Ticker,
		Date:       m.Date.UTC(),
		Amount:     m.Amount,
		Note:       m.Note,
	}
}
