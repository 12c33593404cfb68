package position

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Position is a row of the positions table ("Accion").
type Position struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	PortfolioID  *uuid.UUID          `gorm:"type:uuid;index"`
	Name         string              `gorm:"size:100;not null"`
	Ticker       string              `gorm:"size:10;not null;index"`
	Quantity     decimal.Decimal     `gorm:"type:numeric(18,4);not null"`
	BuyPrice     decimal.Decimal     `gorm:"type:numeric(18,4);not null"`
	CurrentPrice decimal.NullDecimal `gorm:"type:numeric(18,2)"`
	Date         time.Time           `gorm:"type:date;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Position) TableName() string { return "positions" }

func toModel(p *portfolio.Position) *Position {
	m := &Position{
		ID:          p.ID,
		UserID:      p.UserID,
		PortfolioID: p.PortfolioID,
		Name:        p.Name,
		Ticker:      p.Ticker,
		Quantity:    p.Quantity,
		BuyPrice:    p.BuyPrice,
		Date:        p.Date,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.CurrentPrice != nil {
		m.CurrentPrice = decimal.NewNullDecimal(*p.CurrentPrice)
	}
	return m
}

func (m *Position) toDomain() *portfolio.Position {
	p := &portfolio.Position{
		ID:          m.ID,
		UserID:      m.UserID,
		PortfolioID: m.PortfolioID,
		Name:        m.Name,
		Ticker:      m.Ticker,
		Quantity:    m.Quantity,
		BuyPrice:    m.BuyPrice,
		Date:        m.Date.UTC(),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.CurrentPrice.Valid {
		price := m.CurrentPrice.Decimal
		p.CurrentPrice = &price
	}
	return p
}
