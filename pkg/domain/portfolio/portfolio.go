// Package portfolio models a user's holdings: named portfolios, the
// positions inside them and the aggregates computed over positions.
package portfolio

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Portfolio is a named group of positions.
type Portfolio struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"nombre"`
	CreatedAt time.Time `json:"creado"`
}

// New validates and builds a Portfolio.
func New(userID uuid.UUID, name string) (*Portfolio, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > 100 {
		return nil, domain.Invalid("nombre", "must be between 1 and 100 characters")
	}
	return &Portfolio{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Position is a holding of one ticker ("Accion").
type Position struct {
	ID           uuid.UUID        `json:"id"`
	UserID       uuid.UUID        `json:"user_id"`
	PortfolioID  *uuid.UUID       `json:"cartera_id,omitempty"`
	Name         string           `json:"nombre"`
	Ticker       string           `json:"ticker"`
	Quantity     decimal.Decimal  `json:"cantidad"`
	BuyPrice     decimal.Decimal  `json:"precio_compra"`
	CurrentPrice *decimal.Decimal `json:"precio_actual"`
	Date         time.Time        `json:"fecha"`
	CreatedAt    time.Time        `json:"creado"`
	UpdatedAt    time.Time        `json:"actualizado"`
}

// NewPosition validates and builds a Position.
func NewPosition(
	userID uuid.UUID,
	portfolioID *uuid.UUID,
	name, ticker string,
	quantity, buyPrice decimal.Decimal,
	date time.Time,
) (*Position, error) {
	p := &Position{
		ID:          uuid.New(),
		UserID:      userID,
		PortfolioID: portfolioID,
		Date:        domain.Day(date),
		CreatedAt:   time.Now().UTC(),
	}
	p.UpdatedAt = p.CreatedAt
	if err := p.Apply(name, ticker, quantity, buyPrice); err != nil {
		return nil, err
	}
	return p, nil
}

// Apply validates and sets the editable fields.
func (p *Position) Apply(name, ticker string, quantity, buyPrice decimal.Decimal) error {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" || len(ticker) > 10 {
		return domain.Invalid("ticker", "must be between 1 and 10 characters")
	}
	if !quantity.IsPositive() {
		return domain.Invalid("cantidad", "must be greater than zero")
	}
	if buyPrice.IsNegative() {
		return domain.Invalid("precio_compra", "must not be negative")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = ticker
	}
	p.Name = name
	p.Ticker = ticker
	p.Quantity = domain.Quantize(quantity)
	p.BuyPrice = domain.Quantize(buyPrice)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// Invested is the cost basis: buy price times quantity.
func (p *Position) Invested() decimal.Decimal {
	return p.BuyPrice.Mul(p.Quantity)
}

// MarketValue is current price times quantity. ok is false when no price is known.
func (p *Position) MarketValue() (value decimal.Decimal, ok bool) {
	if p.CurrentPrice == nil {
		return decimal.Zero, false
	}
	return p.CurrentPrice.Mul(p.Quantity), true
}

// SetPrice stores a fresh quote. Nil and zero quotes keep the stored price.
func (p *Position) SetPrice(quote *decimal.Decimal) bool {
	if quote == nil || quote.IsZero() {
		return false
	}
	price := domain.RoundMoney(*quote)
	p.CurrentPrice = &price
	p.UpdatedAt = time.Now().UTC()
	return true
}
