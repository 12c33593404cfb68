// Package ledger holds the buy/sell/dividend transaction log and the
// average-cost reduction that derives positions from it.
package ledger

import (
	"sort"
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type is the kind of a ledger entry.
type Type string

const (
	Buy      Type = "BUY"
	Sell     Type = "SELL"
	Dividend Type = "DIV"
)

// ParseType accepts the canonical codes and their Spanish labels in either case.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy", "compra":
		return Buy, nil
	case "sell", "venta":
		return Sell, nil
	case "div", "dividendo":
		return Dividend, nil
	}
	return "", domain.Invalid("tipo", "must be BUY, SELL or DIV")
}

// Transaction is one ledger entry.
type Transaction struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Ticker     string          `json:"ticker"`
	Type       Type            `json:"tipo"`
	Quantity   decimal.Decimal `json:"cantidad"`
	Price      decimal.Decimal `json:"precio"`
	Commission decimal.Decimal `json:"comision"`
	Date       time.Time       `json:"fecha"`
	Note       string          `json:"nota"`
	CreatedAt  time.Time       `json:"creado"`
}

// New validates and builds a Transaction.
func New(
	userID uuid.UUID,
	ticker string,
	typ Type,
	quantity, price, commission decimal.Decimal,
	date time.Time,
	note string,
) (*Transaction, error) {
	t := &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.Apply(ticker, typ, quantity, price, commission, date, note); err != nil {
		return nil, err
	}
	return t, nil
}

// Apply validates and sets the editable fields.
func (t *Transaction) Apply(
	ticker string,
	typ Type,
	quantity, price, commission decimal.Decimal,
	date time.Time,
	note string,
) error {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" || len(ticker) > 10 {
		return domain.Invalid("ticker", "must be between 1 and 10 characters")
	}
	if typ != Buy && typ != Sell && typ != Dividend {
		return domain.Invalid("tipo", "must be BUY, SELL or DIV")
	}
	if !quantity.IsPositive() {
		return domain.Invalid("cantidad", "must be greater than zero")
	}
	if price.IsNegative() {
		return domain.Invalid("precio", "must not be negative")
	}
	if commission.IsNegative() {
		return domain.Invalid("comision", "must not be negative")
	}
	if date.IsZero() {
		return domain.Invalid("fecha", "is required")
	}
	t.Ticker = ticker
	t.Type = typ
	t.Quantity = domain.Quantize(quantity)
	t.Price = domain.Quantize(price)
	t.Commission = domain.Quantize(commission)
	t.Date = domain.Day(date)
	t.Note = strings.TrimSpace(note)
	return nil
}

// Amount is the signed cash effect of the entry.
func (t *Transaction) Amount() decimal.Decimal {
	gross := t.Quantity.Mul(t.Price)
	switch t.Type {
	case Buy:
		return gross.Add(t.Commission)
	case Sell:
		return gross.Sub(t.Commission).Neg()
	default:
		return gross
	}
}

// Sort orders entries by date, then creation time, then id, oldest first.
func Sort(txs []*Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		a, b := txs[i], txs[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.String() < b.ID.String()
	})
}

// State is the running position while replaying a ledger.
type State struct {
	Quantity decimal.Decimal
	Invested decimal.Decimal
}

// Apply folds one entry into the state. SELL reduces quantity only.
func (s State) Apply(t *Transaction) State {
	switch t.Type {
	case Buy:
		s.Quantity = s.Quantity.Add(t.Quantity)
		s.Invested = s.Invested.Add(t.Quantity.Mul(t.Price)).Add(t.Commission)
	case Sell:
		s.Quantity = s.Quantity.Sub(t.Quantity)
	}
	return s
}

// AvgCost is invested / quantity, or zero when nothing is held.
func (s State) AvgCost() decimal.Decimal {
	if !s.Quantity.IsPositive() {
		return decimal.Zero
	}
	return s.Invested.Div(s.Quantity)
}

// Result is the position derived from a ledger.
type Result struct {
	Quantity decimal.Decimal
	AvgCost  decimal.Decimal
	// Closed is true when no shares remain and the position must be removed.
	Closed bool
}

// Recompute replays txs in ledger order and returns the resulting position.
// txs is not modified.
func Recompute(txs []*Transaction) Result {
	ordered := append([]*Transaction(nil), txs...)
	Sort(ordered)
	s := State{Quantity: decimal.Zero, Invested: decimal.Zero}
	for _, t := range ordered {
		s = s.Apply(t)
	}
	qty := domain.Quantize(s.Quantity)
	if !qty.IsPositive() {
		return Result{Quantity: decimal.Zero, AvgCost: decimal.Zero, Closed: true}
	}
	return Result{
		Quantity: qty,
		AvgCost:  domain.Quantize(s.Invested.Div(qty)),
	}
}

// SharesOnDate is the BUY minus SELL quantity of entries dated on or before
// date, clamped at zero.
func SharesOnDate(txs []*Transaction, date time.Time) decimal.Decimal {
	day := domain.Day(date)
	pos := decimal.Zero
	for _, t := range txs {
		if t.Date.After(day) {
			continue
		}
		switch t.Type {
		case Buy:
			pos = pos.Add(t.Quantity)
		case Sell:
			pos = pos.Sub(t.Quantity)
		}
	}
	if pos.IsNegative() {
		return decimal.Zero
	}
	return pos
}
