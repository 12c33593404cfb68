// Package dividend models dividends received on a position and the report
// built over them.
package dividend

import (
	"sort"
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dividend is a payment received for a position.
type Dividend struct {
	ID         uuid.UUID       `json:"id"`
	PositionID uuid.UUID       `json:"accion_id"`
	Ticker     string          `json:"ticker"`
	Date       time.Time       `json:"fecha"`
	Amount     decimal.Decimal `json:"monto"`
	Note       string          `json:"nota"`
}

// New validates and builds a Dividend.
func New(positionID uuid.UUID, ticker string, date time.Time, amount decimal.Decimal, note string) (*Dividend, error) {
	d := &Dividend{ID: uuid.New(), PositionID: positionID, Ticker: domain.NormalizeTicker(ticker)}
	if err := d.Apply(date, amount, note); err != nil {
		return nil, err
	}
	return d, nil
}

// Apply validates and sets the editable fields.
func (d *Dividend) Apply(date time.Time, amount decimal.Decimal, note string) error {
	if date.IsZero() {
		return domain.Invalid("fecha", "is required")
	}
	if !amount.IsPositive() {
		return domain.Invalid("monto", "must be greater than zero")
	}
	d.Date = domain.Day(date)
	d.Amount = domain.Quantize(amount)
	d.Note = strings.TrimSpace(note)
	return nil
}

// Report aggregates a set of dividends.
type Report struct {
	Total    decimal.Decimal
	Months   []string
	Monthly  []decimal.Decimal
	ByTicker map[string]decimal.Decimal
}

// Summarize totals dividends overall, per YYYY-MM month (ascending) and per ticker.
func Summarize(divs []*Dividend) Report {
	r := Report{Total: decimal.Zero, ByTicker: make(map[string]decimal.Decimal)}
	monthly := make(map[string]decimal.Decimal)
	for _, d := range divs {
		r.Total = r.Total.Add(d.Amount)
		key := d.Date.Format("2006-01")
		monthly[key] = monthly[key].Add(d.Amount)
		r.ByTicker[d.Ticker] = r.ByTicker[d.Ticker].Add(d.Amount)
	}
	for k := range monthly {
		r.Months = append(r.Months, k)
	}
	sort.Strings(r.Months)
	for _, k := range r.Months {
		r.Monthly = append(r.Monthly, monthly[k])
	}
	return r
}
