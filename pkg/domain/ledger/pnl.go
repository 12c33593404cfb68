package ledger

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/shopspring/decimal"
)

// PnLRow is one entry of the P&L report with the running position after it.
type PnLRow struct {
	Transaction   *Transaction
	Amount        decimal.Decimal
	PositionAfter decimal.Decimal
	AvgCostAfter  decimal.Decimal
}

// Filter narrows the entries included in a report.
type Filter struct {
	Ticker string
	From   *time.Time
	To     *time.Time
}

// Match reports whether t passes the filter.
func (f Filter) Match(t *Transaction) bool {
	if f.Ticker != "" && domain.NormalizeTicker(f.Ticker) != t.Ticker {
		return false
	}
	if f.From != nil && t.Date.Before(domain.Day(*f.From)) {
		return false
	}
	if f.To != nil && t.Date.After(domain.Day(*f.To)) {
		return false
	}
	return true
}

// PnL replays the whole ledger per ticker in order and reports the entries
// that match f. Running state is kept for every ticker so the position after
// a filtered row still reflects earlier, excluded entries.
func PnL(txs []*Transaction, f Filter) (rows []PnLRow, total decimal.Decimal) {
	ordered := append([]*Transaction(nil), txs...)
	Sort(ordered)
	states := make(map[string]State)
	total = decimal.Zero
	for _, t := range ordered {
		s, ok := states[t.Ticker]
		if !ok {
			s = State{Quantity: decimal.Zero, Invested: decimal.Zero}
		}
		s = s.Apply(t)
		states[t.Ticker] = s
		if !f.Match(t) {
			continue
		}
		amount := t.Amount()
		total = total.Add(amount)
		rows = append(rows, PnLRow{
			Transaction:   t,
			Amount:        amount,
			PositionAfter: domain.Quantize(s.Quantity),
			AvgCostAfter:  domain.Quantize(s.AvgCost()),
		})
	}
	return rows, total
}

// CSVRecord is the flat export shape of a PnLRow.
type CSVRecord struct {
	Date          string `csv:"date"`
	Ticker        string `csv:"ticker"`
	Type          string `csv:"type"`
	Quantity      string `csv:"quantity"`
	Price         string `csv:"price"`
	Commission    string `csv:"commission"`
	Amount        string `csv:"amount"`
	PositionAfter string `csv:"position_after"`
	AvgCostAfter  string `csv:"avg_cost_after"`
}

// CSVRecords renders the report rows followed by a TOTAL row.
func CSVRecords(rows []PnLRow, total decimal.Decimal) []*CSVRecord {
	out := make([]*CSVRecord, 0, len(rows)+1)
	for _, r := range rows {
		t := r.Transaction
		out = append(out, &CSVRecord{
			Date:          t.Date.Format(domain.DateLayout),
			Ticker:        t.Ticker,
			Type:          string(t.Type),
			Quantity:      t.Quantity.StringFixed(domain.QuantityPlaces),
			Price:         t.Price.StringFixed(domain.QuantityPlaces),
			Commission:    t.Commission.StringFixed(domain.QuantityPlaces),
			Amount:        domain.FormatMoney(r.Amount),
			PositionAfter: r.PositionAfter.StringFixed(domain.QuantityPlaces),
			AvgCostAfter:  r.AvgCostAfter.StringFixed(domain.QuantityPlaces),
		})
	}
	out = append(out, &CSVRecord{Date: "TOTAL", Amount: domain.FormatMoney(total)})
	return out
}
