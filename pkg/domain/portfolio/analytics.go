package portfolio

import (
	"sort"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/shopspring/decimal"
)

// Summary is the headline valuation of every position of a user.
type Summary struct {
	TotalInvested decimal.Decimal `json:"total_invertido"`
	CurrentValue  decimal.Decimal `json:"valor_actual"`
	Return        decimal.Decimal `json:"rentabilidad"`
}

// Summarize totals cost basis and market value. A missing price counts as 0.
func Summarize(positions []*Position) Summary {
	invested, value := decimal.Zero, decimal.Zero
	for _, p := range positions {
		invested = invested.Add(p.Invested())
		if v, ok := p.MarketValue(); ok {
			value = value.Add(v)
		}
	}
	return Summary{
		TotalInvested: domain.RoundMoney(invested),
		CurrentValue:  domain.RoundMoney(value),
		Return:        domain.RoundMoney(value.Sub(invested)),
	}
}

// Holding is one priced row of the portfolio breakdown.
type Holding struct {
	Position  *Position
	Value     decimal.Decimal
	ReturnEUR decimal.Decimal
	ReturnPct decimal.Decimal
	Weight    decimal.Decimal
}

// Holdings values every priced position and its share of the total.
// Positions without a current price are skipped.
func Holdings(positions []*Position) (rows []Holding, total decimal.Decimal) {
	total = decimal.Zero
	for _, p := range positions {
		if v, ok := p.MarketValue(); ok {
			total = total.Add(v)
		}
	}
	for _, p := range positions {
		v, ok := p.MarketValue()
		if !ok {
			continue
		}
		invested := p.Invested()
		gain := v.Sub(invested)
		rows = append(rows, Holding{
			Position:  p,
			Value:     v,
			ReturnEUR: gain,
			ReturnPct: domain.Percent(gain, invested),
			Weight:    domain.Percent(v, total),
		})
	}
	return rows, total
}

// Gain is the unrealised result of one position.
type Gain struct {
	Ticker string          `json:"ticker"`
	Name   string          `json:"nombre"`
	Gain   decimal.Decimal `json:"ganancia"`
}

// Gains computes (current - buy) * quantity per priced position.
func Gains(positions []*Position) []Gain {
	out := make([]Gain, 0, len(positions))
	for _, p := range positions {
		if p.CurrentPrice == nil {
			continue
		}
		g := p.CurrentPrice.Sub(p.BuyPrice).Mul(p.Quantity)
		out = append(out, Gain{Ticker: p.Ticker, Name: p.Name, Gain: domain.RoundMoney(g)})
	}
	return out
}

// PricePoint is a daily close of a ticker.
type PricePoint struct {
	Ticker string
	Date   time.Time
	Close  decimal.Decimal
}

// PerformancePoint is the valuation of the held positions on one date.
type PerformancePoint struct {
	Date     time.Time
	Value    decimal.Decimal
	Invested decimal.Decimal
	Gain     decimal.Decimal
	Pct      decimal.Decimal
}

// Performance values the positions at each historical close on or after
// since. Only positions with a close on a given date count towards that
// date's value and invested amount.
func Performance(positions []*Position, closes []PricePoint, since time.Time) []PerformancePoint {
	byTicker := make(map[string][]*Position, len(positions))
	for _, p := range positions {
		byTicker[p.Ticker] = append(byTicker[p.Ticker], p)
	}
	since = domain.Day(since)

	type acc struct{ value, invested decimal.Decimal }
	perDay := make(map[time.Time]*acc)
	for _, c := range closes {
		day := domain.Day(c.Date)
		if day.Before(since) {
			continue
		}
		held := byTicker[domain.NormalizeTicker(c.Ticker)]
		if len(held) == 0 {
			continue
		}
		a, ok := perDay[day]
		if !ok {
			a = &acc{value: decimal.Zero, invested: decimal.Zero}
			perDay[day] = a
		}
		for _, p := range held {
			a.value = a.value.Add(c.Close.Mul(p.Quantity))
			a.invested = a.invested.Add(p.Invested())
		}
	}

	points := make([]PerformancePoint, 0, len(perDay))
	for day, a := range perDay {
		gain := a.value.Sub(a.invested)
		points = append(points, PerformancePoint{
			Date:     day,
			Value:    domain.RoundMoney(a.value),
			Invested: domain.RoundMoney(a.invested),
			Gain:     domain.RoundMoney(gain),
			Pct:      domain.RoundMoney(domain.Percent(gain, a.invested)),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// Snapshot is a stored daily valuation ("HistoricoCartera").
type Snapshot struct {
	Date     time.Time       `json:"fecha"`
	Value    decimal.Decimal `json:"valor"`
	Invested decimal.Decimal `json:"invertido"`
}

// TakeSnapshot values positions at their current prices on day.
func TakeSnapshot(positions []*Position, day time.Time) Snapshot {
	s := Summarize(positions)
	return Snapshot{Date: domain.Day(day), Value: s.CurrentValue, Invested: s.TotalInvested}
}

// BackfillDays lists every day from today-days to today inclusive.
func BackfillDays(today time.Time, days int) []time.Time {
	today = domain.Day(today)
	out := make([]time.Time, 0, days+1)
	for i := days; i >= 0; i-- {
		out = append(out, today.AddDate(0, 0, -i))
	}
	return out
}
