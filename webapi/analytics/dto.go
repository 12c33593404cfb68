package analytics

import (
	"github.com/amirasaad/alphaquantum/pkg/domain"
	alarmdomain "github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	analyticssvc "github.com/amirasaad/alphaquantum/pkg/service/analytics"
)

// SummaryOutput is the "resumen" headline.
type SummaryOutput struct {
	TotalInvested string `json:"total_invertido"`
	CurrentValue  string `json:"valor_actual"`
	Return        string `json:"rentabilidad"`
}

func newSummary(s portfolio.Summary) SummaryOutput {
	return SummaryOutput{
		TotalInvested: domain.FormatMoney(s.TotalInvested),
		CurrentValue:  domain.FormatMoney(s.CurrentValue),
		Return:        domain.FormatMoney(s.Return),
	}
}

// HoldingOutput is one priced position of the cartera view.
type HoldingOutput struct {
	*portfolio.Position
	Value     string `json:"valor_total"`
	ReturnEUR string `json:"rentabilidad_eur"`
	ReturnPct string `json:"rentabilidad_pct"`
	Weight    string `json:"porcentaje_total"`
}

// BreakdownOutput is the cartera view.
type BreakdownOutput struct {
	Holdings []HoldingOutput      `json:"acciones"`
	Total    string               `json:"total"`
	Fired    []*alarmdomain.Alarm `json:"alarmas_activadas"`
}

func newBreakdown(b analyticssvc.Breakdown) BreakdownOutput {
	out := BreakdownOutput{
		Holdings: make([]HoldingOutput, 0, len(b.Holdings)),
		Total:    domain.FormatMoney(b.Total),
		Fired:    b.Fired,
	}
	if out.Fired == nil {
		out.Fired = []*alarmdomain.Alarm{}
	}
	for _, h := range b.Holdings {
		out.Holdings = append(out.Holdings, HoldingOutput{
			Position:  h.Position,
			Value:     domain.FormatMoney(h.Value),
			ReturnEUR: domain.FormatMoney(h.ReturnEUR),
			ReturnPct: domain.FormatMoney(h.ReturnPct),
			Weight:    domain.FormatMoney(h.Weight),
		})
	}
	return out
}

// PerformanceOutput is the chart-ready return series.
type PerformanceOutput struct {
	Labels      []string `json:"etiquetas"`
	Gains       []string `json:"serieGanancia"`
	Returns     []string `json:"serieRentab"`
	TotalGain   string   `json:"ganancia_total"`
	TotalReturn string   `json:"rentabilidad_total"`
}

func newPerformance(p analyticssvc.Performance) PerformanceOutput {
	out := PerformanceOutput{
		Labels:      make([]string, 0, len(p.Points)),
		Gains:       make([]string, 0, len(p.Points)),
		Returns:     make([]string, 0, len(p.Points)),
		TotalGain:   domain.FormatMoney(p.TotalGain),
		TotalReturn: domain.FormatMoney(p.TotalPct),
	}
	for _, pt := range p.Points {
		out.Labels = append(out.Labels, pt.Date.Format(domain.DateLayout))
		out.Gains = append(out.Gains, domain.FormatMoney(pt.Gain))
		out.Returns = append(out.Returns, domain.FormatMoney(pt.Pct))
	}
	return out
}

// HistoryOutput is the stored snapshot series.
type HistoryOutput struct {
	Labels   []string `json:"etiquetas"`
	Values   []string `json:"valores"`
	Invested []string `json:"invertido"`
}

func newHistory(snaps []portfolio.Snapshot) HistoryOutput {
	out := HistoryOutput{
		Labels:   make([]string, 0, len(snaps)),
		Values:   make([]string, 0, len(snaps)),
		Invested: make([]string, 0, len(snaps)),
	}
	for _, s := range snaps {
		out.Labels = append(out.Labels, s.Date.Format(domain.DateLayout))
		out.Values = append(out.Values, domain.FormatMoney(s.Value))
		out.Invested = append(out.Invested, domain.FormatMoney(s.Invested))
	}
	return out
}

// DashboardOutput is the dashboard-data payload.
type DashboardOutput struct {
	TotalValue  string           `json:"valor_total_cartera"`
	TotalReturn string           `json:"rentabilidad_total"`
	Gains       []portfolio.Gain `json:"ganancias"`
	Labels      []string         `json:"etiquetas"`
	Values      []string         `json:"valores"`
}

func newDashboard(d analyticssvc.Dashboard) DashboardOutput {
	out := DashboardOutput{
		TotalValue:  domain.FormatMoney(d.Summary.CurrentValue),
		TotalReturn: domain.FormatMoney(d.Summary.Return),
		Gains:       d.Gains,
		Labels:      make([]string, 0, len(d.Values)),
		Values:      make([]string, 0, len(d.Values)),
	}
	if out.Gains == nil {
		out.Gains = []portfolio.Gain{}
	}
	for _, v := range d.Values {
		out.Labels = append(out.Labels, v.Date.Format(domain.DateLayout))
		out.Values = append(out.Values, domain.FormatMoney(v.Value))
	}
	return out
}
