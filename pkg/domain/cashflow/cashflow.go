// Package cashflow models income and expense records, loans and rental
// properties, plus the dashboard and projection computed from them.
package cashflow

import (
	"sort"
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category splits records into income and expense.
type Category string

const (
	Income  Category = "ingreso"
	Expense Category = "gasto"
)

// IncomeType classifies an income record.
type IncomeType string

const (
	Salary     IncomeType = "salario"
	Rent       IncomeType = "alquiler"
	Dividends  IncomeType = "dividendos"
	Interest   IncomeType = "intereses"
	Sales      IncomeType = "ventas"
	SelfEmploy IncomeType = "autonomo"
	Business   IncomeType = "empresa"
	Benefits   IncomeType = "subsidios"
	Gifts      IncomeType = "regalos"
	Other      IncomeType = "otros"
)

var incomeTypes = map[IncomeType]bool{
	Salary: true, Rent: true, Dividends: true, Interest: true, Sales: true,
	SelfEmploy: true, Business: true, Benefits: true, Gifts: true, Other: true,
}

// Record is a single income or expense entry.
type Record struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"user_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	IncomeType  *IncomeType     `json:"tipo_ingreso"`
	Description string          `json:"description"`
}

// NewRecord validates and builds a Record.
func NewRecord(
	userID uuid.UUID,
	category Category,
	date time.Time,
	amount decimal.Decimal,
	incomeType *IncomeType,
	description string,
) (*Record, error) {
	r := &Record{ID: uuid.New(), UserID: userID, Category: category}
	if err := r.Apply(date, amount, incomeType, description); err != nil {
		return nil, err
	}
	return r, nil
}

// Apply validates and sets the editable fields. The category is fixed at creation.
func (r *Record) Apply(date time.Time, amount decimal.Decimal, incomeType *IncomeType, description string) error {
	if r.Category != Income && r.Category != Expense {
		return domain.Invalid("category", "must be ingreso or gasto")
	}
	if date.IsZero() {
		return domain.Invalid("date", "is required")
	}
	if !amount.IsPositive() {
		return domain.Invalid("amount", "must be greater than zero")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return domain.Invalid("description", "is required")
	}
	if incomeType != nil && *incomeType == "" {
		incomeType = nil
	}
	if incomeType != nil {
		if r.Category != Income {
			return domain.Invalid("tipo_ingreso", "only applies to income")
		}
		if !incomeTypes[*incomeType] {
			return domain.Invalid("tipo_ingreso", "is not a known income type")
		}
	}
	r.Date = domain.Day(date)
	r.Amount = domain.RoundMoney(amount)
	r.IncomeType = incomeType
	r.Description = description
	return nil
}

// Loan is an amortizing debt ("Prestamo").
type Loan struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	Name            string          `json:"nombre"`
	Total           decimal.Decimal `json:"monto_total"`
	MonthlyPayment  decimal.Decimal `json:"cuota_mensual"`
	RemainingMonths int             `json:"meses_restantes"`
	StartDate       time.Time       `json:"fecha_inicio"`
	Active          bool            `json:"activo"`
}

// Validate checks a loan's fields.
func (l *Loan) Validate() error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return domain.Invalid("nombre", "is required")
	}
	if l.Total.IsNegative() {
		return domain.Invalid("monto_total", "must not be negative")
	}
	if l.MonthlyPayment.IsNegative() {
		return domain.Invalid("cuota_mensual", "must not be negative")
	}
	if l.RemainingMonths < 0 {
		return domain.Invalid("meses_restantes", "must not be negative")
	}
	if l.StartDate.IsZero() {
		return domain.Invalid("fecha_inicio", "is required")
	}
	l.StartDate = domain.Day(l.StartDate)
	return nil
}

// Balance is remaining months times the payment for active loans, else 0.
func (l *Loan) Balance() decimal.Decimal {
	if !l.Active {
		return decimal.Zero
	}
	return l.MonthlyPayment.Mul(decimal.NewFromInt(int64(l.RemainingMonths)))
}

// Paid is the payment times the months elapsed since the start, clamped
// to [0, RemainingMonths].
func (l *Loan) Paid(today time.Time) decimal.Decimal {
	months := domain.MonthsBetween(l.StartDate, today)
	if months < 0 {
		months = 0
	}
	if months > l.RemainingMonths {
		months = l.RemainingMonths
	}
	return l.MonthlyPayment.Mul(decimal.NewFromInt(int64(months)))
}

// Property is a rented-out property ("PropiedadAlquiler").
type Property struct {
	ID                      uuid.UUID       `json:"id"`
	UserID                  uuid.UUID       `json:"user_id"`
	Name                    string          `json:"nombre"`
	MonthlyIncome           decimal.Decimal `json:"ingreso_mensual"`
	MonthlyMortgage         decimal.Decimal `json:"hipoteca_mensual"`
	Maintenance             decimal.Decimal `json:"gastos_mantenimiento"`
	RemainingMortgageMonths int             `json:"meses_restantes_hipoteca"`
}

// Validate checks a property's fields.
func (p *Property) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.Invalid("nombre", "is required")
	}
	if p.MonthlyIncome.IsNegative() || p.MonthlyMortgage.IsNegative() || p.Maintenance.IsNegative() {
		return domain.Invalid("importes", "must not be negative")
	}
	if p.RemainingMortgageMonths < 0 {
		return domain.Invalid("meses_restantes_hipoteca", "must not be negative")
	}
	return nil
}

// NetProfit is income minus mortgage minus maintenance.
func (p *Property) NetProfit() decimal.Decimal {
	return p.MonthlyIncome.Sub(p.MonthlyMortgage).Sub(p.Maintenance)
}

// NetProfitInMonth is the net for the month-th month ahead (1-based); once
// the mortgage is paid off only maintenance is deducted.
func (p *Property) NetProfitInMonth(month int) decimal.Decimal {
	if month <= p.RemainingMortgageMonths {
		return p.NetProfit()
	}
	return p.MonthlyIncome.Sub(p.Maintenance)
}

// DecrementMortgage takes one month off a positive mortgage count.
func (p *Property) DecrementMortgage() bool {
	if p.RemainingMortgageMonths <= 0 {
		return false
	}
	p.RemainingMortgageMonths--
	return true
}

// MonthlyPoint is one month of a series.
type MonthlyPoint struct {
	Month string
	Value decimal.Decimal
}

// Summary aggregates records, loans and properties for the dashboard.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal
	IncomeByType map[string]decimal.Decimal
	MonthlyNet   []MonthlyPoint
	LoanBalance  decimal.Decimal
	LoanPaid     decimal.Decimal
	LoanMonthly  decimal.Decimal
	RentalNet    decimal.Decimal
}

// Summarize computes the cash-flow dashboard as of today.
func Summarize(records []*Record, loans []*Loan, properties []*Property, today time.Time) Summary {
	s := Summary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		IncomeByType: make(map[string]decimal.Decimal),
		LoanBalance:  decimal.Zero,
		LoanPaid:     decimal.Zero,
		LoanMonthly:  decimal.Zero,
		RentalNet:    decimal.Zero,
	}
	monthly := make(map[string]decimal.Decimal)
	for _, r := range records {
		key := r.Date.Format("2006-01")
		switch r.Category {
		case Income:
			s.TotalIncome = s.TotalIncome.Add(r.Amount)
			monthly[key] = monthly[key].Add(r.Amount)
			t := string(Other)
			if r.IncomeType != nil {
				t = string(*r.IncomeType)
			}
			s.IncomeByType[t] = s.IncomeByType[t].Add(r.Amount)
		case Expense:
			s.TotalExpense = s.TotalExpense.Add(r.Amount)
			monthly[key] = monthly[key].Sub(r.Amount)
		}
	}
	s.Net = s.TotalIncome.Sub(s.TotalExpense)

	months := make([]string, 0, len(monthly))
	for k := range monthly {
		months = append(months, k)
	}
	sort.Strings(months)
	for _, k := range months {
		s.MonthlyNet = append(s.MonthlyNet, MonthlyPoint{Month: k, Value: monthly[k]})
	}

	for _, l := range loans {
		s.LoanBalance = s.LoanBalance.Add(l.Balance())
		s.LoanPaid = s.LoanPaid.Add(l.Paid(today))
		if l.Active {
			s.LoanMonthly = s.LoanMonthly.Add(l.MonthlyPayment)
		}
	}
	for _, p := range properties {
		s.RentalNet = s.RentalNet.Add(p.NetProfit())
	}
	return s
}

// ProjectionPoint is one projected month.
type ProjectionPoint struct {
	Month      int
	Label      string
	Monthly    decimal.Decimal
	Cumulative decimal.Decimal
}

// Project rolls rental net minus active loan payments forward for months
// months starting the month after today.
func Project(loans []*Loan, properties []*Property, months int, today time.Time) []ProjectionPoint {
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]ProjectionPoint, 0, months)
	cumulative := decimal.Zero
	for i := 1; i <= months; i++ {
		v := decimal.Zero
		for _, p := range properties {
			v = v.Add(p.NetProfitInMonth(i))
		}
		for _, l := range loans {
			if l.Active && i <= l.RemainingMonths {
				v = v.Sub(l.MonthlyPayment)
			}
		}
		cumulative = cumulative.Add(v)
		out = append(out, ProjectionPoint{
			Month:      i,
			Label:      start.AddDate(0, i, 0).Format("2006-01"),
			Monthly:    v,
			Cumulative: cumulative,
		})
	}
	return out
}
