package cashflow

import (
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func it(t IncomeType) *IncomeType { return &t }

func TestNewRecord(t *testing.T) {
	uid := uuid.New()
	d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	r, err := NewRecord(uid, Income, d, dec("1500"), it(Salary), " nómina ")
	require.NoError(t, err)
	assert.Equal(t, "nómina", r.Description)

	tests := []struct {
		name     string
		category Category
		amount   string
		typ      *IncomeType
		desc     string
	}{
		{"zero amount", Income, "0", nil, "x"},
		{"no description", Expense, "10", nil, " "},
		{"income type on expense", Expense, "10", it(Salary), "x"},
		{"unknown income type", Income, "10", it("lottery"), "x"},
		{"unknown category", Category("otro"), "10", nil, "x"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRecord(uid, tc.category, d, dec(tc.amount), tc.typ, tc.desc)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	r, err = NewRecord(uid, Expense, d, dec("10"), it(""), "x")
	require.NoError(t, err)
	assert.Nil(t, r.IncomeType)
}

func TestLoan(t *testing.T) {
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	l := &Loan{
		Name:            "Coche",
		MonthlyPayment:  dec("250"),
		RemainingMonths: 10,
		StartDate:       time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Active:          true,
	}
	require.NoError(t, l.Validate())
	assert.Equal(t, "2500", l.Balance().String())
	assert.Equal(t, "1250", l.Paid(today).String())

	l.RemainingMonths = 3
	assert.Equal(t, "750", l.Paid(today).String(), "clamped to remaining months")

	l.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, l.Paid(today).IsZero(), "future start pays nothing")

	l.Active = false
	assert.True(t, l.Balance().IsZero())
}

func TestProperty(t *testing.T) {
	p := &Property{
		Name:                    "Piso",
		MonthlyIncome:           dec("900"),
		MonthlyMortgage:         dec("400"),
		Maintenance:             dec("50"),
		RemainingMortgageMonths: 1,
	}
	require.NoError(t, p.Validate())
	assert.Equal(t, "450", p.NetProfit().String())
	assert.Equal(t, "450", p.NetProfitInMonth(1).String())
	assert.Equal(t, "850", p.NetProfitInMonth(2).String())

	assert.True(t, p.DecrementMortgage())
	assert.Equal(t, 0, p.RemainingMortgageMonths)
	assert.False(t, p.DecrementMortgage())
	assert.Equal(t, 0, p.RemainingMortgageMonths)
}

func TestSummarize(t *testing.T) {
	uid := uuid.New()
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	mk := func(c Category, d time.Time, amount string, typ *IncomeType) *Record {
		r, err := NewRecord(uid, c, d, dec(amount), typ, "x")
		require.NoError(t, err)
		return r
	}
	records := []*Record{
		mk(Income, feb, "1000", it(Salary)),
		mk(Expense, jan, "200", nil),
		mk(Income, jan, "300", nil),
	}
	loans := []*Loan{
		{MonthlyPayment: dec("100"), RemainingMonths: 5, StartDate: jan, Active: true},
		{MonthlyPayment: dec("50"), RemainingMonths: 5, StartDate: jan, Active: false},
	}
	props := []*Property{{MonthlyIncome: dec("900"), MonthlyMortgage: dec("400"), Maintenance: dec("50")}}

	s := Summarize(records, loans, props, feb)
	assert.Equal(t, "1300", s.TotalIncome.String())
	assert.Equal(t, "200", s.TotalExpense.String())
	assert.Equal(t, "1100", s.Net.String())
	assert.Equal(t, "1000", s.IncomeByType["salario"].String())
	assert.Equal(t, "300", s.IncomeByType["otros"].String())
	require.Len(t, s.MonthlyNet, 2)
	assert.Equal(t, "2024-01", s.MonthlyNet[0].Month)
	assert.Equal(t, "100", s.MonthlyNet[0].Value.String())
	assert.Equal(t, "1000", s.MonthlyNet[1].Value.String())
	assert.Equal(t, "500", s.LoanBalance.String())
	assert.Equal(t, "150", s.LoanPaid.String())
	assert.Equal(t, "100", s.LoanMonthly.String())
	assert.Equal(t, "450", s.RentalNet.String())
}

func TestProject(t *testing.T) {
	today := time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC)
	loans := []*Loan{
		{MonthlyPayment: dec("100"), RemainingMonths: 2, Active: true},
		{MonthlyPayment: dec("999"), RemainingMonths: 12, Active: false},
	}
	props := []*Property{{
		MonthlyIncome:           dec("900"),
		MonthlyMortgage:         dec("400"),
		Maintenance:             dec("50"),
		RemainingMortgageMonths: 1,
	}}
	points := Project(loans, props, 3, today)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-12", points[0].Label)
	assert.Equal(t, "350", points[0].Monthly.String())
	assert.Equal(t, "350", points[0].Cumulative.String())

	assert.Equal(t, "2025-01", points[1].Label)
	assert.Equal(t, "750", points[1].Monthly.String())
	assert.Equal(t, "1100", points[1].Cumulative.String())

	assert.Equal(t, "850", points[2].Monthly.String())
	assert.Equal(t, "1950", points[2].Cumulative.String())
}
