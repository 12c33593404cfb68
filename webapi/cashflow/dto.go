package cashflow

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	cashflowdomain "github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	cashflowsvc "github.com/amirasaad/alphaquantum/pkg/service/cashflow"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/shopspring/decimal"
)

// RecordInput is the request body for an income or expense record.
type RecordInput struct {
	Date        string          `json:"date" example:"2024-01-31"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	IncomeType  *string         `json:"tipo_ingreso" example:"salario"`
	Description string          `json:"description" validate:"required,max=255"`
}

func (in *RecordInput) toInput() (cashflowsvc.RecordInput, error) {
	date, err := common.DateOrToday("date", in.Date)
	if err != nil {
		return cashflowsvc.RecordInput{}, err
	}
	var typ *cashflowdomain.IncomeType
	if in.IncomeType != nil && *in.IncomeType != "" {
		t := cashflowdomain.IncomeType(*in.IncomeType)
		typ = &t
	}
	return cashflowsvc.RecordInput{Date: date, Amount: in.Amount, IncomeType: typ, Description: in.Description}, nil
}

// LoanInput is the request body for a loan.
type LoanInput struct {
	Name            string          `json:"nombre" validate:"required,max=100"`
	Total           decimal.Decimal `json:"monto_total" swaggertype:"string"`
	MonthlyPayment  decimal.Decimal `json:"cuota_mensual" swaggertype:"string"`
	RemainingMonths int             `json:"meses_restantes" validate:"gte=0"`
	StartDate       string          `json:"fecha_inicio" example:"2024-01-01"`
	Active          *bool           `json:"activo"`
}

func (in *LoanInput) toLoan() (cashflowdomain.Loan, error) {
	start, err := common.DateOrToday("fecha_inicio", in.StartDate)
	if err != nil {
		return cashflowdomain.Loan{}, err
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return cashflowdomain.Loan{
		Name:            in.Name,
		Total:           in.Total,
		MonthlyPayment:  in.MonthlyPayment,
		RemainingMonths: in.RemainingMonths,
		StartDate:       start,
		Active:          active,
	}, nil
}

// PropertyInput is the request body for a rental property.
type PropertyInput struct {
	Name                    string          `json:"nombre" validate:"required,max=100"`
	MonthlyIncome           decimal.Decimal `json:"ingreso_mensual" swaggertype:"string"`
	MonthlyMortgage         decimal.Decimal `json:"hipoteca_mensual" swaggertype:"string"`
	Maintenance             decimal.Decimal `json:"gastos_mantenimiento" swaggertype:"string"`
	RemainingMortgageMonths int             `json:"meses_restantes_hipoteca" validate:"gte=0"`
}

func (in *PropertyInput) toProperty() cashflowdomain.Property {
	return cashflowdomain.Property{
		Name:                    in.Name,
		MonthlyIncome:           in.MonthlyIncome,
		MonthlyMortgage:         in.MonthlyMortgage,
		Maintenance:             in.Maintenance,
		RemainingMortgageMonths: in.RemainingMortgageMonths,
	}
}

// LoanView is a loan with its computed balances.
type LoanView struct {
	*cashflowdomain.Loan
	Balance string `json:"balance_actual"`
	Paid    string `json:"total_pagado"`
}

// PropertyView is a property with its net profit.
type PropertyView struct {
	*cashflowdomain.Property
	NetProfit string `json:"beneficio_neto"`
}

// MonthValue is one month of a series.
type MonthValue struct {
	Month string `json:"mes"`
	Value string `json:"valor"`
}

// DashboardOutput is the flujo-de-caja payload.
type DashboardOutput struct {
	TotalIncome  string                   `json:"total_ingresos"`
	TotalExpense string                   `json:"total_gastos"`
	Net          string                   `json:"flujo_neto"`
	IncomeByType map[string]string        `json:"ingresos_por_tipo"`
	MonthlyNet   []MonthValue             `json:"flujo_mensual"`
	Records      []*cashflowdomain.Record `json:"registros"`
	Loans        []LoanView               `json:"prestamos"`
	LoanBalance  string                   `json:"deuda_total"`
	LoanPaid     string                   `json:"total_pagado_prestamos"`
	LoanMonthly  string                   `json:"cuota_mensual_total"`
	Properties   []PropertyView           `json:"propiedades"`
	RentalNet    string                   `json:"beneficio_alquiler"`
	Display      cashflowsvc.Display      `json:"display"`
}

func newDashboard(d cashflowsvc.Dashboard, today time.Time) DashboardOutput {
	s := d.Summary
	out := DashboardOutput{
		TotalIncome:  domain.FormatMoney(s.TotalIncome),
		TotalExpense: domain.FormatMoney(s.TotalExpense),
		Net:          domain.FormatMoney(s.Net),
		IncomeByType: make(map[string]string, len(s.IncomeByType)),
		MonthlyNet:   make([]MonthValue, 0, len(s.MonthlyNet)),
		Records:      d.Records,
		Loans:        make([]LoanView, 0, len(d.Loans)),
		LoanBalance:  domain.FormatMoney(s.LoanBalance),
		LoanPaid:     domain.FormatMoney(s.LoanPaid),
		LoanMonthly:  domain.FormatMoney(s.LoanMonthly),
		Properties:   make([]PropertyView, 0, len(d.Properties)),
		RentalNet:    domain.FormatMoney(s.RentalNet),
		Display:      d.Display,
	}
	if out.Records == nil {
		out.Records = []*cashflowdomain.Record{}
	}
	for k, v := range s.IncomeByType {
		out.IncomeByType[k] = domain.FormatMoney(v)
	}
	for _, m := range s.MonthlyNet {
		out.MonthlyNet = append(out.MonthlyNet, MonthValue{Month: m.Month, Value: domain.FormatMoney(m.Value)})
	}
	for _, l := range d.Loans {
		out.Loans = append(out.Loans, LoanView{
			Loan:    l,
			Balance: domain.FormatMoney(l.Balance()),
			Paid:    domain.FormatMoney(l.Paid(today)),
		})
	}
	for _, p := range d.Properties {
		out.Properties = append(out.Properties, PropertyView{Property: p, NetProfit: domain.FormatMoney(p.NetProfit())})
	}
	return out
}

// ProjectionMonth is one projected month.
type ProjectionMonth struct {
	Month      int    `json:"mes"`
	Label      string `json:"etiqueta"`
	Monthly    string `json:"flujo_mensual"`
	Cumulative string `json:"acumulado"`
}

func newProjection(points []cashflowdomain.ProjectionPoint) []ProjectionMonth {
	out := make([]ProjectionMonth, 0, len(points))
	for _, p := range points {
		out = append(out, ProjectionMonth{
			Month:      p.Month,
			Label:      p.Label,
			Monthly:    domain.FormatMoney(p.Monthly),
			Cumulative: domain.FormatMoney(p.Cumulative),
		})
	}
	return out
}
