package cashflow

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Record is a row of cashflow_records.
type Record struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Category    string          `gorm:"size:10;not null"`
	IncomeType  *string         `gorm:"size:20"`
	Description string          `gorm:"size:255;not null"`
	CreatedAt   time.Time
}

func (Record) TableName() string { return "cashflow_records" }

// Loan is a row of loans.
type Loan struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"size:100;not null"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MonthlyPayment  decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RemainingMonths int             `gorm:"not null"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	Active          bool            `gorm:"not null;default:true"`
	CreatedAt       time.Time
}

func (Loan) TableName() string { return "loans" }

// Property is a row of rental_properties.
type Property struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                    string          `gorm:"size:100;not null"`
	MonthlyIncome           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	MonthlyMortgage         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Maintenance             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	RemainingMortgageMonths int             `gorm:"not null;default:0"`
	CreatedAt               time.Time
}

func (Property) TableName() string { return "rental_properties" }

func recordToModel(r *cashflow.Record) *Record {
	m := &Record{
		ID:          r.ID,
		UserID:      r.UserID,
		Date:        r.Date,
		Amount:      r.Amount,
		Category:    string(r.Category),
		Description: r.Description,
	}
	if r.IncomeType != nil {
		s := string(*r.IncomeType)
		m.IncomeType = &s
	}
	return m
}

func (m *Record) toDomain() *cashflow.Record {
	r := &cashflow.Record{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        m.Date.UTC(),
		Amount:      m.Amount,
		Category:    cashflow.Category(m.Category),
		Description: m.Description,
	}
	if m.IncomeType != nil {
		t := cashflow.IncomeType(*m.IncomeType)
		r.IncomeType = &t
	}
	return r
}

func loanToModel(l *cashflow.Loan) *Loan {
	return &Loan{
		ID:              l.ID,
		UserID:          l.UserID,
		Name:            l.Name,
		Total:           l.Total,
		MonthlyPayment:  l.MonthlyPayment,
		RemainingMonths: l.RemainingMonths,
		StartDate:       l.StartDate,
		Active:          l.Active,
	}
}

func (m *Loan) toDomain() *cashflow.Loan {
	return &cashflow.Loan{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		Total:           m.Total,
		MonthlyPayment:  m.MonthlyPayment,
		RemainingMonths: m.RemainingMonths,
		StartDate:       m.StartDate.UTC(),
		Active:          m.Active,
	}
}

func propertyToModel(p *cashflow.Property) *Property {
	return &Property{
		ID:                      p.ID,
		UserID:                  p.UserID,
		Name:                    p.Name,
		MonthlyIncome:           p.MonthlyIncome,
		MonthlyMortgage:         p.MonthlyMortgage,
		Maintenance:             p.Maintenance,
		RemainingMortgageMonths: p.RemainingMortgageMonths,
	}
}

func (m *Property) toDomain() *cashflow.Property {
	return &cashflow.Property{
		ID:                      m.ID,
		UserID:                  m.UserID,
		Name:                    m.Name,
		MonthlyIncome:           m.MonthlyIncome,
		MonthlyMortgage:         m.MonthlyMortgage,
		Maintenance:             m.Maintenance,
		RemainingMortgageMonths: m.RemainingMortgageMonths,
	}
}
