package cashflow

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/internal/testdb"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashflowRepositoryTestSuite struct {
	suite.Suite
	ctx    context.Context
	userID uuid.UUID
	repo   *cashflowRepository
}

func (s *CashflowRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.userID = uuid.New()
	s.repo = New(testdb.SQLite(s.T(), &Record{}, &Loan{}, &Property{})).(*cashflowRepository)
}

func (s *CashflowRepositoryTestSuite) TestRecords() {
	salary := cashflow.Salary
	income, err := cashflow.NewRecord(s.userID, cashflow.Income, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		decimal.NewFromInt(2500), &salary, "nómina")
	s.Require().NoError(err)
	expense, err := cashflow.NewRecord(s.userID, cashflow.Expense, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
		decimal.RequireFromString("80.5"), nil, "luz")
	s.Require().NoError(err)
	s.Require().NoError(s.repo.CreateRecord(s.ctx, income))
	s.Require().NoError(s.repo.CreateRecord(s.ctx, expense))

	s.Run("newest first", func() {
		got, err := s.repo.Records(s.ctx, s.userID)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Equal(expense.ID, got[0].ID)
		s.Nil(got[0].IncomeType)
		s.Require().NotNil(got[1].IncomeType)
		s.Equal(cashflow.Salary, *got[1].IncomeType)
	})

	s.Run("update", func() {
		s.Require().NoError(expense.Apply(expense.Date, decimal.NewFromInt(90), nil, "luz y agua"))
		s.Require().NoError(s.repo.UpdateRecord(s.ctx, expense))
		got, err := s.repo.GetRecord(s.ctx, s.userID, expense.ID)
		s.Require().NoError(err)
		s.Equal("luz y agua", got.Description)
		s.True(got.Amount.Equal(decimal.NewFromInt(90)))
	})

	s.Run("foreign records are invisible", func() {
		_, err := s.repo.GetRecord(s.ctx, uuid.New(), expense.ID)
		s.ErrorIs(err, domain.ErrNotFound)
		foreign := *expense
		foreign.UserID = uuid.New()
		s.ErrorIs(s.repo.UpdateRecord(s.ctx, &foreign), domain.ErrNotFound)
	})

	s.Run("delete", func() {
		s.Require().NoError(s.repo.DeleteRecord(s.ctx, s.userID, income.ID))
		got, err := s.repo.Records(s.ctx, s.userID)
		s.Require().NoError(err)
		s.Len(got, 1)
	})
}

func (s *CashflowRepositoryTestSuite) TestLoans() {
	loan := &cashflow.Loan{
		ID:              uuid.New(),
		UserID:          s.userID,
		Name:            "coche",
		Total:           decimal.NewFromInt(12000),
		MonthlyPayment:  decimal.NewFromInt(250),
		RemainingMonths: 48,
		StartDate:       time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC),
		Active:          true,
	}
	s.Require().NoError(loan.Validate())
	s.Require().NoError(s.repo.CreateLoan(s.ctx, loan))

	got, err := s.repo.Loans(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal(48, got[0].RemainingMonths)
	s.True(got[0].Active)
	s.Equal(loan.StartDate, got[0].StartDate)

	s.Require().NoError(s.repo.DeleteLoan(s.ctx, s.userID, loan.ID))
	got, err = s.repo.Loans(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *CashflowRepositoryTestSuite) TestDecrementMortgages() {
	property := func(name string, months int) *cashflow.Property {
		p := &cashflow.Property{
			ID:                      uuid.New(),
			UserID:                  s.userID,
			Name:                    name,
			MonthlyIncome:           decimal.NewFromInt(900),
			MonthlyMortgage:         decimal.NewFromInt(400),
			Maintenance:             decimal.NewFromInt(50),
			RemainingMortgageMonths: months,
		}
		s.Require().NoError(s.repo.CreateProperty(s.ctx, p))
		return p
	}
	property("centro", 2)
	property("playa", 0)
	other := property("otro", 1)

	changed, err := s.repo.DecrementMortgages(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, changed)

	got, err := s.repo.Properties(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	months := map[string]int{}
	for _, p := range got {
		months[p.Name] = p.RemainingMortgageMonths
	}
	s.Equal(map[string]int{"centro": 1, "playa": 0, "otro": 0}, months)

	s.Require().NoError(s.repo.DeleteProperty(s.ctx, s.userID, other.ID))
	got, err = s.repo.Properties(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Len(got, 2)
}

func TestCashflowRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CashflowRepositoryTestSuite))
}
