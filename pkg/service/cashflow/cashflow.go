// Package cashflow manages income and expense records, loans and rental
// properties and builds the cash-flow dashboard and projection.
package cashflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/cashflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProjectionMonths bounds Projection.
const MaxProjectionMonths = 120

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

func (s *Service) do(ctx context.Context, fn func(r repo.Repository) error) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		return fn(r)
	})
}

// RecordInput carries the editable fields of a record.
type RecordInput struct {
	Date        time.Time
	Amount      decimal.Decimal
	IncomeType  *cashflow.IncomeType
	Description string
}

// CreateRecord stores an income or expense record.
func (s *Service) CreateRecord(ctx context.Context, userID uuid.UUID, category cashflow.Category, in RecordInput) (*cashflow.Record, error) {
	log := s.logger.With("userID", userID, "category", category)
	log.Debug("CreateRecord called")
	r, err := cashflow.NewRecord(userID, category, in.Date, in.Amount, in.IncomeType, in.Description)
	if err != nil {
		return nil, err
	}
	if err := s.do(ctx, func(rp repo.Repository) error { return rp.CreateRecord(ctx, r) }); err != nil {
		log.Error("CreateRecord failed", "error", err)
		return nil, err
	}
	log.Info("CreateRecord successful", "recordID", r.ID)
	return r, nil
}

// UpdateRecord edits a record. Its category cannot change.
func (s *Service) UpdateRecord(ctx context.Context, userID, id uuid.UUID, in RecordInput) (r *cashflow.Record, err error) {
	err = s.do(ctx, func(rp repo.Repository) error {
		if r, err = rp.GetRecord(ctx, userID, id); err != nil {
			return err
		}
		if err := r.Apply(in.Date, in.Amount, in.IncomeType, in.Description); err != nil {
			return err
		}
		return rp.UpdateRecord(ctx, r)
	})
	if err != nil {
		s.logger.Error("UpdateRecord failed", "recordID", id, "error", err)
		return nil, err
	}
	return r, nil
}

// DeleteRecord removes a record.
func (s *Service) DeleteRecord(ctx context.Context, userID, id uuid.UUID) error {
	return s.do(ctx, func(rp repo.Repository) error {
		if _, err := rp.GetRecord(ctx, userID, id); err != nil {
			return err
		}
		return rp.DeleteRecord(ctx, userID, id)
	})
}

// Records returns the user's records, newest first.
func (s *Service) Records(ctx context.Context, userID uuid.UUID) (out []*cashflow.Record, err error) {
	err = s.do(ctx, func(rp repo.Repository) error {
		out, err = rp.Records(ctx, userID)
		return err
	})
	return out, err
}

// CreateLoan validates and stores a loan.
func (s *Service) CreateLoan(ctx context.Context, userID uuid.UUID, l cashflow.Loan) (*cashflow.Loan, error) {
	l.ID, l.UserID = uuid.New(), userID
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := s.do(ctx, func(rp repo.Repository) error { return rp.CreateLoan(ctx, &l) }); err != nil {
		s.logger.Error("CreateLoan failed", "userID", userID, "error", err)
		return nil, err
	}
	return &l, nil
}

// UpdateLoan replaces a loan the user owns.
func (s *Service) UpdateLoan(ctx context.Context, userID, id uuid.UUID, l cashflow.Loan) (*cashflow.Loan, error) {
	l.ID, l.UserID = id, userID
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if err := s.do(ctx, func(rp repo.Repository) error { return rp.UpdateLoan(ctx, &l) }); err != nil {
		s.logger.Error("UpdateLoan failed", "userID", userID, "loanID", id, "error", err)
		return nil, err
	}
	return &l, nil
}

func (s *Service) Loans(ctx context.Context, userID uuid.UUID) (out []*cashflow.Loan, err error) {
	err = s.do(ctx, func(rp repo.Repository) error {
		out, err = rp.Loans(ctx, userID)
		return err
	})
	return out, err
}

func (s *Service) DeleteLoan(ctx context.Context, userID, id uuid.UUID) error {
	return s.do(ctx, func(rp repo.Repository) error { return rp.DeleteLoan(ctx, userID, id) })
}

// CreateProperty validates and stores a rental property.
func (s *Service) CreateProperty(ctx context.Context, userID uuid.UUID, p cashflow.Property) (*cashflow.Property, error) {
	p.ID, p.UserID = uuid.New(), userID
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.do(ctx, func(rp repo.Repository) error { return rp.CreateProperty(ctx, &p) }); err != nil {
		s.logger.Error("CreateProperty failed", "userID", userID, "error", err)
		return nil, err
	}
	return &p, nil
}

// UpdateProperty replaces a rental property the user owns.
func (s *Service) UpdateProperty(ctx context.Context, userID, id uuid.UUID, p cashflow.Property) (*cashflow.Property, error) {
	p.ID, p.UserID = id, userID
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.do(ctx, func(rp repo.Repository) error { return rp.UpdateProperty(ctx, &p) }); err != nil {
		s.logger.Error("UpdateProperty failed", "userID", userID, "propertyID", id, "error", err)
		return nil, err
	}
	return &p, nil
}

func (s *Service) Properties(ctx context.Context, userID uuid.UUID) (out []*cashflow.Property, err error) {
	err = s.do(ctx, func(rp repo.Repository) error {
		out, err = rp.Properties(ctx, userID)
		return err
	})
	return out, err
}

func (s *Service) DeleteProperty(ctx context.Context, userID, id uuid.UUID) error {
	return s.do(ctx, func(rp repo.Repository) error { return rp.DeleteProperty(ctx, userID, id) })
}

// Display holds the headline totals rendered as euro amounts.
type Display struct {
	TotalIncome  string `json:"total_ingresos"`
	TotalExpense string `json:"total_gastos"`
	Net          string `json:"flujo_neto"`
	LoanBalance  string `json:"deuda_total"`
	RentalNet    string `json:"beneficio_alquiler"`
}

// Dashboard is the cash-flow overview.
type Dashboard struct {
	Summary    cashflow.Summary
	Records    []*cashflow.Record
	Loans      []*cashflow.Loan
	Properties []*cashflow.Property
	Display    Display
}

// Dashboard loads everything the user has recorded and summarizes it as of today.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (d Dashboard, err error) {
	err = s.do(ctx, func(rp repo.Repository) error {
		if d.Records, err = rp.Records(ctx, userID); err != nil {
			return err
		}
		if d.Loans, err = rp.Loans(ctx, userID); err != nil {
			return err
		}
		d.Properties, err = rp.Properties(ctx, userID)
		return err
	})
	if err != nil {
		return Dashboard{}, err
	}
	d.Summary = cashflow.Summarize(d.Records, d.Loans, d.Properties, domain.Today())
	d.Display = Display{
		TotalIncome:  domain.DisplayEUR(d.Summary.TotalIncome),
		TotalExpense: domain.DisplayEUR(d.Summary.TotalExpense),
		Net:          domain.DisplayEUR(d.Summary.Net),
		LoanBalance:  domain.DisplayEUR(d.Summary.LoanBalance),
		RentalNet:    domain.DisplayEUR(d.Summary.RentalNet),
	}
	return d, nil
}

// Projection rolls the user's loans and properties forward month by month.
func (s *Service) Projection(ctx context.Context, userID uuid.UUID, months int) ([]cashflow.ProjectionPoint, error) {
	if months < 1 || months > MaxProjectionMonths {
		return nil, domain.Invalid("meses", "must be between 1 and 120")
	}
	var (
		loans      []*cashflow.Loan
		properties []*cashflow.Property
	)
	err := s.do(ctx, func(rp repo.Repository) (err error) {
		if loans, err = rp.Loans(ctx, userID); err != nil {
			return err
		}
		properties, err = rp.Properties(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cashflow.Project(loans, properties, months, domain.Today()), nil
}

// DecrementMortgages takes one month off every outstanding mortgage.
func (s *Service) DecrementMortgages(ctx context.Context) (n int64, err error) {
	s.logger.Debug("DecrementMortgages called")
	err = s.do(ctx, func(rp repo.Repository) error {
		n, err = rp.DecrementMortgages(ctx)
		return err
	})
	if err != nil {
		s.logger.Error("DecrementMortgages failed", "error", err)
		return 0, err
	}
	s.logger.Info("DecrementMortgages successful", "properties", n)
	return n, nil
}
