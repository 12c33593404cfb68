package cashflow

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/cashflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type cashflowRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed cash-flow repository.
func New(db *gorm.DB) repo.Repository {
	return &cashflowRepository{db: db}
}

func (r *cashflowRepository) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Where("user_id = ?", userID)
}

func (r *cashflowRepository) CreateRecord(ctx context.Context, rec *cashflow.Record) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(recordToModel(rec)).Error
	})
}

func (r *cashflowRepository) UpdateRecord(ctx context.Context, rec *cashflow.Record) error {
	m := recordToModel(rec)
	return repository.WrapError(func() error {
		res := r.db.WithContext(ctx).Model(&Record{}).
			Where("id = ? AND user_id = ?", m.ID, m.UserID).
			Updates(map[string]any{
				"date":        m.Date,
				"amount":      m.Amount,
				"income_type": m.IncomeType,
				"description": m.Description,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *cashflowRepository) GetRecord(ctx context.Context, userID, id uuid.UUID) (*cashflow.Record, error) {
	var m Record
	if err := r.owned(ctx, userID).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return m.toDomain(), nil
}

func (r *cashflowRepository) DeleteRecord(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.owned(ctx, userID).Where("id = ?", id).Delete(&Record{}).Error
	})
}

func (r *cashflowRepository) Records(ctx context.Context, userID uuid.UUID) ([]*cashflow.Record, error) {
	var rows []Record
	if err := r.owned(ctx, userID).Order("date DESC").Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*cashflow.Record, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *cashflowRepository) CreateLoan(ctx context.Context, l *cashflow.Loan) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(loanToModel(l)).Error
	})
}

// updateOwned applies values to the row id owned by userID.
func (r *cashflowRepository) updateOwned(ctx context.Context, model any, id, userID uuid.UUID, values map[string]any) error {
	return repository.WrapError(func() error {
		res := r.db.WithContext(ctx).Model(model).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(values)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *cashflowRepository) UpdateLoan(ctx context.Context, l *cashflow.Loan) error {
	m := loanToModel(l)
	return r.updateOwned(ctx, &Loan{}, m.ID, m.UserID, map[string]any{
		"name":             m.Name,
		"total":            m.Total,
		"monthly_payment":  m.MonthlyPayment,
		"remaining_months": m.RemainingMonths,
		"start_date":       m.StartDate,
		"active":           m.Active,
	})
}

func (r *cashflowRepository) Loans(ctx context.Context, userID uuid.UUID) ([]*cashflow.Loan, error) {
	var rows []Loan
	if err := r.owned(ctx, userID).Order("start_date").Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*cashflow.Loan, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *cashflowRepository) DeleteLoan(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.owned(ctx, userID).Where("id = ?", id).Delete(&Loan{}).Error
	})
}

func (r *cashflowRepository) CreateProperty(ctx context.Context, p *cashflow.Property) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(propertyToModel(p)).Error
	})
}

func (r *cashflowRepository) UpdateProperty(ctx context.Context, p *cashflow.Property) error {
	m := propertyToModel(p)
	return r.updateOwned(ctx, &Property{}, m.ID, m.UserID, map[string]any{
		"name":                      m.Name,
		"monthly_income":            m.MonthlyIncome,
		"monthly_mortgage":          m.MonthlyMortgage,
		"maintenance":               m.Maintenance,
		"remaining_mortgage_months": m.RemainingMortgageMonths,
	})
}

func (r *cashflowRepository) Properties(ctx context.Context, userID uuid.UUID) ([]*cashflow.Property, error) {
	var rows []Property
	if err := r.owned(ctx, userID).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*cashflow.Property, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *cashflowRepository) DeleteProperty(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.owned(ctx, userID).Where("id = ?", id).Delete(&Property{}).Error
	})
}

func (r *cashflowRepository) DecrementMortgages(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Property{}).
		Where("remaining_mortgage_months > 0").
		UpdateColumn("remaining_mortgage_months", gorm.Expr("remaining_mortgage_months - 1"))
	return res.RowsAffected, res.Error
}
