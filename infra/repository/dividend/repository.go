package dividend

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/dividend"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/dividend"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type dividendRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed dividend repository.
func New(db *gorm.DB) repo.Repository {
	return &dividendRepository{db: db}
}

func (r *dividendRepository) Create(ctx context.Context, d *dividend.Dividend) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(d)).Error
	})
}

func (r *dividendRepository) Update(ctx context.Context, d *dividend.Dividend) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Save(toModel(d)).Error
	})
}

func (r *dividendRepository) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("dividends").
		Select("dividends.*, positions.ticker AS ticker").
		Joins("JOIN positions ON positions.id = dividends.position_id").
		Where("positions.user_id = ?", userID)
}

func (r *dividendRepository) Get(ctx context.Context, userID, id uuid.UUID) (*dividend.Dividend, error) {
	var rows []withTicker
	if err := r.owned(ctx, userID).Where("dividends.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *dividendRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&Dividend{}, "id = ?", id).Error
	})
}

func (r *dividendRepository) DeleteByPosition(ctx context.Context, positionID uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Delete(&Dividend{}, "position_id = ?", positionID).Error
	})
}

func (r *dividendRepository) List(ctx context.Context, userID uuid.UUID) ([]*dividend.Dividend, error) {
	var rows []withTicker
	if err := r.owned(ctx, userID).Order("dividends.date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*dividend.Dividend, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}
