package portfolio

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/portfolio"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type portfolioRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed portfolio repository.
func New(db *gorm.DB) repo.Repository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(ctx context.Context, p *portfolio.Portfolio) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(p)).Error
	})
}

func (r *portfolioRepository) Get(ctx context.Context, userID, id uuid.UUID) (*portfolio.Portfolio, error) {
	var m Portfolio
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *portfolioRepository) List(ctx context.Context, userID uuid.UUID) ([]*portfolio.Portfolio, error) {
	var rows []Portfolio
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*portfolio.Portfolio, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *portfolioRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Portfolio{}).Error
	})
}
