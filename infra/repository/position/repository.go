package position

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type positionRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed position repository.
func New(db *gorm.DB) repo.Repository {
	return &positionRepository{db: db}
}

func (r *positionRepository) Create(ctx context.Context, p *portfolio.Position) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(p)).Error
	})
}

func (r *positionRepository) Update(ctx context.Context, p *portfolio.Position) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Save(toModel(p)).Error
	})
}

func (r *positionRepository) Get(ctx context.Context, userID, id uuid.UUID) (*portfolio.Position, error) {
	var m Position
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *positionRepository) find(ctx context.Context, scopes ...func(*gorm.DB) *gorm.DB) ([]*portfolio.Position, error) {
	var rows []Position
	if err := r.db.WithContext(ctx).Scopes(scopes...).Order("ticker").Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*portfolio.Position, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func byUser(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) }
}

func (r *positionRepository) List(ctx context.Context, userID uuid.UUID) ([]*portfolio.Position, error) {
	return r.find(ctx, byUser(userID))
}

func (r *positionRepository) ListByPortfolio(ctx context.Context, userID, portfolioID uuid.UUID) ([]*portfolio.Position, error) {
	return r.find(ctx, byUser(userID), func(db *gorm.DB) *gorm.DB {
		return db.Where("portfolio_id = ?", portfolioID)
	})
}

func (r *positionRepository) FindByTicker(ctx context.Context, userID uuid.UUID, ticker string) (*portfolio.Position, error) {
	found, err := r.find(ctx, byUser(userID), repository.ByTicker(ticker))
	if err != nil || len(found) == 0 {
		return nil, err
	}
	return found[0], nil
}

func (r *positionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Position{}).Error
	})
}

func (r *positionRepository) DeleteByTicker(ctx context.Context, userID uuid.UUID, ticker string) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Scopes(byUser(userID), repository.ByTicker(ticker)).Delete(&Position{}).Error
	})
}

func (r *positionRepository) DeleteByPortfolio(ctx context.Context, userID, portfolioID uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Scopes(byUser(userID)).Where("portfolio_id = ?", portfolioID).Delete(&Position{}).Error
	})
}
