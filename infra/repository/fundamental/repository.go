package fundamental

import (
	"context"
	"encoding/json"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/fundamental"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type analysisRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed analysis repository.
func New(db *gorm.DB) repo.Repository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(ctx context.Context, a *fundamental.Analysis) error {
	m := &Analysis{ID: a.ID, UserID: a.UserID, Ticker: a.Ticker, Date: a.Date, Data: string(a.Data)}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	})
}

func (r *analysisRepository) List(ctx context.Context, userID uuid.UUID) ([]*fundamental.Analysis, error) {
	var rows []Analysis
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("date DESC").Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]*fundamental.Analysis, 0, len(rows))
	for _, m := range rows {
		out = append(out, &fundamental.Analysis{
			ID:     m.ID,
			UserID: m.UserID,
			Ticker: m.Ticker,
			Date:   m.Date.UTC(),
			Data:   json.RawMessage(m.Data),
		})
	}
	return out, nil
}
