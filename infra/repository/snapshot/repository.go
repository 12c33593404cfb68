package snapshot

import (
	"context"
	"time"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/snapshot"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed snapshot repository.
func New(db *gorm.DB) repo.Repository {
	return &snapshotRepository{db: db}
}

func (r *snapshotRepository) Upsert(ctx context.Context, userID uuid.UUID, s portfolio.Snapshot) error {
	row := &Snapshot{
		UserID:   userID,
		Date:     domain.Day(s.Date),
		Value:    domain.RoundMoney(s.Value),
		Invested: domain.RoundMoney(s.Invested),
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "invested"}),
		}).Create(row).Error
	})
}

func (r *snapshotRepository) List(ctx context.Context, userID uuid.UUID, since time.Time) ([]portfolio.Snapshot, error) {
	var rows []Snapshot
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, domain.Day(since)).
		Order("date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]portfolio.Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, portfolio.Snapshot{Date: row.Date.UTC(), Value: row.Value, Invested: row.Invested})
	}
	return out, nil
}
