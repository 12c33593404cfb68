package alarm

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/alarm"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alarmRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed alarm repository.
func New(db *gorm.DB) repo.Repository {
	return &alarmRepository{db: db}
}

func (r *alarmRepository) Create(ctx context.Context, a *alarm.Alarm) error {
	m := &Alarm{
		ID:         a.ID,
		UserID:     a.UserID,
		PositionID: a.PositionID,
		Ticker:     a.Ticker,
		Target:     a.Target,
		Activated:  a.Activated,
		CreatedAt:  a.CreatedAt,
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	})
}

func (r *alarmRepository) find(ctx context.Context, query string, args ...any) ([]*alarm.Alarm, error) {
	var rows []Alarm
	if err := r.db.WithContext(ctx).Where(query, args...).Order("created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*alarm.Alarm, 0, len(rows))
	for _, m := range rows {
		out = append(out, &alarm.Alarm{
			ID:         m.ID,
			UserID:     m.UserID,
			PositionID: m.PositionID,
			Ticker:     m.Ticker,
			Target:     m.Target,
			Activated:  m.Activated,
			CreatedAt:  m.CreatedAt,
		})
	}
	return out, nil
}

func (r *alarmRepository) List(ctx context.Context, userID uuid.UUID) ([]*alarm.Alarm, error) {
	return r.find(ctx, "user_id = ?", userID)
}

func (r *alarmRepository) Pending(ctx context.Context, userID uuid.UUID) ([]*alarm.Alarm, error) {
	return r.find(ctx, "user_id = ? AND activated = ?", userID, false)
}

func (r *alarmRepository) Activate(ctx context.Context, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&Alarm{}).Where("id = ?", id).Update("activated", true).Error
	})
}

func (r *alarmRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Alarm{}).Error
	})
}

func (r *alarmRepository) DeleteByPosition(ctx context.Context, positionID uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("position_id = ?", positionID).Delete(&Alarm{}).Error
	})
}
