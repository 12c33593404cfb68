package calendar

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/calendar"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/calendar"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type calendarRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed calendar repository.
func New(db *gorm.DB) repo.Repository {
	return &calendarRepository{db: db}
}

func (r *calendarRepository) Create(ctx context.Context, e *calendar.Event) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(e)).Error
	})
}

func (r *calendarRepository) GetOrCreate(ctx context.Context, e *calendar.Event) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Event{}).
		Where("user_id = ? AND ticker = ? AND type = ? AND date = ?", e.UserID, e.Ticker, string(e.Type), e.Date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := r.Create(ctx, e); err != nil {
		return false, err
	}
	return true, nil
}

func (r *calendarRepository) List(ctx context.Context, userID uuid.UUID) ([]*calendar.Event, error) {
	var rows []Event
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date DESC").Order("ticker").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*calendar.Event, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *calendarRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Event{}).Error
	})
}
