package alarm

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	"github.com/google/uuid"
)

// Repository stores price alarms.
type Repository interface {
	Create(ctx context.Context, a *alarm.Alarm) error
	List(ctx context.Context, userID uuid.UUID) ([]*alarm.Alarm, error)
	// Pending returns the user's alarms that have not fired yet.
	Pending(ctx context.Context, userID uuid.UUID) ([]*alarm.Alarm, error)
	Activate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByPosition(ctx context.Context, positionID uuid.UUID) error
}
