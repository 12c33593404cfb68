package calendar

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/calendar"
	"github.com/google/uuid"
)

// Repository stores financial events.
type Repository interface {
	Create(ctx context.Context, e *calendar.Event) error
	// GetOrCreate inserts e unless an event with the same user, ticker, type
	// and date exists. It reports whether a row was inserted.
	GetOrCreate(ctx context.Context, e *calendar.Event) (bool, error)
	// List returns the user's events, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*calendar.Event, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
