package snapshot

import (
	"context"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
)

// Repository stores daily portfolio snapshots, one per (user, date).
type Repository interface {
	Upsert(ctx context.Context, userID uuid.UUID, s portfolio.Snapshot) error
	// List returns snapshots dated on or after since, oldest first.
	List(ctx context.Context, userID uuid.UUID, since time.Time) ([]portfolio.Snapshot, error)
}
