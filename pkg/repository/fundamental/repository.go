package fundamental

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/google/uuid"
)

// Repository stores fundamental analyses.
type Repository interface {
	Create(ctx context.Context, a *fundamental.Analysis) error
	// List returns the user's analyses, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*fundamental.Analysis, error)
}
