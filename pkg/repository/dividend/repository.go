package dividend

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/dividend"
	"github.com/google/uuid"
)

// Repository stores dividends. Ownership is checked through the position.
type Repository interface {
	Create(ctx context.Context, d *dividend.Dividend) error
	Update(ctx context.Context, d *dividend.Dividend) error
	// Get returns domain.ErrNotFound unless the dividend's position belongs to userID.
	Get(ctx context.Context, userID, id uuid.UUID) (*dividend.Dividend, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPosition(ctx context.Context, positionID uuid.UUID) error
	// List returns the user's dividends, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]*dividend.Dividend, error)
}
