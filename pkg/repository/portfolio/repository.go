package portfolio

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
)

// Repository stores named portfolios.
type Repository interface {
	Create(ctx context.Context, p *portfolio.Portfolio) error
	// Get returns domain.ErrNotFound when the portfolio does not belong to userID.
	Get(ctx context.Context, userID, id uuid.UUID) (*portfolio.Portfolio, error)
	List(ctx context.Context, userID uuid.UUID) ([]*portfolio.Portfolio, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
