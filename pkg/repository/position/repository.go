package position

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
)

// Repository stores positions ("Accion").
type Repository interface {
	Create(ctx context.Context, p *portfolio.Position) error
	Update(ctx context.Context, p *portfolio.Position) error
	// Get returns domain.ErrNotFound when the position does not belong to userID.
	Get(ctx context.Context, userID, id uuid.UUID) (*portfolio.Position, error)
	// List returns the user's positions ordered by ticker.
	List(ctx context.Context, userID uuid.UUID) ([]*portfolio.Position, error)
	ListByPortfolio(ctx context.Context, userID, portfolioID uuid.UUID) ([]*portfolio.Position, error)
	// FindByTicker matches the ticker case-insensitively and returns (nil, nil)
	// when the user holds no position in it.
	FindByTicker(ctx context.Context, userID uuid.UUID, ticker string) (*portfolio.Position, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	DeleteByTicker(ctx context.Context, userID uuid.UUID, ticker string) error
	DeleteByPortfolio(ctx context.Context, userID, portfolioID uuid.UUID) error
}
