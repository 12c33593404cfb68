package transaction

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/ledger"
	"github.com/google/uuid"
)

// Repository stores ledger transactions.
type Repository interface {
	Create(ctx context.Context, t *ledger.Transaction) error
	Update(ctx context.Context, t *ledger.Transaction) error
	// Get returns domain.ErrNotFound when the transaction does not belong to userID.
	Get(ctx context.Context, userID, id uuid.UUID) (*ledger.Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	// List returns the user's transactions, newest date first, then newest creation first.
	List(ctx context.Context, userID uuid.UUID) ([]*ledger.Transaction, error)
	// ListByTicker returns the ticker's transactions (case-insensitive) in
	// ledger order: oldest date first, then oldest creation first.
	ListByTicker(ctx context.Context, userID uuid.UUID, ticker string) ([]*ledger.Transaction, error)
}
