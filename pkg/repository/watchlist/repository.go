package watchlist

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/google/uuid"
)

// Repository stores watchlists and their items.
type Repository interface {
	CreateList(ctx context.Context, l *watchlist.List) error
	GetList(ctx context.Context, userID, id uuid.UUID) (*watchlist.List, error)
	// FindListByTitle returns (nil, nil) when no list has the title.
	FindListByTitle(ctx context.Context, userID uuid.UUID, title string) (*watchlist.List, error)
	// Lists returns the user's lists ordered by title, without items.
	Lists(ctx context.Context, userID uuid.UUID) ([]*watchlist.List, error)
	// DeleteList removes the list and its items.
	DeleteList(ctx context.Context, userID, id uuid.UUID) error

	CreateItem(ctx context.Context, it *watchlist.Item) error
	UpdateItem(ctx context.Context, it *watchlist.Item) error
	GetItem(ctx context.Context, userID, id uuid.UUID) (*watchlist.Item, error)
	DeleteItem(ctx context.Context, userID, id uuid.UUID) error
	// Items returns the user's items ordered by ticker.
	Items(ctx context.Context, userID uuid.UUID) ([]*watchlist.Item, error)
	// AllItems returns every item of every user, for batch jobs.
	AllItems(ctx context.Context) ([]*watchlist.Item, error)
	// ItemExists reports whether listID already tracks ticker, ignoring excludeID.
	ItemExists(ctx context.Context, userID, listID uuid.UUID, ticker string, excludeID uuid.UUID) (bool, error)
}
