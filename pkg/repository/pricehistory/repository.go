package pricehistory

import (
	"context"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
)

// Repository stores daily closes per (ticker, date).
type Repository interface {
	// Upsert inserts closes or replaces the stored close for an existing
	// (ticker, date).
	Upsert(ctx context.Context, points []portfolio.PricePoint) error
	// List returns the closes of tickers dated on or after since, oldest first.
	List(ctx context.Context, tickers []string, since time.Time) ([]portfolio.PricePoint, error)
}
