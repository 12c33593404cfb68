package cashflow

import (
	"context"

	"github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	"github.com/google/uuid"
)

// Repository stores cash-flow records, loans and rental properties.
type Repository interface {
	CreateRecord(ctx context.Context, r *cashflow.Record) error
	UpdateRecord(ctx context.Context, r *cashflow.Record) error
	GetRecord(ctx context.Context, userID, id uuid.UUID) (*cashflow.Record, error)
	DeleteRecord(ctx context.Context, userID, id uuid.UUID) error
	// Records returns the user's records, newest first.
	Records(ctx context.Context, userID uuid.UUID) ([]*cashflow.Record, error)

	CreateLoan(ctx context.Context, l *cashflow.Loan) error
	// UpdateLoan replaces the editable fields of a loan the user owns.
	UpdateLoan(ctx context.Context, l *cashflow.Loan) error
	Loans(ctx context.Context, userID uuid.UUID) ([]*cashflow.Loan, error)
	DeleteLoan(ctx context.Context, userID, id uuid.UUID) error

	CreateProperty(ctx context.Context, p *cashflow.Property) error
	UpdateProperty(ctx context.Context, p *cashflow.Property) error
	Properties(ctx context.Context, userID uuid.UUID) ([]*cashflow.Property, error)
	DeleteProperty(ctx context.Context, userID, id uuid.UUID) error
	// DecrementMortgages takes one month off every positive remaining
	// mortgage count of every user and returns the rows changed.
	DecrementMortgages(ctx context.Context) (int64, error)
}
