package repository

import (
	"context"
	"fmt"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Do runs the given function in a transaction boundary. GetRepository returns
// a repository bound to that transaction, keyed by a nil pointer to the
// repository interface:
//
//	repoAny, err := uow.GetRepository((*user.Repository)(nil))
//	repo := repoAny.(user.Repository)
//
// Get wraps that lookup with a type assertion.
type UnitOfWork interface {
	// Do executes fn within a transaction. If fn returns an error, the
	// transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns the repository registered for repoType, bound
	// to the current transaction or session.
	GetRepository(repoType any) (any, error)
}

// Get returns the repository of interface type T from uow.
func Get[T any](uow UnitOfWork) (T, error) {
	var zero T
	repoAny, err := uow.GetRepository((*T)(nil))
	if err != nil {
		return zero, err
	}
	repo, ok := repoAny.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected repository type %T", repoAny)
	}
	return repo, nil
}
