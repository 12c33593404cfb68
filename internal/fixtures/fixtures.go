// Package fixtures provides databases, users and market-data mocks for
// service and handler tests.
package fixtures

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/alphaquantum/infra"
	"github.com/amirasaad/alphaquantum/internal/testdb"
	"github.com/amirasaad/alphaquantum/pkg/domain/user"
	"github.com/amirasaad/alphaquantum/pkg/dto"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	userrepo "github.com/amirasaad/alphaquantum/pkg/repository/user"
	"github.com/amirasaad/alphaquantum/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	utils.PasswordCost = 4
}

// Logger discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewUoW opens a migrated in-memory database and a unit of work over it.
func NewUoW(t *testing.T) (repository.UnitOfWork, *gorm.DB) {
	t.Helper()
	db := testdb.SQLite(t, infra.Models()...)
	return infra.NewUoW(db), db
}

// CreateUser stores a user with the given username and password "secret12".
func CreateUser(t *testing.T, uow repository.UnitOfWork, username string) uuid.UUID {
	t.Helper()
	u, err := user.New(username, username+"@example.com", "secret12")
	require.NoError(t, err)
	repo, err := repository.Get[userrepo.Repository](uow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &dto.UserCreate{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}))
	return u.ID
}
