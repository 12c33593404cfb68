// Package user provides business logic for user management operations.
package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/user"
	"github.com/amirasaad/alphaquantum/pkg/dto"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	userrepo "github.com/amirasaad/alphaquantum/pkg/repository/user"
	"github.com/amirasaad/alphaquantum/pkg/utils"
	"github.com/google/uuid"
)

// Service provides business logic for user operations including creation, updates, and deletion.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateUser registers a user. Username and email must be unused.
func (s *Service) CreateUser(
	ctx context.Context,
	username, email, password, names string,
) (u *dto.UserRead, err error) {
	log := s.logger.With("username", username)
	log.Debug("CreateUser called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		nu, err := user.New(username, email, password)
		if err != nil {
			return err
		}
		if taken, err := repo.ExistsByUsername(ctx, nu.Username); err != nil {
			return err
		} else if taken {
			return domain.ErrAlreadyExists
		}
		if taken, err := repo.ExistsByEmail(ctx, nu.Email); err != nil {
			return err
		} else if taken {
			return domain.ErrAlreadyExists
		}
		if err := repo.Create(ctx, &dto.UserCreate{
			ID:       nu.ID,
			Username: nu.Username,
			Email:    nu.Email,
			Password: nu.Password,
			Names:    strings.TrimSpace(names),
		}); err != nil {
			return err
		}
		u, err = repo.Get(ctx, nu.ID)
		return err
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		return nil, err
	}
	log.Info("CreateUser successful", "userID", u.ID)
	return u, nil
}

// GetUser returns the user or domain.ErrNotFound.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (u *dto.UserRead, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err == nil && u == nil {
			err = domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateNames changes the display name.
func (s *Service) UpdateNames(ctx context.Context, id uuid.UUID, names string) error {
	log := s.logger.With("userID", id)
	log.Debug("UpdateNames called")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		existing, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		names = strings.TrimSpace(names)
		return repo.Update(ctx, id, &dto.UserUpdate{Names: &names})
	})
	if err != nil {
		log.Error("UpdateNames failed", "error", err)
		return err
	}
	log.Info("UpdateNames successful")
	return nil
}

// DeleteUser removes the user and its data after confirming the password.
func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID, password string) error {
	log := s.logger.With("userID", id)
	log.Debug("DeleteUser called")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err := repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if u == nil {
			return domain.ErrNotFound
		}
		if !utils.CheckPasswordHash(password, u.HashedPassword) {
			return user.ErrUserUnauthorized
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		log.Error("DeleteUser failed", "error", err)
		return err
	}
	log.Info("DeleteUser successful")
	return nil
}

// ListIDs returns every user id, for batch jobs.
func (s *Service) ListIDs(ctx context.Context) (ids []uuid.UUID, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		ids, err = repo.ListIDs(ctx)
		return err
	})
	return ids, err
}
