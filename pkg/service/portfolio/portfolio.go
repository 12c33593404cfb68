// Package portfolio manages named portfolios ("Cartera").
package portfolio

import (
	"context"
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	"github.com/amirasaad/alphaquantum/pkg/repository/alarm"
	"github.com/amirasaad/alphaquantum/pkg/repository/dividend"
	portfoliorepo "github.com/amirasaad/alphaquantum/pkg/repository/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/google/uuid"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create stores a new portfolio.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, name string) (p *portfolio.Portfolio, err error) {
	log := s.logger.With("userID", userID)
	log.Debug("Create portfolio called", "name", name)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[portfoliorepo.Repository](uow)
		if err != nil {
			return err
		}
		p, err = portfolio.New(userID, name)
		if err != nil {
			return err
		}
		return repo.Create(ctx, p)
	})
	if err != nil {
		log.Error("Create portfolio failed", "error", err)
		return nil, err
	}
	log.Info("Create portfolio successful", "portfolioID", p.ID)
	return p, nil
}

// List returns the user's portfolios.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (out []*portfolio.Portfolio, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[portfoliorepo.Repository](uow)
		if err != nil {
			return err
		}
		out, err = repo.List(ctx, userID)
		return err
	})
	return out, err
}

// Delete removes the portfolio, its positions and what hangs off them.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.With("userID", userID, "portfolioID", id)
	log.Debug("Delete portfolio called")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[portfoliorepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := repo.Get(ctx, userID, id); err != nil {
			return err
		}
		positions, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		held, err := positions.ListByPortfolio(ctx, userID, id)
		if err != nil {
			return err
		}
		for _, p := range held {
			if err := DeletePositionChildren(ctx, uow, p.ID); err != nil {
				return err
			}
		}
		if err := positions.DeleteByPortfolio(ctx, userID, id); err != nil {
			return err
		}
		return repo.Delete(ctx, userID, id)
	})
	if err != nil {
		log.Error("Delete portfolio failed", "error", err)
		return err
	}
	log.Info("Delete portfolio successful")
	return nil
}

// DeletePositionChildren removes the dividends and alarms of a position.
func DeletePositionChildren(ctx context.Context, uow repository.UnitOfWork, positionID uuid.UUID) error {
	divs, err := repository.Get[dividend.Repository](uow)
	if err != nil {
		return err
	}
	if err := divs.DeleteByPosition(ctx, positionID); err != nil {
		return err
	}
	alarms, err := repository.Get[alarm.Repository](uow)
	if err != nil {
		return err
	}
	return alarms.DeleteByPosition(ctx, positionID)
}
