// Package position manages positions ("Accion") edited directly by the user.
package position

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/events"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/eventbus"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	portfoliorepo "github.com/amirasaad/alphaquantum/pkg/repository/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	portfoliosvc "github.com/amirasaad/alphaquantum/pkg/service/portfolio"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input carries the editable fields of a position.
type Input struct {
	PortfolioID *uuid.UUID
	Name        string
	Ticker      string
	Quantity    decimal.Decimal
	BuyPrice    decimal.Decimal
	Date        time.Time
}

type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, logger: logger}
}

func checkPortfolio(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	repo, err := repository.Get[portfoliorepo.Repository](uow)
	if err != nil {
		return err
	}
	_, err = repo.Get(ctx, userID, *id)
	return err
}

// Create stores a position and emits position.opened.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (p *portfolio.Position, err error) {
	log := s.logger.With("userID", userID, "ticker", in.Ticker)
	log.Debug("Create position called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := checkPortfolio(ctx, uow, userID, in.PortfolioID); err != nil {
			return err
		}
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		p, err = portfolio.NewPosition(userID, in.PortfolioID, in.Name, in.Ticker, in.Quantity, in.BuyPrice, in.Date)
		if err != nil {
			return err
		}
		return repo.Create(ctx, p)
	})
	if err != nil {
		log.Error("Create position failed", "error", err)
		return nil, err
	}
	if err := s.bus.Emit(ctx, events.PositionOpened{UserID: userID, PositionID: p.ID, Ticker: p.Ticker}); err != nil {
		log.Error("Emit position.opened failed", "error", err)
	}
	log.Info("Create position successful", "positionID", p.ID)
	return p, nil
}

// Get returns one of the user's positions.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (p *portfolio.Position, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		p, err = repo.Get(ctx, userID, id)
		return err
	})
	return p, err
}

// List returns the user's positions, optionally limited to one portfolio.
func (s *Service) List(ctx context.Context, userID uuid.UUID, portfolioID *uuid.UUID) (out []*portfolio.Position, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		if portfolioID != nil {
			out, err = repo.ListByPortfolio(ctx, userID, *portfolioID)
		} else {
			out, err = repo.List(ctx, userID)
		}
		return err
	})
	return out, err
}

// Update edits a position.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (p *portfolio.Position, err error) {
	log := s.logger.With("userID", userID, "positionID", id)
	log.Debug("Update position called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if err := checkPortfolio(ctx, uow, userID, in.PortfolioID); err != nil {
			return err
		}
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		p, err = repo.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := p.Apply(in.Name, in.Ticker, in.Quantity, in.BuyPrice); err != nil {
			return err
		}
		p.PortfolioID = in.PortfolioID
		if !in.Date.IsZero() {
			p.Date = domain.Day(in.Date)
		}
		return repo.Update(ctx, p)
	})
	if err != nil {
		log.Error("Update position failed", "error", err)
		return nil, err
	}
	log.Info("Update position successful")
	return p, nil
}

// Delete removes a position with its dividends and alarms.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.With("userID", userID, "positionID", id)
	log.Debug("Delete position called")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := repo.Get(ctx, userID, id); err != nil {
			return err
		}
		if err := portfoliosvc.DeletePositionChildren(ctx, uow, id); err != nil {
			return err
		}
		return repo.Delete(ctx, userID, id)
	})
	if err != nil {
		log.Error("Delete position failed", "error", err)
		return err
	}
	log.Info("Delete position successful")
	return nil
}
