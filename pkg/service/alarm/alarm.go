// Package alarm manages price alarms and fires them after price refreshes.
package alarm

import (
	"context"
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	alarmrepo "github.com/amirasaad/alphaquantum/pkg/repository/alarm"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Create sets an alarm on one of the user's positions.
func (s *Service) Create(ctx context.Context, userID, positionID uuid.UUID, target decimal.Decimal) (a *alarm.Alarm, err error) {
	log := s.logger.With("userID", userID, "positionID", positionID)
	log.Debug("Create alarm called", "target", target)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		positions, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		p, err := positions.Get(ctx, userID, positionID)
		if err != nil {
			return err
		}
		repo, err := repository.Get[alarmrepo.Repository](uow)
		if err != nil {
			return err
		}
		a, err = alarm.New(userID, p.ID, p.Ticker, target)
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		log.Error("Create alarm failed", "error", err)
		return nil, err
	}
	log.Info("Create alarm successful", "alarmID", a.ID)
	return a, nil
}

// List returns the user's alarms.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (out []*alarm.Alarm, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[alarmrepo.Repository](uow)
		if err != nil {
			return err
		}
		out, err = repo.List(ctx, userID)
		return err
	})
	return out, err
}

// Delete removes one of the user's alarms.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[alarmrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, userID, id)
	})
	if err != nil {
		s.logger.Error("Delete alarm failed", "alarmID", id, "error", err)
	}
	return err
}

// Check activates every pending alarm whose position is priced at or above
// its target. It returns the alarms that fired.
func Check(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID, positions []*portfolio.Position) ([]*alarm.Alarm, error) {
	repo, err := repository.Get[alarmrepo.Repository](uow)
	if err != nil {
		return nil, err
	}
	pending, err := repo.Pending(ctx, userID)
	if err != nil || len(pending) == 0 {
		return nil, err
	}
	byID := make(map[uuid.UUID]*portfolio.Position, len(positions))
	for _, p := range positions {
		byID[p.ID] = p
	}
	var fired []*alarm.Alarm
	for _, a := range pending {
		p, ok := byID[a.PositionID]
		if !ok || !a.Check(p.CurrentPrice) {
			continue
		}
		if err := repo.Activate(ctx, a.ID); err != nil {
			return fired, err
		}
		fired = append(fired, a)
	}
	return fired, nil
}
