// Package dividend records dividends received on positions.
package dividend

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/dividend"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	dividendrepo "github.com/amirasaad/alphaquantum/pkg/repository/dividend"
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

// Create records a dividend on one of the user's positions.
func (s *Service) Create(
	ctx context.Context,
	userID, positionID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	note string,
) (d *dividend.Dividend, err error) {
	log := s.logger.With("userID", userID, "positionID", positionID)
	log.Debug("Create dividend called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		positions, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		p, err := positions.Get(ctx, userID, positionID)
		if err != nil {
			return err
		}
		repo, err := repository.Get[dividendrepo.Repository](uow)
		if err != nil {
			return err
		}
		d, err = dividend.New(p.ID, p.Ticker, date, amount, note)
		if err != nil {
			return err
		}
		return repo.Create(ctx, d)
	})
	if err != nil {
		log.Error("Create dividend failed", "error", err)
		return nil, err
	}
	log.Info("Create dividend successful", "dividendID", d.ID)
	return d, nil
}

// Update edits a dividend the user owns.
func (s *Service) Update(
	ctx context.Context,
	userID, id uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	note string,
) (d *dividend.Dividend, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[dividendrepo.Repository](uow)
		if err != nil {
			return err
		}
		d, err = repo.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := d.Apply(date, amount, note); err != nil {
			return err
		}
		return repo.Update(ctx, d)
	})
	if err != nil {
		s.logger.Error("Update dividend failed", "dividendID", id, "error", err)
		return nil, err
	}
	return d, nil
}

// Delete removes a dividend the user owns.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[dividendrepo.Repository](uow)
		if err != nil {
			return err
		}
		if _, err := repo.Get(ctx, userID, id); err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Error("Delete dividend failed", "dividendID", id, "error", err)
	}
	return err
}

// Overview is the dividend page: every dividend plus its aggregates.
type Overview struct {
	Dividends []*dividend.Dividend
	Report    dividend.Report
}

// Overview lists the user's dividends, newest first, with their totals.
func (s *Service) Overview(ctx context.Context, userID uuid.UUID) (o Overview, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[dividendrepo.Repository](uow)
		if err != nil {
			return err
		}
		o.Dividends, err = repo.List(ctx, userID)
		return err
	})
	if err != nil {
		return Overview{}, err
	}
	o.Report = dividend.Summarize(o.Dividends)
	return o, nil
}
