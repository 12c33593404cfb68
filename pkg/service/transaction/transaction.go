// Package transaction records ledger entries and keeps the derived
// positions in step with them.
package transaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/events"
	"github.com/amirasaad/alphaquantum/pkg/domain/ledger"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/eventbus"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	txrepo "github.com/amirasaad/alphaquantum/pkg/repository/transaction"
	portfoliosvc "github.com/amirasaad/alphaquantum/pkg/service/portfolio"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Input carries the editable fields of a transaction.
type Input struct {
	Ticker     string
	Type       ledger.Type
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	Commission decimal.Decimal
	Date       time.Time
	Note       string
}

type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, bus eventbus.Bus, logger *slog.Logger) *Service {
	return &Service{uow: uow, bus: bus, logger: logger}
}

// Create stores a transaction and recomputes the ticker's position.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, in Input) (t *ledger.Transaction, err error) {
	log := s.logger.With("userID", userID, "ticker", in.Ticker, "type", in.Type)
	log.Debug("Create transaction called")
	var opened *portfolio.Position
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = ledger.New(userID, in.Ticker, in.Type, in.Quantity, in.Price, in.Commission, in.Date, in.Note)
		if err != nil {
			return err
		}
		if err := repo.Create(ctx, t); err != nil {
			return err
		}
		opened, err = RecomputePosition(ctx, uow, userID, t.Ticker)
		return err
	})
	if err != nil {
		log.Error("Create transaction failed", "error", err)
		return nil, err
	}
	s.emitOpened(ctx, opened)
	s.emit(ctx, t)
	log.Info("Create transaction successful", "transactionID", t.ID)
	return t, nil
}

// Update edits a transaction. Changing the ticker recomputes both tickers.
func (s *Service) Update(ctx context.Context, userID, id uuid.UUID, in Input) (t *ledger.Transaction, err error) {
	log := s.logger.With("userID", userID, "transactionID", id)
	log.Debug("Update transaction called")
	var opened []*portfolio.Position
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = repo.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		oldTicker := t.Ticker
		if err := t.Apply(in.Ticker, in.Type, in.Quantity, in.Price, in.Commission, in.Date, in.Note); err != nil {
			return err
		}
		if err := repo.Update(ctx, t); err != nil {
			return err
		}
		tickers := []string{t.Ticker}
		if oldTicker != t.Ticker {
			tickers = append(tickers, oldTicker)
		}
		for _, ticker := range tickers {
			p, err := RecomputePosition(ctx, uow, userID, ticker)
			if err != nil {
				return err
			}
			opened = append(opened, p)
		}
		return nil
	})
	if err != nil {
		log.Error("Update transaction failed", "error", err)
		return nil, err
	}
	for _, p := range opened {
		s.emitOpened(ctx, p)
	}
	log.Info("Update transaction successful")
	return t, nil
}

// Delete removes a transaction and recomputes its ticker.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	log := s.logger.With("userID", userID, "transactionID", id)
	log.Debug("Delete transaction called")
	var opened *portfolio.Position
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err := repo.Get(ctx, userID, id)
		if err != nil {
			return err
		}
		if err := repo.Delete(ctx, userID, id); err != nil {
			return err
		}
		opened, err = RecomputePosition(ctx, uow, userID, t.Ticker)
		return err
	})
	if err != nil {
		log.Error("Delete transaction failed", "error", err)
		return err
	}
	s.emitOpened(ctx, opened)
	log.Info("Delete transaction successful")
	return nil
}

// emitOpened announces a position the ledger created. p may be nil.
func (s *Service) emitOpened(ctx context.Context, p *portfolio.Position) {
	if p == nil {
		return
	}
	err := s.bus.Emit(ctx, events.PositionOpened{UserID: p.UserID, PositionID: p.ID, Ticker: p.Ticker})
	if err != nil {
		s.logger.Error("Emit position.opened failed", "error", err)
	}
}

func (s *Service) emit(ctx context.Context, t *ledger.Transaction) {
	if t.Type != ledger.Buy && t.Type != ledger.Sell {
		return
	}
	err := s.bus.Emit(ctx, events.TransactionRecorded{
		UserID:        t.UserID,
		TransactionID: t.ID,
		Ticker:        t.Ticker,
		Kind:          string(t.Type),
		Quantity:      t.Quantity,
		Price:         t.Price,
		Date:          t.Date,
	})
	if err != nil {
		s.logger.Error("Emit transaction.recorded failed", "error", err)
	}
}

// Get returns one of the user's transactions.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (t *ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = repo.Get(ctx, userID, id)
		return err
	})
	return t, err
}

// List returns the user's transactions, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (out []*ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		out, err = repo.List(ctx, userID)
		return err
	})
	return out, err
}

// SharesOnDate is the number of shares of ticker held at the end of date.
func (s *Service) SharesOnDate(ctx context.Context, userID uuid.UUID, ticker string, date time.Time) (qty decimal.Decimal, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		txs, err := repo.ListByTicker(ctx, userID, ticker)
		if err != nil {
			return err
		}
		qty = ledger.SharesOnDate(txs, date)
		return nil
	})
	return qty, err
}

// PnL returns the running P&L report of the entries matching f.
func (s *Service) PnL(ctx context.Context, userID uuid.UUID, f ledger.Filter) (rows []ledger.PnLRow, total decimal.Decimal, err error) {
	txs, err := s.List(ctx, userID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	rows, total = ledger.PnL(txs, f)
	return rows, total, nil
}

// ExportCSV renders the P&L report as CSV with a trailing TOTAL row.
func (s *Service) ExportCSV(ctx context.Context, userID uuid.UUID, f ledger.Filter) ([]byte, error) {
	rows, total, err := s.PnL(ctx, userID, f)
	if err != nil {
		return nil, err
	}
	out, err := gocsv.MarshalBytes(ledger.CSVRecords(rows, total))
	if err != nil {
		s.logger.Error("ExportCSV failed", "userID", userID, "error", err)
		return nil, err
	}
	return out, nil
}

// RecomputePosition rebuilds the user's position in ticker from the ledger
// within uow. A position with no shares left is deleted with its
// dividends and alarms. When the ledger creates the position it is returned
// as opened, otherwise opened is nil.
func RecomputePosition(ctx context.Context, uow repository.UnitOfWork, userID uuid.UUID, ticker string) (opened *portfolio.Position, err error) {
	txs, err := repository.Get[txrepo.Repository](uow)
	if err != nil {
		return nil, err
	}
	positions, err := repository.Get[position.Repository](uow)
	if err != nil {
		return nil, err
	}
	entries, err := txs.ListByTicker(ctx, userID, ticker)
	if err != nil {
		return nil, err
	}
	result := ledger.Recompute(entries)
	current, err := positions.FindByTicker(ctx, userID, ticker)
	if err != nil {
		return nil, err
	}

	if result.Closed {
		if current == nil {
			return nil, nil
		}
		if err := portfoliosvc.DeletePositionChildren(ctx, uow, current.ID); err != nil {
			return nil, err
		}
		return nil, positions.DeleteByTicker(ctx, userID, ticker)
	}

	if current == nil {
		since := domain.Today()
		if len(entries) > 0 {
			since = entries[0].Date
		}
		p, err := portfolio.NewPosition(userID, nil, "", ticker, result.Quantity, result.AvgCost, since)
		if err != nil {
			return nil, err
		}
		if err := positions.Create(ctx, p); err != nil {
			return nil, err
		}
		return p, nil
	}
	current.Quantity = result.Quantity
	current.BuyPrice = result.AvgCost
	current.UpdatedAt = time.Now().UTC()
	return nil, positions.Update(ctx, current)
}
