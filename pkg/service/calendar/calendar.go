// Package calendar imports corporate events from market data, records
// trades as they happen and serves the filtered financial calendar.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/calendar"
	"github.com/amirasaad/alphaquantum/pkg/domain/events"
	"github.com/amirasaad/alphaquantum/pkg/eventbus"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	calendarrepo "github.com/amirasaad/alphaquantum/pkg/repository/calendar"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/amirasaad/alphaquantum/pkg/repository/watchlist"
	"github.com/google/uuid"
)

type Service struct {
	uow    repository.UnitOfWork
	events provider.CorporateEvents
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, corporate provider.CorporateEvents, logger *slog.Logger) *Service {
	return &Service{uow: uow, events: corporate, logger: logger}
}

// Subscribe registers the calendar handlers on bus.
func (s *Service) Subscribe(bus eventbus.Bus) {
	bus.Register(events.PositionOpenedType, s.onPositionOpened)
	bus.Register(events.TransactionRecordedType, s.onTransactionRecorded)
}

func (s *Service) onPositionOpened(ctx context.Context, e events.Event) error {
	opened, ok := e.(events.PositionOpened)
	if !ok {
		return fmt.Errorf("unexpected event %T", e)
	}
	_, err := s.ImportTicker(ctx, opened.UserID, opened.Ticker)
	return err
}

func (s *Service) onTransactionRecorded(ctx context.Context, e events.Event) error {
	rec, ok := e.(events.TransactionRecorded)
	if !ok {
		return fmt.Errorf("unexpected event %T", e)
	}
	typ := calendar.Purchase
	if rec.Kind == "SELL" {
		typ = calendar.Sale
	}
	desc := calendar.TradeDescription(typ, rec.Quantity.String(), domain.FormatMoney(rec.Price))
	_, err := s.Create(ctx, rec.UserID, rec.Ticker, typ, rec.Date, desc, nil)
	return err
}

// collect fetches the earnings and dividend history of ticker as events.
// A failed lookup is logged and contributes nothing.
func (s *Service) collect(ctx context.Context, userID uuid.UUID, ticker string) []*calendar.Event {
	log := s.logger.With("ticker", ticker)
	var out []*calendar.Event
	earnings, err := s.events.Earnings(ctx, ticker)
	if err != nil {
		log.Warn("Earnings lookup failed", "error", err)
	}
	for _, q := range earnings {
		e, err := calendar.NewEvent(userID, ticker, calendar.Earnings, q.ReportedDate,
			calendar.EarningsDescription(q.ReportedEPS, q.EstimatedEPS), nil)
		if err == nil {
			out = append(out, e)
		}
	}
	dividends, err := s.events.Dividends(ctx, ticker)
	if err != nil {
		log.Warn("Dividend history lookup failed", "error", err)
	}
	for _, d := range dividends {
		e, err := calendar.NewEvent(userID, ticker, calendar.Dividend, d.PaymentDate,
			calendar.DividendDescription(d.Amount), nil)
		if err == nil {
			out = append(out, e)
		}
	}
	return out
}

// ImportTicker adds the earnings and dividend events of ticker that the user
// does not have yet. It returns how many were added.
func (s *Service) ImportTicker(ctx context.Context, userID uuid.UUID, ticker string) (int, error) {
	ticker = domain.NormalizeTicker(ticker)
	log := s.logger.With("userID", userID, "ticker", ticker)
	log.Debug("ImportTicker called")
	found := s.collect(ctx, userID, ticker)
	if len(found) == 0 {
		return 0, nil
	}
	added := 0
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[calendarrepo.Repository](uow)
		if err != nil {
			return err
		}
		for _, e := range found {
			created, err := repo.GetOrCreate(ctx, e)
			if err != nil {
				return err
			}
			if created {
				added++
			}
		}
		return nil
	})
	if err != nil {
		log.Error("ImportTicker failed", "error", err)
		return 0, err
	}
	log.Info("ImportTicker successful", "found", len(found), "added", added)
	return added, nil
}

// trackedTickers lists the distinct tickers the user holds or watches.
func (s *Service) trackedTickers(ctx context.Context, userID uuid.UUID) (tickers []string, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		positions, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		held, err := positions.List(ctx, userID)
		if err != nil {
			return err
		}
		lists, err := repository.Get[watchlist.Repository](uow)
		if err != nil {
			return err
		}
		watched, err := lists.Items(ctx, userID)
		if err != nil {
			return err
		}
		seen := make(map[string]bool)
		add := func(t string) {
			if !seen[t] {
				seen[t] = true
				tickers = append(tickers, t)
			}
		}
		for _, p := range held {
			add(p.Ticker)
		}
		for _, it := range watched {
			add(it.Ticker)
		}
		return nil
	})
	return tickers, err
}

// Refresh imports the events of every ticker the user holds or watches and
// returns all stored events.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID) ([]*calendar.Event, error) {
	tickers, err := s.trackedTickers(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, t := range tickers {
		if _, err := s.ImportTicker(ctx, userID, t); err != nil {
			return nil, err
		}
	}
	return s.Events(ctx, userID, calendar.Filter{})
}

// RefreshWatched imports the events of every watchlist ticker for its
// owner. It returns how many events were added.
func (s *Service) RefreshWatched(ctx context.Context) (int, error) {
	type key struct {
		user   uuid.UUID
		ticker string
	}
	var keys []key
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		lists, err := repository.Get[watchlist.Repository](uow)
		if err != nil {
			return err
		}
		items, err := lists.AllItems(ctx)
		if err != nil {
			return err
		}
		seen := make(map[key]bool)
		for _, it := range items {
			k := key{it.UserID, it.Ticker}
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, k := range keys {
		n, err := s.ImportTicker(ctx, k.user, k.ticker)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// Events returns the user's events that pass f, newest first.
func (s *Service) Events(ctx context.Context, userID uuid.UUID, f calendar.Filter) (out []*calendar.Event, err error) {
	today := domain.Today()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[calendarrepo.Repository](uow)
		if err != nil {
			return err
		}
		all, err := repo.List(ctx, userID)
		if err != nil {
			return err
		}
		for _, e := range all {
			if f.Match(e, today) {
				out = append(out, e)
			}
		}
		return nil
	})
	return out, err
}

// Create stores a manual event.
func (s *Service) Create(
	ctx context.Context,
	userID uuid.UUID,
	ticker string,
	typ calendar.Type,
	date time.Time,
	description string,
	at *string,
) (*calendar.Event, error) {
	e, err := calendar.NewEvent(userID, ticker, typ, date, description, at)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[calendarrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, e)
	})
	if err != nil {
		s.logger.Error("Create event failed", "userID", userID, "error", err)
		return nil, err
	}
	return e, nil
}

// Delete removes one of the user's events.
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[calendarrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, userID, id)
	})
}
