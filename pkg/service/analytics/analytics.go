// Package analytics values portfolios: headline summary, priced breakdown,
// historical performance, snapshots and the dashboard.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	alarmdomain "github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/amirasaad/alphaquantum/pkg/repository/pricehistory"
	"github.com/amirasaad/alphaquantum/pkg/repository/snapshot"
	alarmsvc "github.com/amirasaad/alphaquantum/pkg/service/alarm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultDays is the look-back used when a request does not name one.
const DefaultDays = 365

type Service struct {
	uow         repository.UnitOfWork
	market      provider.MarketData
	concurrency int
	logger      *slog.Logger
}

// New creates the analytics service. concurrency bounds the parallel
// provider calls of one refresh.
func New(uow repository.UnitOfWork, market provider.MarketData, concurrency int, logger *slog.Logger) *Service {
	if concurrency <= 0 {
		concurrency = 4
	}
	return &Service{uow: uow, market: market, concurrency: concurrency, logger: logger}
}

func (s *Service) positions(ctx context.Context, userID uuid.UUID) (out []*portfolio.Position, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		out, err = repo.List(ctx, userID)
		return err
	})
	return out, err
}

// Summary totals the user's positions at their stored prices.
func (s *Service) Summary(ctx context.Context, userID uuid.UUID) (portfolio.Summary, error) {
	positions, err := s.positions(ctx, userID)
	if err != nil {
		return portfolio.Summary{}, err
	}
	return portfolio.Summarize(positions), nil
}

// quotes fetches the current price of every ticker in parallel. Failed
// lookups are logged and left out.
func (s *Service) quotes(ctx context.Context, tickers []string) map[string]*decimal.Decimal {
	prices := make([]*decimal.Decimal, len(tickers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ticker := range tickers {
		g.Go(func() error {
			price, err := s.market.CurrentPrice(gctx, ticker)
			if err != nil {
				s.logger.Warn("Price refresh failed", "ticker", ticker, "error", err)
				return nil
			}
			prices[i] = price
			return nil
		})
	}
	_ = g.Wait()
	out := make(map[string]*decimal.Decimal, len(tickers))
	for i, ticker := range tickers {
		if prices[i] != nil {
			out[ticker] = prices[i]
		}
	}
	return out
}

func uniqueTickers(positions []*portfolio.Position) []string {
	seen := make(map[string]bool, len(positions))
	var out []string
	for _, p := range positions {
		if !seen[p.Ticker] {
			seen[p.Ticker] = true
			out = append(out, p.Ticker)
		}
	}
	return out
}

// RefreshPrices stores a fresh quote on every position and fires the
// alarms that the new prices reach. Nil and zero quotes keep the stored
// price.
func (s *Service) RefreshPrices(ctx context.Context, userID uuid.UUID) ([]*portfolio.Position, []*alarmdomain.Alarm, error) {
	log := s.logger.With("userID", userID)
	log.Debug("RefreshPrices called")
	positions, err := s.positions(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	quotes := s.quotes(ctx, uniqueTickers(positions))

	var fired []*alarmdomain.Alarm
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[position.Repository](uow)
		if err != nil {
			return err
		}
		for _, p := range positions {
			if !p.SetPrice(quotes[p.Ticker]) {
				continue
			}
			if err := repo.Update(ctx, p); err != nil {
				return err
			}
		}
		fired, err = alarmsvc.Check(ctx, uow, userID, positions)
		return err
	})
	if err != nil {
		log.Error("RefreshPrices failed", "error", err)
		return nil, nil, err
	}
	log.Info("RefreshPrices successful", "positions", len(positions), "quoted", len(quotes), "alarms", len(fired))
	return positions, fired, nil
}

// Breakdown is the priced portfolio view ("cartera").
type Breakdown struct {
	Holdings []portfolio.Holding
	Total    decimal.Decimal
	Fired    []*alarmdomain.Alarm
}

// Breakdown refreshes prices and values each priced position.
func (s *Service) Breakdown(ctx context.Context, userID uuid.UUID) (Breakdown, error) {
	positions, fired, err := s.RefreshPrices(ctx, userID)
	if err != nil {
		return Breakdown{}, err
	}
	rows, total := portfolio.Holdings(positions)
	return Breakdown{Holdings: rows, Total: total, Fired: fired}, nil
}

// Performance is the gain and return series of the held positions.
type Performance struct {
	Points    []portfolio.PerformancePoint
	TotalGain decimal.Decimal
	TotalPct  decimal.Decimal
}

// refreshSeries stores the latest daily closes of tickers. Failed tickers
// are logged and skipped.
func (s *Service) refreshSeries(ctx context.Context, tickers []string, days int) error {
	series := make([][]portfolio.PricePoint, len(tickers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, ticker := range tickers {
		g.Go(func() error {
			points, err := s.market.DailyCloses(gctx, ticker, days)
			if err != nil {
				s.logger.Warn("Series refresh failed", "ticker", ticker, "error", err)
				return nil
			}
			series[i] = points
			return nil
		})
	}
	_ = g.Wait()

	var all []portfolio.PricePoint
	for _, points := range series {
		all = append(all, points...)
	}
	if len(all) == 0 {
		return nil
	}
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[pricehistory.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Upsert(ctx, all)
	})
}

func (s *Service) history(ctx context.Context, tickers []string, since time.Time) (out []portfolio.PricePoint, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[pricehistory.Repository](uow)
		if err != nil {
			return err
		}
		out, err = repo.List(ctx, tickers, since)
		return err
	})
	return out, err
}

// Performance refreshes the daily closes of the held tickers and values
// the positions on each of the last days days.
func (s *Service) Performance(ctx context.Context, userID uuid.UUID, days int) (Performance, error) {
	if days < 1 {
		return Performance{}, domain.Invalid("dias", "must be at least 1")
	}
	log := s.logger.With("userID", userID, "days", days)
	log.Debug("Performance called")
	positions, err := s.positions(ctx, userID)
	if err != nil {
		return Performance{}, err
	}
	tickers := uniqueTickers(positions)
	if len(tickers) == 0 {
		return Performance{TotalGain: decimal.Zero, TotalPct: decimal.Zero}, nil
	}
	if err := s.refreshSeries(ctx, tickers, days); err != nil {
		log.Error("Storing price history failed", "error", err)
		return Performance{}, err
	}
	since := domain.Today().AddDate(0, 0, -days)
	closes, err := s.history(ctx, tickers, since)
	if err != nil {
		return Performance{}, err
	}
	out := Performance{
		Points:    portfolio.Performance(positions, closes, since),
		TotalGain: decimal.Zero,
		TotalPct:  decimal.Zero,
	}
	if n := len(out.Points); n > 0 {
		out.TotalGain = out.Points[n-1].Gain
		out.TotalPct = out.Points[n-1].Pct
	}
	log.Info("Performance successful", "points", len(out.Points))
	return out, nil
}

// History returns the stored snapshots of the last days days, oldest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, days int) (out []portfolio.Snapshot, err error) {
	if days < 1 {
		return nil, domain.Invalid("dias", "must be at least 1")
	}
	since := domain.Today().AddDate(0, 0, -days)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[snapshot.Repository](uow)
		if err != nil {
			return err
		}
		out, err = repo.List(ctx, userID, since)
		return err
	})
	return out, err
}

// TakeSnapshot stores today's valuation. Repeating it on the same day
// replaces the earlier snapshot.
func (s *Service) TakeSnapshot(ctx context.Context, userID uuid.UUID) (snap portfolio.Snapshot, err error) {
	positions, err := s.positions(ctx, userID)
	if err != nil {
		return portfolio.Snapshot{}, err
	}
	snap = portfolio.TakeSnapshot(positions, domain.Today())
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[snapshot.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Upsert(ctx, userID, snap)
	})
	if err != nil {
		s.logger.Error("TakeSnapshot failed", "userID", userID, "error", err)
		return portfolio.Snapshot{}, err
	}
	s.logger.Info("TakeSnapshot successful", "userID", userID, "value", snap.Value)
	return snap, nil
}

// Backfill stores a snapshot at current prices for every day from
// today-days to today and returns how many were written.
func (s *Service) Backfill(ctx context.Context, userID uuid.UUID, days int) (int, error) {
	if days < 0 {
		return 0, domain.Invalid("dias", "must not be negative")
	}
	positions, err := s.positions(ctx, userID)
	if err != nil {
		return 0, err
	}
	dates := portfolio.BackfillDays(domain.Today(), days)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Get[snapshot.Repository](uow)
		if err != nil {
			return err
		}
		for _, d := range dates {
			if err := repo.Upsert(ctx, userID, portfolio.TakeSnapshot(positions, d)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Backfill failed", "userID", userID, "error", err)
		return 0, err
	}
	s.logger.Info("Backfill successful", "userID", userID, "days", len(dates))
	return len(dates), nil
}

// ValuePoint is the market value of the held positions on one date.
type ValuePoint struct {
	Date  time.Time
	Value decimal.Decimal
}

// Dashboard is the headline view: summary, per-position gains and the
// value series from stored price history.
type Dashboard struct {
	Summary portfolio.Summary
	Gains   []portfolio.Gain
	Values  []ValuePoint
}

// Dashboard builds the dashboard from stored data without calling providers.
func (s *Service) Dashboard(ctx context.Context, userID uuid.UUID) (Dashboard, error) {
	positions, err := s.positions(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}
	d := Dashboard{
		Summary: portfolio.Summarize(positions),
		Gains:   portfolio.Gains(positions),
	}
	tickers := uniqueTickers(positions)
	if len(tickers) == 0 {
		return d, nil
	}
	closes, err := s.history(ctx, tickers, time.Time{})
	if err != nil {
		return Dashboard{}, err
	}
	for _, p := range portfolio.Performance(positions, closes, time.Time{}) {
		d.Values = append(d.Values, ValuePoint{Date: p.Date, Value: p.Value})
	}
	return d, nil
}
