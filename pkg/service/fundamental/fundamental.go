// Package fundamental fetches price series and company overviews and keeps a
// record of every analysis a user runs.
package fundamental

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/fundamental"
	"github.com/google/uuid"
)

// MaxSeriesDays caps the closing series of an analysis.
const MaxSeriesDays = 100

// Market is the market data an analysis needs.
type Market interface {
	provider.Series
	provider.Fundamentals
}

type Service struct {
	uow    repository.UnitOfWork
	market Market
	logger *slog.Logger
}

func New(uow repository.UnitOfWork, market Market, logger *slog.Logger) *Service {
	return &Service{uow: uow, market: market, logger: logger}
}

// Analyze fetches the series and overview of ticker and stores the result.
// Provider rate limits are returned as domain.ErrUpstreamRateLimited. Other
// provider failures leave that part of the report empty.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, ticker string, days int) (fundamental.Report, error) {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" {
		return fundamental.Report{}, domain.Invalid("ticker", "is required")
	}
	if days <= 0 || days > MaxSeriesDays {
		days = MaxSeriesDays
	}
	log := s.logger.With("userID", userID, "ticker", ticker, "days", days)
	log.Debug("Analyze called")

	report := fundamental.Report{Ticker: ticker, Series: fundamental.Series{Dates: []string{}, Closes: []float64{}}}
	points, err := s.market.DailyCloses(ctx, ticker, days)
	switch {
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		log.Warn("Series rate limited", "error", err)
		return fundamental.Report{}, err
	case err != nil:
		log.Warn("Series lookup failed", "error", err)
	}
	for _, p := range points {
		report.Series.Dates = append(report.Series.Dates, p.Date.Format(domain.DateLayout))
		report.Series.Closes = append(report.Series.Closes, p.Close.InexactFloat64())
	}
	report.Series = report.Series.Trim(days)

	overview, err := s.market.Overview(ctx, ticker)
	switch {
	case errors.Is(err, domain.ErrUpstreamRateLimited):
		log.Warn("Overview rate limited", "error", err)
		return fundamental.Report{}, err
	case err != nil:
		log.Warn("Overview lookup failed", "error", err)
	default:
		report.Overview = overview
	}

	if len(report.Series.Dates) == 0 && report.Overview.Name == "" {
		return fundamental.Report{}, fmt.Errorf("no market data for %s: %w", ticker, domain.ErrNotFound)
	}

	a, err := fundamental.NewAnalysis(userID, report)
	if err != nil {
		return fundamental.Report{}, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		return r.Create(ctx, a)
	})
	if err != nil {
		log.Error("Analyze failed", "error", err)
		return fundamental.Report{}, err
	}
	log.Info("Analyze successful", "points", len(report.Series.Dates))
	return report, nil
}

// List returns the user's stored analyses, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) (out []*fundamental.Analysis, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		r, err := repository.Get[repo.Repository](uow)
		if err != nil {
			return err
		}
		out, err = r.List(ctx, userID)
		return err
	})
	return out, err
}
