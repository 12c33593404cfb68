package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirasaad/alphaquantum/internal/fixtures"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/amirasaad/alphaquantum/pkg/repository/pricehistory"
	alarmsvc "github.com/amirasaad/alphaquantum/pkg/service/alarm"
	"github.com/amirasaad/alphaquantum/pkg/service/analytics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var today = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	uow     repository.UnitOfWork
	market  *fixtures.MockMarketData
	svc     *analytics.Service
	alarms  *alarmsvc.Service
	userID  uuid.UUID
	aapl    *portfolio.Position
	msft    *portfolio.Position
	restore func() time.Time
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.restore = domain.Today
	domain.Today = func() time.Time { return today }

	s.ctx = context.Background()
	s.uow, _ = fixtures.NewUoW(s.T())
	s.market = &fixtures.MockMarketData{}
	s.svc = analytics.New(s.uow, s.market, 2, fixtures.Logger())
	s.alarms = alarmsvc.New(s.uow, fixtures.Logger())
	s.userID = fixtures.CreateUser(s.T(), s.uow, "ana")

	s.aapl = s.position("AAPL", "10", "100")
	s.msft = s.position("MSFT", "5", "200")
}

func (s *AnalyticsServiceTestSuite) TearDownTest() {
	domain.Today = s.restore
}

func (s *AnalyticsServiceTestSuite) position(ticker, qty, price string) *portfolio.Position {
	p, err := portfolio.NewPosition(s.userID, nil, "", ticker,
		decimal.RequireFromString(qty), decimal.RequireFromString(price), today.AddDate(0, -1, 0))
	s.Require().NoError(err)
	repo, err := repository.Get[position.Repository](s.uow)
	s.Require().NoError(err)
	s.Require().NoError(repo.Create(s.ctx, p))
	return p
}

func (s *AnalyticsServiceTestSuite) TestSummaryUsesStoredPrices() {
	sum, err := s.svc.Summary(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("2000", sum.TotalInvested.String())
	s.Equal("0", sum.CurrentValue.String())
	s.Equal("-2000", sum.Return.String())
	s.market.AssertNotCalled(s.T(), "CurrentPrice", mock.Anything, mock.Anything)
}

func (s *AnalyticsServiceTestSuite) TestBreakdownRefreshesAndFiresAlarms() {
	hit, err := s.alarms.Create(s.ctx, s.userID, s.aapl.ID, decimal.NewFromInt(110))
	s.Require().NoError(err)
	_, err = s.alarms.Create(s.ctx, s.userID, s.aapl.ID, decimal.NewFromInt(150))
	s.Require().NoError(err)

	s.market.On("CurrentPrice", mock.Anything, "AAPL").Return(fixtures.Price("120"), nil)
	s.market.On("CurrentPrice", mock.Anything, "MSFT").Return(nil, provider.ErrNoData)

	b, err := s.svc.Breakdown(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Require().Len(b.Holdings, 1)
	h := b.Holdings[0]
	s.Equal("AAPL", h.Position.Ticker)
	s.Equal("1200", h.Value.String())
	s.Equal("200", h.ReturnEUR.String())
	s.Equal("20", h.ReturnPct.String())
	s.Equal("100", h.Weight.String())
	s.Equal("1200", b.Total.String())

	s.Require().Len(b.Fired, 1)
	s.Equal(hit.ID, b.Fired[0].ID)

	alarms, err := s.alarms.List(s.ctx, s.userID)
	s.Require().NoError(err)
	active := 0
	for _, a := range alarms {
		if a.Activated {
			active++
		}
	}
	s.Equal(1, active)

	sum, err := s.svc.Summary(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("1200", sum.CurrentValue.String())

	// A second refresh does not fire the same alarm again.
	b, err = s.svc.Breakdown(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Empty(b.Fired)
}

func (s *AnalyticsServiceTestSuite) TestPerformance() {
	day := func(n int) time.Time { return today.AddDate(0, 0, -n) }
	s.market.On("DailyCloses", mock.Anything, "AAPL", 30).Return([]portfolio.PricePoint{
		{Ticker: "AAPL", Date: day(2), Close: decimal.NewFromInt(110)},
		{Ticker: "AAPL", Date: day(1), Close: decimal.NewFromInt(90)},
	}, nil)
	s.market.On("DailyCloses", mock.Anything, "MSFT", 30).Return(nil, errors.New("boom"))

	perf, err := s.svc.Performance(s.ctx, s.userID, 30)
	s.Require().NoError(err)
	s.Require().Len(perf.Points, 2)
	s.Equal("1100", perf.Points[0].Value.String())
	s.Equal("100", perf.Points[0].Gain.String())
	s.Equal("10", perf.Points[0].Pct.String())
	s.Equal("-100", perf.TotalGain.String())
	s.Equal("-10", perf.TotalPct.String())

	history, err := repository.Get[pricehistory.Repository](s.uow)
	s.Require().NoError(err)
	stored, err := history.List(s.ctx, []string{"AAPL"}, time.Time{})
	s.Require().NoError(err)
	s.Len(stored, 2)

	_, err = s.svc.Performance(s.ctx, s.userID, 0)
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *AnalyticsServiceTestSuite) TestSnapshotsAndBackfill() {
	price := decimal.NewFromInt(150)
	s.aapl.CurrentPrice = &price
	repo, err := repository.Get[position.Repository](s.uow)
	s.Require().NoError(err)
	s.Require().NoError(repo.Update(s.ctx, s.aapl))

	snap, err := s.svc.TakeSnapshot(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal(today, snap.Date)
	s.Equal("1500", snap.Value.String())

	_, err = s.svc.TakeSnapshot(s.ctx, s.userID)
	s.Require().NoError(err)
	history, err := s.svc.History(s.ctx, s.userID, 30)
	s.Require().NoError(err)
	s.Len(history, 1)

	n, err := s.svc.Backfill(s.ctx, s.userID, 3)
	s.Require().NoError(err)
	s.Equal(4, n)
	history, err = s.svc.History(s.ctx, s.userID, 30)
	s.Require().NoError(err)
	s.Require().Len(history, 4)
	s.Equal(today.AddDate(0, 0, -3), history[0].Date)
	s.Equal(today, history[3].Date)

	_, err = s.svc.Backfill(s.ctx, s.userID, -1)
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *AnalyticsServiceTestSuite) TestDashboard() {
	history, err := repository.Get[pricehistory.Repository](s.uow)
	s.Require().NoError(err)
	s.Require().NoError(history.Upsert(s.ctx, []portfolio.PricePoint{
		{Ticker: "AAPL", Date: today.AddDate(0, 0, -1), Close: decimal.NewFromInt(100)},
		{Ticker: "MSFT", Date: today.AddDate(0, 0, -1), Close: decimal.NewFromInt(210)},
	}))

	d, err := s.svc.Dashboard(s.ctx, s.userID)
	s.Require().NoError(err)
	s.Equal("2000", d.Summary.TotalInvested.String())
	s.Empty(d.Gains)
	s.Require().Len(d.Values, 1)
	s.Equal("2050", d.Values[0].Value.String())
	s.market.AssertExpectations(s.T())
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
