package analytics_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/amirasaad/alphaquantum/webapi/analytics"
	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsTestSuite struct {
	testutils.E2ETestSuite
	user *testutils.TestUser
}

func TestAnalyticsTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsTestSuite))
}

func (s *AnalyticsTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
	resp := s.MakeRequest(http.MethodPost, "/acciones",
		`{"ticker":"AAPL","cantidad":"10","precio_compra":"150","fecha":"2024-01-15"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *AnalyticsTestSuite) get(path string, out any) {
	resp := s.MakeRequest(http.MethodGet, path, "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode, path)
	s.Decode(resp, out)
}

func (s *AnalyticsTestSuite) TestSummaryBeforeAndAfterPricing() {
	var summary analytics.SummaryOutput
	s.get("/resumen", &summary)
	s.Equal("1500.00", summary.TotalInvested)
	s.Equal("0.00", summary.CurrentValue)
	s.Equal("-1500.00", summary.Return)

	s.Market.SetPrice("AAPL", "200")
	var breakdown analytics.BreakdownOutput
	s.get("/api/cartera", &breakdown)
	s.Equal("2000.00", breakdown.Total)
	s.Require().Len(breakdown.Holdings, 1)
	h := breakdown.Holdings[0]
	s.Equal("2000.00", h.Value)
	s.Equal("500.00", h.ReturnEUR)
	s.Equal("33.33", h.ReturnPct)
	s.Equal("100.00", h.Weight)

	s.get("/resumen", &summary)
	s.Equal("2000.00", summary.CurrentValue)
	s.Equal("500.00", summary.Return)
}

func (s *AnalyticsTestSuite) TestUnpricedPositionsAreSkipped() {
	var breakdown analytics.BreakdownOutput
	s.get("/api/cartera", &breakdown)
	s.Empty(breakdown.Holdings)
	s.Equal("0.00", breakdown.Total)
}

func (s *AnalyticsTestSuite) TestPerformanceAndDashboard() {
	today := domain.Today()
	s.Market.SetCloses("AAPL",
		portfolio.PricePoint{Ticker: "AAPL", Date: today.AddDate(0, 0, -2), Close: decimal.NewFromInt(190)},
		portfolio.PricePoint{Ticker: "AAPL", Date: today.AddDate(0, 0, -1), Close: decimal.NewFromInt(200)},
	)

	var perf analytics.PerformanceOutput
	s.get("/api/rentabilidad?dias=30", &perf)
	s.Equal([]string{"400.00", "500.00"}, perf.Gains)
	s.Equal([]string{"26.67", "33.33"}, perf.Returns)
	s.Equal("500.00", perf.TotalGain)
	s.Equal("33.33", perf.TotalReturn)

	resp := s.MakeRequest(http.MethodGet, "/api/rentabilidad?dias=0", "", s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	s.Market.SetPrice("AAPL", "210")
	var breakdown analytics.BreakdownOutput
	s.get("/api/cartera", &breakdown)

	var dash analytics.DashboardOutput
	s.get("/api/dashboard-data", &dash)
	s.Equal("2100.00", dash.TotalValue)
	s.Equal("600.00", dash.TotalReturn)
	s.Require().Len(dash.Gains, 1)
	s.True(dash.Gains[0].Gain.Equal(decimal.NewFromInt(600)))
	s.Equal([]string{"1900.00", "2000.00"}, dash.Values)
}

func (s *AnalyticsTestSuite) TestSnapshotsAndBackfill() {
	resp := s.MakeRequest(http.MethodPost, "/api/historico/snapshot", "", s.user.Token)
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()
	// same day again replaces the snapshot
	resp = s.MakeRequest(http.MethodPost, "/api/historico/snapshot", "", s.user.Token)
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	var history analytics.HistoryOutput
	s.get("/api/historico", &history)
	s.Len(history.Labels, 1)
	s.Equal("1500.00", history.Invested[0])

	resp = s.MakeRequest(http.MethodPost, "/api/historico/backfill?dias=3", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Snapshots int `json:"snapshots"`
	}
	s.Decode(resp, &out)
	s.Equal(4, out.Snapshots)

	s.get("/api/historico", &history)
	s.Len(history.Labels, 4)
	s.Equal(domain.Today().Format(domain.DateLayout), history.Labels[3])

	resp = s.MakeRequest(http.MethodPost, "/api/historico/backfill?dias=-1", "", s.user.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}
