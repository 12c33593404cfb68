package calendar_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	calendardomain "github.com/amirasaad/alphaquantum/pkg/domain/calendar"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CalendarTestSuite struct {
	testutils.E2ETestSuite
	user *testutils.TestUser
}

func TestCalendarTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarTestSuite))
}

func (s *CalendarTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
}

func (s *CalendarTestSuite) events(query string) []*calendardomain.Event {
	resp := s.MakeRequest(http.MethodGet, "/api/eventos"+query, "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out []*calendardomain.Event
	s.Decode(resp, &out)
	return out
}

func (s *CalendarTestSuite) seedAAPL() {
	today := domain.Today()
	s.Market.SetEarnings("AAPL",
		provider.Earning{ReportedDate: today.AddDate(0, 0, -10), ReportedEPS: "1.53", EstimatedEPS: "1.50"},
		provider.Earning{ReportedDate: today.AddDate(0, 0, -200), ReportedEPS: "1.20", EstimatedEPS: "1.25"},
	)
	s.Market.SetDividends("AAPL", provider.DividendPayment{PaymentDate: today.AddDate(0, 0, -40), Amount: "0.24"})
	resp := s.MakeRequest(http.MethodPost, "/acciones",
		`{"ticker":"AAPL","cantidad":"1","precio_compra":"100"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *CalendarTestSuite) TestImportOnPositionOpened() {
	s.seedAAPL()
	all := s.events("")
	s.Len(all, 3)

	// refreshing again must not duplicate imported events
	s.Len(s.events(""), 3)

	var descriptions []string
	for _, e := range all {
		descriptions = append(descriptions, e.Description)
	}
	s.Contains(descriptions, calendardomain.EarningsDescription("1.53", "1.50"))
	s.Contains(descriptions, calendardomain.DividendDescription("0.24"))
}

func (s *CalendarTestSuite) TestImportOnLedgerOpenedPosition() {
	s.Market.SetEarnings("NVDA",
		provider.Earning{ReportedDate: domain.Today().AddDate(0, 0, -5), ReportedEPS: "0.80", EstimatedEPS: "0.75"},
	)
	resp := s.MakeRequest(http.MethodPost, "/transacciones",
		`{"ticker":"nvda","tipo":"compra","cantidad":"2","precio":"500","fecha":"2024-01-02"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	// stored before any calendar listing runs its own import
	var types []string
	s.Require().NoError(s.DB.Table("financial_events").
		Where("user_id = ? AND ticker = ?", s.user.ID, "NVDA").
		Order("type").Pluck("type", &types).Error)
	s.Equal([]string{"compra", "resultado"}, types)
}

func (s *CalendarTestSuite) TestFilters() {
	s.seedAAPL()
	tests := []struct {
		query string
		want  int
	}{
		{"?tipo=todos", 3},
		{"?tipo=resultado", 2},
		{"?tipo=dividendo", 1},
		{"?tiempo=30_dias", 1},
		{"?tiempo=3_meses", 2},
		{"?tiempo=1_ano", 3},
		{"?tiempo=siempre", 3},
		{"?ticker=aa", 3},
		{"?ticker=MSFT", 0},
		{"?tipo=resultado&tiempo=3_meses", 1},
	}
	for _, tc := range tests {
		s.Run(tc.query, func() {
			s.Len(s.events(tc.query), tc.want)
		})
	}
}

func (s *CalendarTestSuite) TestRefreshIncludesWatchlist() {
	s.Market.SetEarnings("TSLA", provider.Earning{ReportedDate: domain.Today(), ReportedEPS: "0.7", EstimatedEPS: "0.6"})
	resp := s.MakeRequest(http.MethodPost, "/watchlist/items", `{"ticker":"TSLA"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	_ = resp.Body.Close()

	got := s.events("")
	s.Require().Len(got, 1)
	s.Equal("TSLA", got[0].Ticker)
}

func (s *CalendarTestSuite) TestManualEventLifecycle() {
	body := `{"ticker":"msft","tipo_evento":"venta","fecha":"2024-05-02","descripcion":"Venta parcial","hora":"09:30"}`
	resp := s.MakeRequest(http.MethodPost, "/api/eventos", body, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var e calendardomain.Event
	s.Decode(resp, &e)
	s.Equal("MSFT", e.Ticker)
	s.Equal(calendardomain.Sale, e.Type)
	s.Require().NotNil(e.Time)
	s.Equal("09:30", *e.Time)

	all := s.events("?tipo=venta")
	s.Require().Len(all, 1)

	for range 2 {
		resp = s.MakeRequest(http.MethodDelete, "/api/eventos/"+e.ID.String(), "", s.user.Token)
		s.Equal(fiber.StatusNoContent, resp.StatusCode)
		_ = resp.Body.Close()
	}
	s.Empty(s.events(""))

	resp = s.MakeRequest(http.MethodDelete, "/api/eventos/"+uuid.NewString(), "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
}

func (s *CalendarTestSuite) TestCreateValidation() {
	tests := []struct {
		name string
		body string
	}{
		{"bad type", `{"ticker":"KO","tipo_evento":"split","fecha":"2024-01-01"}`},
		{"missing date", `{"ticker":"KO","tipo_evento":"resultado"}`},
		{"bad date", `{"ticker":"KO","tipo_evento":"resultado","fecha":"01/01/2024"}`},
		{"bad time", `{"ticker":"KO","tipo_evento":"resultado","fecha":"2024-01-01","hora":"25h"}`},
		{"long ticker", fmt.Sprintf(`{"ticker":%q,"tipo_evento":"resultado","fecha":"2024-01-01"}`, "ABCDEFGHIJK")},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(http.MethodPost, "/api/eventos", tc.body, s.user.Token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
