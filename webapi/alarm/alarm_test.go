package alarm_test

import (
	"fmt"
	"net/http"
	"testing"

	alarmdomain "github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	"github.com/amirasaad/alphaquantum/webapi/analytics"
	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AlarmTestSuite struct {
	testutils.E2ETestSuite
	user       *testutils.TestUser
	positionID uuid.UUID
}

func TestAlarmTestSuite(t *testing.T) {
	suite.Run(t, new(AlarmTestSuite))
}

func (s *AlarmTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
	resp := s.MakeRequest(http.MethodPost, "/acciones",
		`{"ticker":"MSFT","cantidad":"2","precio_compra":"300","fecha":"2024-02-01"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var p struct {
		ID uuid.UUID `json:"id"`
	}
	s.Decode(resp, &p)
	s.positionID = p.ID
}

func (s *AlarmTestSuite) create(target string) *alarmdomain.Alarm {
	body := fmt.Sprintf(`{"accion_id":%q,"precio_objetivo":%q}`, s.positionID, target)
	resp := s.MakeRequest(http.MethodPost, "/alarmas", body, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var a alarmdomain.Alarm
	s.Decode(resp, &a)
	return &a
}

func (s *AlarmTestSuite) list(token string) []*alarmdomain.Alarm {
	resp := s.MakeRequest(http.MethodGet, "/alarmas", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out []*alarmdomain.Alarm
	s.Decode(resp, &out)
	return out
}

func (s *AlarmTestSuite) TestFiresOnPriceRefresh() {
	low := s.create("320")
	high := s.create("400")
	s.Equal("MSFT", low.Ticker)
	s.False(low.Activated)

	s.Market.SetPrice("MSFT", "350")
	resp := s.MakeRequest(http.MethodGet, "/api/cartera", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var breakdown analytics.BreakdownOutput
	s.Decode(resp, &breakdown)
	s.Require().Len(breakdown.Fired, 1)
	s.Equal(low.ID, breakdown.Fired[0].ID)

	state := map[uuid.UUID]bool{}
	for _, a := range s.list(s.user.Token) {
		state[a.ID] = a.Activated
	}
	s.True(state[low.ID])
	s.False(state[high.ID])

	// an activated alarm does not fire twice
	resp = s.MakeRequest(http.MethodGet, "/api/cartera", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Decode(resp, &breakdown)
	s.Empty(breakdown.Fired)
}

func (s *AlarmTestSuite) TestDelete() {
	a := s.create("500")
	other := s.CreateTestUser()

	resp := s.MakeRequest(http.MethodDelete, "/alarmas/"+a.ID.String(), "", other.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
	s.Len(s.list(s.user.Token), 1)

	resp = s.MakeRequest(http.MethodDelete, "/alarmas/"+a.ID.String(), "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
	s.Empty(s.list(s.user.Token))
}

func (s *AlarmTestSuite) TestValidation() {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing position", `{"precio_objetivo":"10"}`, fiber.StatusBadRequest},
		{"zero target", fmt.Sprintf(`{"accion_id":%q,"precio_objetivo":"0"}`, s.positionID), fiber.StatusBadRequest},
		{"unknown position", fmt.Sprintf(`{"accion_id":%q,"precio_objetivo":"10"}`, uuid.New()), fiber.StatusNotFound},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(http.MethodPost, "/alarmas", tc.body, s.user.Token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(tc.code, resp.StatusCode)
		})
	}
}
