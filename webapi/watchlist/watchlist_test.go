package watchlist_test

import (
	"fmt"
	"net/http"
	"testing"

	watchlistdomain "github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/amirasaad/alphaquantum/webapi/watchlist"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type WatchlistTestSuite struct {
	testutils.E2ETestSuite
	user *testutils.TestUser
}

func TestWatchlistTestSuite(t *testing.T) {
	suite.Run(t, new(WatchlistTestSuite))
}

func (s *WatchlistTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
}

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func (s *WatchlistTestSuite) addItem(body string) *watchlistdomain.Item {
	resp := s.MakeRequest(http.MethodPost, "/watchlist/items", body, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var it watchlistdomain.Item
	s.Decode(resp, &it)
	return &it
}

func (s *WatchlistTestSuite) views() map[string]watchlist.ListView {
	resp := s.MakeRequest(http.MethodGet, "/watchlist", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var lists []watchlist.ListView
	s.Decode(resp, &lists)
	out := make(map[string]watchlist.ListView, len(lists))
	for _, l := range lists {
		out[l.Title] = l
	}
	return out
}

func (s *WatchlistTestSuite) TestAddEnrichAndRefresh() {
	s.Market.SetMetrics("NVDA", watchlistdomain.Metrics{
		Price: dec("100"), PE: dec("30.5"), High52W: dec("120"), Low52W: dec("80"),
	})
	it := s.addItem(`{"ticker":"nvda","valor_objetivo":"110"}`)
	s.Equal("NVDA", it.Ticker)
	s.Equal("NVDA", it.Name)
	s.Require().NotNil(it.Recommendation)
	s.Equal(watchlistdomain.Review, *it.Recommendation)
	s.Equal("10", it.Upside.String())

	lists := s.views()
	def, ok := lists[watchlistdomain.DefaultListTitle]
	s.Require().True(ok)
	s.Equal(it.ListID, def.ID)
	s.Require().Len(def.Items, 1)
	s.Equal("100.00", def.Items[0].CurrentPrice)
	s.Equal("30.50", def.Items[0].PE)

	s.Market.SetPrice("NVDA", "90")
	resp := s.MakeRequest(http.MethodGet, "/api/watchlist/precios", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var items []*watchlistdomain.Item
	s.Decode(resp, &items)
	s.Require().Len(items, 1)
	s.Equal("22.22", items[0].Upside.String())
	s.Equal(watchlistdomain.Buy, *items[0].Recommendation)

	resp = s.MakeRequest(http.MethodGet, "/watchlist/data", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Decode(resp, &items)
	s.Equal("90", items[0].CurrentPrice.String())
}

func (s *WatchlistTestSuite) TestUnpricedItemView() {
	s.addItem(`{"ticker":"XYZ"}`)
	view := s.views()[watchlistdomain.DefaultListTitle]
	s.Require().Len(view.Items, 1)
	s.Equal("0.00", view.Items[0].TargetPrice)
	s.Equal("0.00", view.Items[0].Upside)
	s.Equal("N/A", view.Items[0].Recommendation)
}

func (s *WatchlistTestSuite) TestDuplicateTickerPerList() {
	s.addItem(`{"ticker":"AAPL"}`)
	resp := s.MakeRequest(http.MethodPost, "/watchlist/items", `{"ticker":"aapl"}`, s.user.Token)
	s.Equal(fiber.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(http.MethodPost, "/watchlist/listas", `{"titulo":"Tech"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var tech watchlistdomain.List
	s.Decode(resp, &tech)
	it := s.addItem(fmt.Sprintf(`{"ticker":"AAPL","lista_id":%q}`, tech.ID))
	s.Equal(tech.ID, it.ListID)
}

func (s *WatchlistTestSuite) TestListsLifecycle() {
	resp := s.MakeRequest(http.MethodPost, "/watchlist/listas", `{"titulo":"Tech","descripcion":"growth"}`, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var tech watchlistdomain.List
	s.Decode(resp, &tech)

	resp = s.MakeRequest(http.MethodPost, "/watchlist/listas", `{"titulo":"Tech"}`, s.user.Token)
	s.Equal(fiber.StatusConflict, resp.StatusCode)
	_ = resp.Body.Close()

	it := s.addItem(`{"ticker":"AMD","nombre":"Advanced Micro"}`)
	body := fmt.Sprintf(`{"ticker":"AMD","nombre":"AMD Inc","lista_id":%q,"valor_objetivo":"150"}`, tech.ID)
	resp = s.MakeRequest(http.MethodPut, "/watchlist/items/"+it.ID.String(), body, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var moved watchlistdomain.Item
	s.Decode(resp, &moved)
	s.Equal(tech.ID, moved.ListID)
	s.Equal("AMD Inc", moved.Name)
	s.Equal("150", moved.TargetPrice.String())

	lists := s.views()
	s.Len(lists["Tech"].Items, 1)
	s.Empty(lists[watchlistdomain.DefaultListTitle].Items)

	resp = s.MakeRequest(http.MethodDelete, "/watchlist/listas/"+tech.ID.String(), "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
	s.NotContains(s.views(), "Tech")

	resp = s.MakeRequest(http.MethodGet, "/watchlist/data", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var items []*watchlistdomain.Item
	s.Decode(resp, &items)
	s.Empty(items)
}

func (s *WatchlistTestSuite) TestDeleteItem() {
	it := s.addItem(`{"ticker":"KO"}`)
	other := s.CreateTestUser()
	resp := s.MakeRequest(http.MethodDelete, "/watchlist/items/"+it.ID.String(), "", other.Token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(http.MethodDelete, "/watchlist/items/"+it.ID.String(), "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(http.MethodPut, "/watchlist/items/"+uuid.NewString(), `{"ticker":"KO"}`, s.user.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *WatchlistTestSuite) TestValidation() {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"empty title", "/watchlist/listas", `{"titulo":""}`},
		{"missing ticker", "/watchlist/items", `{"nombre":"x"}`},
		{"negative target", "/watchlist/items", `{"ticker":"KO","valor_objetivo":"-1"}`},
		{"bad list id", "/watchlist/items", `{"ticker":"KO","lista_id":"nope"}`},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(http.MethodPost, tc.path, tc.body, s.user.Token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}
