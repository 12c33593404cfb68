package transaction_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type txView struct {
	ID       uuid.UUID       `json:"id"`
	Ticker   string          `json:"ticker"`
	Type     string          `json:"tipo"`
	Quantity decimal.Decimal `json:"cantidad"`
}

type positionView struct {
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"cantidad"`
	BuyPrice decimal.Decimal `json:"precio_compra"`
}

type TransactionTestSuite struct {
	testutils.E2ETestSuite
	user *testutils.TestUser
}

func TestTransactionTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionTestSuite))
}

func (s *TransactionTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
}

func (s *TransactionTestSuite) record(body string) txView {
	resp := s.MakeRequest(http.MethodPost, "/transacciones", body, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	var t txView
	s.Decode(resp, &t)
	return t
}

func (s *TransactionTestSuite) positions() []positionView {
	resp := s.MakeRequest(http.MethodGet, "/acciones", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out []positionView
	s.Decode(resp, &out)
	return out
}

func (s *TransactionTestSuite) TestLedgerRecomputesPosition() {
	s.record(`{"ticker":"aapl","tipo":"compra","cantidad":"10","precio":"100","comision":"1","fecha":"2024-01-01"}`)
	sell := s.record(`{"ticker":"AAPL","tipo":"SELL","cantidad":"4","precio":"120","comision":"1","fecha":"2024-01-03"}`)
	s.Equal("SELL", sell.Type)

	held := s.positions()
	s.Require().Len(held, 1)
	s.Equal("AAPL", held[0].Ticker)
	s.True(held[0].Quantity.Equal(decimal.NewFromInt(6)))
	s.Equal("166.8333", held[0].BuyPrice.String())

	resp := s.MakeRequest(http.MethodDelete, "/transacciones/"+sell.ID.String(), "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
	held = s.positions()
	s.Require().Len(held, 1)
	s.True(held[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func (s *TransactionTestSuite) TestSellingEverythingClosesPosition() {
	buy := s.record(`{"ticker":"MSFT","tipo":"BUY","cantidad":"2","precio":"300","fecha":"2024-02-01"}`)
	s.record(`{"ticker":"MSFT","tipo":"venta","cantidad":"2","precio":"310","fecha":"2024-02-02"}`)
	s.Empty(s.positions())

	// moving the buy to another ticker recomputes both
	resp := s.MakeRequest(http.MethodPut, "/transacciones/"+buy.ID.String(),
		`{"ticker":"NVDA","tipo":"BUY","cantidad":"2","precio":"300","fecha":"2024-02-01"}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	held := s.positions()
	s.Require().Len(held, 1)
	s.Equal("NVDA", held[0].Ticker)
}

func (s *TransactionTestSuite) TestPnLAndSharesOnDate() {
	s.record(`{"ticker":"AAPL","tipo":"BUY","cantidad":"10","precio":"100","comision":"1","fecha":"2024-01-01"}`)
	s.record(`{"ticker":"AAPL","tipo":"SELL","cantidad":"4","precio":"120","comision":"1","fecha":"2024-01-03"}`)

	resp := s.MakeRequest(http.MethodGet, "/transacciones/pnl", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var pnl struct {
		Rows []struct {
			Ticker        string `json:"ticker"`
			Amount        string `json:"importe"`
			PositionAfter string `json:"posicion_despues"`
		} `json:"transacciones"`
		Total string `json:"total"`
	}
	s.Decode(resp, &pnl)
	s.Require().Len(pnl.Rows, 2)
	s.Equal("1001.00", pnl.Rows[0].Amount)
	s.Equal("6.0000", pnl.Rows[1].PositionAfter)
	s.Equal("522.00", pnl.Total)

	resp = s.MakeRequest(http.MethodGet, "/transacciones/pnl?desde=2024-01-02", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Decode(resp, &pnl)
	s.Len(pnl.Rows, 1)
	s.Equal("-479.00", pnl.Total)

	resp = s.MakeRequest(http.MethodGet, "/transacciones/pnl?desde=2024-02-01&hasta=2024-01-01", "", s.user.Token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	_ = resp.Body.Close()

	resp = s.MakeRequest(http.MethodGet, "/transacciones/acciones-en-fecha?ticker=aapl&fecha=2024-01-02", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var shares struct {
		Ticker   string          `json:"ticker"`
		Quantity decimal.Decimal `json:"cantidad"`
	}
	s.Decode(resp, &shares)
	s.Equal("AAPL", shares.Ticker)
	s.True(shares.Quantity.Equal(decimal.NewFromInt(10)))

	resp = s.MakeRequest(http.MethodGet, "/transacciones/acciones-en-fecha", "", s.user.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *TransactionTestSuite) TestExportCSV() {
	s.record(`{"ticker":"AAPL","tipo":"BUY","cantidad":"10","precio":"100","comision":"1","fecha":"2024-01-01"}`)
	s.record(`{"ticker":"MSFT","tipo":"BUY","cantidad":"1","precio":"50","fecha":"2024-01-02"}`)

	resp := s.MakeRequest(http.MethodGet, "/transacciones/export/csv?ticker=AAPL", "", s.user.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Contains(resp.Header.Get(fiber.HeaderContentType), "text/csv")
	s.Contains(resp.Header.Get(fiber.HeaderContentDisposition), "attachment")

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	s.Require().Len(lines, 3)
	s.Equal("date,ticker,type,quantity,price,commission,amount,position_after,avg_cost_after", lines[0])
	s.True(strings.HasPrefix(lines[1], "2024-01-01,AAPL,BUY,10.0000"))
	s.True(strings.HasPrefix(lines[2], "TOTAL,"))
	s.Contains(lines[2], "1001.00")
}

func (s *TransactionTestSuite) TestRecordingEmitsCalendarEvent() {
	s.record(`{"ticker":"AAPL","tipo":"BUY","cantidad":"3","precio":"10","fecha":"2024-01-01"}`)
	s.record(`{"ticker":"AAPL","tipo":"DIV","cantidad":"1","precio":"0.5","fecha":"2024-01-05"}`)

	resp := s.MakeRequest(http.MethodGet, "/api/eventos?tipo=compra", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var events []struct {
		Type        string `json:"tipo_evento"`
		Description string `json:"descripcion"`
	}
	s.Decode(resp, &events)
	s.Require().Len(events, 1)
	s.Equal("compra", events[0].Type)
	s.Contains(events[0].Description, "Compra de 3")
}

func (s *TransactionTestSuite) TestValidation() {
	testCases := []struct {
		desc string
		body string
	}{
		{"unknown type", `{"ticker":"AAPL","tipo":"split","cantidad":"1","precio":"1"}`},
		{"zero quantity", `{"ticker":"AAPL","tipo":"BUY","cantidad":"0","precio":"1"}`},
		{"negative commission", `{"ticker":"AAPL","tipo":"BUY","cantidad":"1","precio":"1","comision":"-1"}`},
		{"missing ticker", `{"tipo":"BUY","cantidad":"1","precio":"1"}`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/transacciones", tc.body, s.user.Token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}

	resp := s.MakeRequest(http.MethodGet, "/transacciones/"+uuid.NewString(), "", s.user.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}
