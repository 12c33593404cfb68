package cashflow_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/webapi/cashflow"
	"github.com/amirasaad/alphaquantum/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CashflowTestSuite struct {
	testutils.E2ETestSuite
	user *testutils.TestUser
}

func TestCashflowTestSuite(t *testing.T) {
	suite.Run(t, new(CashflowTestSuite))
}

func (s *CashflowTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.user = s.CreateTestUser()
}

func (s *CashflowTestSuite) post(path, body string) uuid.UUID {
	resp := s.MakeRequest(http.MethodPost, path, body, s.user.Token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode, path)
	var out struct {
		ID uuid.UUID `json:"id"`
	}
	s.Decode(resp, &out)
	return out.ID
}

func (s *CashflowTestSuite) dashboard() cashflow.DashboardOutput {
	resp := s.MakeRequest(http.MethodGet, "/flujo-de-caja", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out cashflow.DashboardOutput
	s.Decode(resp, &out)
	return out
}

func (s *CashflowTestSuite) TestEmptyDashboard() {
	d := s.dashboard()
	s.Equal("0.00", d.TotalIncome)
	s.Equal("0.00", d.Net)
	s.NotNil(d.Records)
	s.Empty(d.Loans)
	s.Empty(d.Properties)
}

func (s *CashflowTestSuite) TestRecords() {
	s.post("/cashflow/ingresos", `{"date":"2024-01-31","amount":"1500","tipo_ingreso":"salario","description":"Nómina"}`)
	s.post("/cashflow/ingresos", `{"date":"2024-02-10","amount":"200","description":"Venta bici"}`)
	expense := s.post("/cashflow/gastos", `{"date":"2024-02-05","amount":"300","description":"Alquiler"}`)

	d := s.dashboard()
	s.Equal("1700.00", d.TotalIncome)
	s.Equal("300.00", d.TotalExpense)
	s.Equal("1400.00", d.Net)
	s.Equal(map[string]string{"salario": "1500.00", "otros": "200.00"}, d.IncomeByType)
	s.Equal([]cashflow.MonthValue{{Month: "2024-01", Value: "1500.00"}, {Month: "2024-02", Value: "-100.00"}}, d.MonthlyNet)
	s.Require().Len(d.Records, 3)
	s.Equal("2024-02-10", d.Records[0].Date.Format(domain.DateLayout))
	s.Equal(domain.DisplayEUR(decimal.NewFromInt(1700)), d.Display.TotalIncome)

	resp := s.MakeRequest(http.MethodPut, "/cashflow/registros/"+expense.String(),
		`{"date":"2024-02-05","amount":"400","description":"Alquiler febrero"}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	s.Equal("1300.00", s.dashboard().Net)

	resp = s.MakeRequest(http.MethodDelete, "/cashflow/registros/"+expense.String(), "", s.user.Token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)
	_ = resp.Body.Close()
	resp = s.MakeRequest(http.MethodDelete, "/cashflow/registros/"+expense.String(), "", s.user.Token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	_ = resp.Body.Close()
	s.Equal("0.00", s.dashboard().TotalExpense)
}

func (s *CashflowTestSuite) TestRecordValidation() {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"zero amount", "/cashflow/ingresos", `{"amount":"0","description":"x"}`},
		{"missing description", "/cashflow/gastos", `{"amount":"10"}`},
		{"income type on expense", "/cashflow/gastos", `{"amount":"10","tipo_ingreso":"salario","description":"x"}`},
		{"unknown income type", "/cashflow/ingresos", `{"amount":"10","tipo_ingreso":"loteria","description":"x"}`},
		{"bad date", "/cashflow/ingresos", `{"date":"31-01-2024","amount":"10","description":"x"}`},
	}
	for _, tc := range tests {
		s.Run(tc.name, func() {
			resp := s.MakeRequest(http.MethodPost, tc.path, tc.body, s.user.Token)
			defer resp.Body.Close() //nolint:errcheck
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *CashflowTestSuite) TestLoansPropertiesAndProjection() {
	loan := s.post("/cashflow/prestamos", `{"nombre":"Coche","monto_total":"5000","cuota_mensual":"250","meses_restantes":10}`)
	property := s.post("/cashflow/propiedades",
		`{"nombre":"Piso","ingreso_mensual":"900","hipoteca_mensual":"400","gastos_mantenimiento":"50","meses_restantes_hipoteca":1}`)

	d := s.dashboard()
	s.Equal("2500.00", d.LoanBalance)
	s.Equal("0.00", d.LoanPaid)
	s.Equal("250.00", d.LoanMonthly)
	s.Equal("450.00", d.RentalNet)
	s.Require().Len(d.Loans, 1)
	s.Equal("2500.00", d.Loans[0].Balance)
	s.True(d.Loans[0].Active)
	s.Require().Len(d.Properties, 1)
	s.Equal("450.00", d.Properties[0].NetProfit)

	resp := s.MakeRequest(http.MethodGet, "/cashflow/proyeccion?meses=3", "", s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var months []cashflow.ProjectionMonth
	s.Decode(resp, &months)
	s.Require().Len(months, 3)
	s.Equal([]string{"200.00", "600.00", "600.00"},
		[]string{months[0].Monthly, months[1].Monthly, months[2].Monthly})
	s.Equal("1400.00", months[2].Cumulative)
	s.Equal(domain.Today().AddDate(0, 1, 1-domain.Today().Day()).Format("2006-01"), months[0].Label)

	resp = s.MakeRequest(http.MethodPut, "/cashflow/prestamos/"+loan.String(),
		`{"nombre":"Coche","monto_total":"5000","cuota_mensual":"250","meses_restantes":10,"activo":false}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	s.Equal("0.00", s.dashboard().LoanBalance)

	resp = s.MakeRequest(http.MethodPut, "/cashflow/propiedades/"+property.String(),
		`{"nombre":"Piso","ingreso_mensual":"1000","hipoteca_mensual":"400","gastos_mantenimiento":"50"}`, s.user.Token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	s.Equal("550.00", s.dashboard().RentalNet)

	for _, path := range []string{"/cashflow/prestamos/" + loan.String(), "/cashflow/propiedades/" + property.String()} {
		resp = s.MakeRequest(http.MethodDelete, path, "", s.user.Token)
		s.Equal(fiber.StatusNoContent, resp.StatusCode)
		_ = resp.Body.Close()
	}
	d = s.dashboard()
	s.Empty(d.Loans)
	s.Empty(d.Properties)
}

func (s *CashflowTestSuite) TestOwnership() {
	loan := s.post("/cashflow/prestamos", `{"nombre":"Coche","cuota_mensual":"250","meses_restantes":10}`)
	other := s.CreateTestUser()
	resp := s.MakeRequest(http.MethodPut, "/cashflow/prestamos/"+loan.String(),
		`{"nombre":"Mío","cuota_mensual":"1","meses_restantes":1}`, other.Token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Len(s.dashboard().Loans, 1)
}

func (s *CashflowTestSuite) TestProjectionBounds() {
	for _, q := range []string{"0", "121", "abc"} {
		resp := s.MakeRequest(http.MethodGet, "/cashflow/proyeccion?meses="+q, "", s.user.Token)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, q)
		_ = resp.Body.Close()
	}
}
