// Package dividend exposes dividend records and the dividend report.
package dividend

import (
	"sort"

	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	dividenddomain "github.com/amirasaad/alphaquantum/pkg/domain/dividend"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	dividendsvc "github.com/amirasaad/alphaquantum/pkg/service/dividend"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// DividendInput is the request body for recording or editing a dividend.
type DividendInput struct {
	PositionID string          `json:"accion_id" validate:"omitempty,uuid"`
	Date       string          `json:"fecha" example:"2024-01-31"`
	Amount     decimal.Decimal `json:"monto" swaggertype:"string"`
	Note       string          `json:"nota" validate:"max=255"`
}

// ReportOutput is the chart-ready dividend report.
type ReportOutput struct {
	Labels    []string                   `json:"etiquetas"`
	Values    []string                   `json:"valores"`
	Total     string                     `json:"total"`
	ByTicker  map[string]string          `json:"por_ticker"`
	Dividends []*dividenddomain.Dividend `json:"dividendos"`
}

func newReport(o dividendsvc.Overview) ReportOutput {
	out := ReportOutput{
		Labels:    append([]string{}, o.Report.Months...),
		Values:    make([]string, 0, len(o.Report.Monthly)),
		Total:     domain.FormatMoney(o.Report.Total),
		ByTicker:  make(map[string]string, len(o.Report.ByTicker)),
		Dividends: o.Dividends,
	}
	if out.Dividends == nil {
		out.Dividends = []*dividenddomain.Dividend{}
	}
	for _, v := range o.Report.Monthly {
		out.Values = append(out.Values, domain.FormatMoney(v))
	}
	tickers := make([]string, 0, len(o.Report.ByTicker))
	for t := range o.Report.ByTicker {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)
	for _, t := range tickers {
		out.ByTicker[t] = domain.FormatMoney(o.Report.ByTicker[t])
	}
	return out
}

func Routes(app *fiber.App, svc *dividendsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt, authSvc)
	app.Get("/api/dividendos", protected, Report(svc))
	g := app.Group("/dividendos", protected)
	g.Post("/", Create(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

// Report returns every dividend with monthly and per-ticker totals.
// @Summary Dividend report
// @Tags dividends
// @Produce json
// @Success 200 {object} common.Response{data=ReportOutput}
// @Failure 401 {object} common.ProblemDetails
// @Router /api/dividendos [get]
// @Security BearerAuth
func Report(svc *dividendsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		o, err := svc.Overview(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build dividend report", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Dividend report", newReport(o))
	}
}

// Create records a dividend on a position.
// @Summary Record dividend
// @Tags dividends
// @Accept json
// @Produce json
// @Param request body DividendInput true "Dividend"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dividendos [post]
// @Security BearerAuth
func Create(svc *dividendsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DividendInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		positionID, err := common.OptionalUUID("accion_id", &input.PositionID)
		if err != nil || positionID == nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", domain.Invalid("accion_id", "is required"))
		}
		date, err := common.DateOrToday("fecha", input.Date)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		d, err := svc.Create(c.UserContext(), userID, *positionID, date, input.Amount, input.Note)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't record dividend", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Dividend recorded", d)
	}
}

// Update edits a dividend.
// @Summary Update dividend
// @Tags dividends
// @Accept json
// @Produce json
// @Param id path string true "Dividend ID"
// @Param request body DividendInput true "Dividend"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /dividendos/{id} [put]
// @Security BearerAuth
func Update(svc *dividendsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DividendInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid dividend ID", err)
		}
		date, err := common.DateOrToday("fecha", input.Date)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		d, err := svc.Update(c.UserContext(), userID, id, date, input.Amount, input.Note)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update dividend", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Dividend updated", d)
	}
}

// Delete removes a dividend.
// @Summary Delete dividend
// @Tags dividends
// @Param id path string true "Dividend ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /dividendos/{id} [delete]
// @Security BearerAuth
func Delete(svc *dividendsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid dividend ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete dividend", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Dividend deleted", nil)
	}
}
