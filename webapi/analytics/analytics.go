// Package analytics exposes the portfolio views: summary, priced breakdown,
// return series, stored history and the dashboard.
package analytics

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	analyticssvc "github.com/amirasaad/alphaquantum/pkg/service/analytics"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

const defaultDays = 365

func Routes(app *fiber.App, svc *analyticssvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt, authSvc)
	app.Get("/resumen", protected, Summary(svc))
	api := app.Group("/api", protected)
	api.Get("/cartera", Breakdown(svc))
	api.Get("/rentabilidad", Performance(svc))
	api.Get("/historico", History(svc))
	api.Post("/historico/snapshot", Snapshot(svc))
	api.Post("/historico/backfill", Backfill(svc))
	api.Get("/dashboard-data", Dashboard(svc))
}

// Summary returns invested, current value and return from stored prices.
// @Summary Portfolio summary
// @Tags analytics
// @Produce json
// @Success 200 {object} common.Response{data=SummaryOutput}
// @Failure 401 {object} common.ProblemDetails
// @Router /resumen [get]
// @Security BearerAuth
func Summary(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		s, err := svc.Summary(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build summary", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Summary", newSummary(s))
	}
}

// Breakdown refreshes prices and returns every priced position.
// @Summary Priced portfolio
// @Description Refreshes quotes, fires alarms and values each position
// @Tags analytics
// @Produce json
// @Success 200 {object} common.Response{data=BreakdownOutput}
// @Failure 401 {object} common.ProblemDetails
// @Router /api/cartera [get]
// @Security BearerAuth
func Breakdown(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		b, err := svc.Breakdown(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to price portfolio", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Portfolio", newBreakdown(b))
	}
}

// Performance returns the gain and return series.
// @Summary Return series
// @Tags analytics
// @Produce json
// @Param dias query int false "Look-back days" default(365)
// @Success 200 {object} common.Response{data=PerformanceOutput}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/rentabilidad [get]
// @Security BearerAuth
func Performance(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		days, err := common.QueryInt(c, "dias", defaultDays)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		p, err := svc.Performance(c.UserContext(), userID, days)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build return series", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Performance", newPerformance(p))
	}
}

// History returns stored snapshots.
// @Summary Snapshot history
// @Tags analytics
// @Produce json
// @Param dias query int false "Look-back days" default(365)
// @Success 200 {object} common.Response{data=HistoryOutput}
// @Failure 400 {object} common.ProblemDetails
// @Router /api/historico [get]
// @Security BearerAuth
func History(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		days, err := common.QueryInt(c, "dias", defaultDays)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		snaps, err := svc.History(c.UserContext(), userID, days)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load history", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "History", newHistory(snaps))
	}
}

// Snapshot stores today's valuation.
// @Summary Take snapshot
// @Tags analytics
// @Produce json
// @Success 201 {object} common.Response
// @Router /api/historico/snapshot [post]
// @Security BearerAuth
func Snapshot(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		snap, err := svc.TakeSnapshot(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to take snapshot", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Snapshot stored", snap)
	}
}

// Backfill stores a snapshot per day for the last dias days.
// @Summary Backfill history
// @Tags analytics
// @Produce json
// @Param dias query int false "Days to backfill" default(90)
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /api/historico/backfill [post]
// @Security BearerAuth
func Backfill(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		days, err := common.QueryInt(c, "dias", 90)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		n, err := svc.Backfill(c.UserContext(), userID, days)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to backfill history", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "History backfilled", fiber.Map{"snapshots": n})
	}
}

// Dashboard returns the headline totals, per-position gains and value series.
// @Summary Dashboard data
// @Tags analytics
// @Produce json
// @Success 200 {object} common.Response{data=DashboardOutput}
// @Router /api/dashboard-data [get]
// @Security BearerAuth
func Dashboard(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		d, err := svc.Dashboard(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build dashboard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Dashboard", newDashboard(d))
	}
}
