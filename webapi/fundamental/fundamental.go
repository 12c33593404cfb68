// Package fundamental exposes fundamental analyses of a ticker.
package fundamental

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	fundamentaldomain "github.com/amirasaad/alphaquantum/pkg/domain/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	fundamentalsvc "github.com/amirasaad/alphaquantum/pkg/service/fundamental"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *fundamentalsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	g := app.Group("/fundamental", middleware.JwtProtected(cfg.Auth.Jwt, authSvc))
	g.Get("/", List(svc))
	g.Get("/:ticker", Analyze(svc))
}

// Analyze fetches the price series and overview of a ticker.
// @Summary Analyze ticker
// @Tags fundamental
// @Produce json
// @Param ticker path string true "Ticker"
// @Param dias query int false "Series length, at most 100" default(100)
// @Success 200 {object} common.Response{data=fundamentaldomain.Report}
// @Failure 404 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Router /fundamental/{ticker} [get]
// @Security BearerAuth
func Analyze(svc *fundamentalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		days, err := common.QueryInt(c, "dias", fundamentalsvc.MaxSeriesDays)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		r, err := svc.Analyze(c.UserContext(), userID, c.Params("ticker"), days)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Analysis failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Analysis", r)
	}
}

// List returns the stored analyses.
// @Summary Stored analyses
// @Tags fundamental
// @Produce json
// @Success 200 {object} common.Response
// @Router /fundamental [get]
// @Security BearerAuth
func List(svc *fundamentalsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		out, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list analyses", err)
		}
		if out == nil {
			out = []*fundamentaldomain.Analysis{}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Analyses", out)
	}
}
