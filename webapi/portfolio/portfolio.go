// Package portfolio exposes the named portfolios ("carteras") of a user.
package portfolio

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	portfoliosvc "github.com/amirasaad/alphaquantum/pkg/service/portfolio"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// PortfolioInput is the request body for creating a portfolio.
type PortfolioInput struct {
	Name string `json:"nombre" validate:"required,max=100"`
}

func Routes(app *fiber.App, svc *portfoliosvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	g := app.Group("/carteras", middleware.JwtProtected(cfg.Auth.Jwt, authSvc))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Delete("/:id", Delete(svc))
}

// List returns the user's portfolios.
// @Summary List portfolios
// @Tags portfolios
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /carteras [get]
// @Security BearerAuth
func List(svc *portfoliosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		out, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list portfolios", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Portfolios fetched", out)
	}
}

// Create adds a named portfolio.
// @Summary Create portfolio
// @Tags portfolios
// @Accept json
// @Produce json
// @Param request body PortfolioInput true "Portfolio"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /carteras [post]
// @Security BearerAuth
func Create(svc *portfoliosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PortfolioInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		p, err := svc.Create(c.UserContext(), userID, input.Name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create portfolio", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Portfolio created", p)
	}
}

// Delete removes a portfolio and its positions.
// @Summary Delete portfolio
// @Tags portfolios
// @Param id path string true "Portfolio ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /carteras/{id} [delete]
// @Security BearerAuth
func Delete(svc *portfoliosvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid portfolio ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete portfolio", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Portfolio deleted", nil)
	}
}
