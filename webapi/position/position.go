// Package position exposes the stock positions ("acciones") of a user.
package position

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	positionsvc "github.com/amirasaad/alphaquantum/pkg/service/position"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *positionsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	g := app.Group("/acciones", middleware.JwtProtected(cfg.Auth.Jwt, authSvc))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Get("/:id", Get(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

// List returns the user's positions, optionally filtered by portfolio.
// @Summary List positions
// @Tags positions
// @Produce json
// @Param cartera query string false "Portfolio ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /acciones [get]
// @Security BearerAuth
func List(svc *positionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		raw := c.Query("cartera")
		portfolioID, err := common.OptionalUUID("cartera", &raw)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid portfolio ID", err)
		}
		out, err := svc.List(c.UserContext(), userID, portfolioID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list positions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Positions fetched", out)
	}
}

// Create opens a position.
// @Summary Create position
// @Description Creating a position imports the ticker's earnings and dividend events
// @Tags positions
// @Accept json
// @Produce json
// @Param request body PositionInput true "Position"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /acciones [post]
// @Security BearerAuth
func Create(svc *positionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PositionInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		in, err := input.toInput(true)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		p, err := svc.Create(c.UserContext(), userID, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create position", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Position created", p)
	}
}

// Get returns one position.
// @Summary Get position
// @Tags positions
// @Produce json
// @Param id path string true "Position ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /acciones/{id} [get]
// @Security BearerAuth
func Get(svc *positionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid position ID", err)
		}
		p, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Position not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Position found", p)
	}
}

// Update edits a position.
// @Summary Update position
// @Tags positions
// @Accept json
// @Produce json
// @Param id path string true "Position ID"
// @Param request body PositionInput true "Position"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /acciones/{id} [put]
// @Security BearerAuth
func Update(svc *positionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PositionInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid position ID", err)
		}
		in, err := input.toInput(false)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		p, err := svc.Update(c.UserContext(), userID, id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update position", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Position updated", p)
	}
}

// Delete removes a position with its dividends and alarms.
// @Summary Delete position
// @Tags positions
// @Param id path string true "Position ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /acciones/{id} [delete]
// @Security BearerAuth
func Delete(svc *positionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid position ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete position", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Position deleted", nil)
	}
}
