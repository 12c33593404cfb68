// Package alarm exposes price alarms on positions.
package alarm

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	alarmdomain "github.com/amirasaad/alphaquantum/pkg/domain/alarm"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	alarmsvc "github.com/amirasaad/alphaquantum/pkg/service/alarm"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlarmInput is the request body for creating an alarm.
type AlarmInput struct {
	PositionID string          `json:"accion_id" validate:"required,uuid"`
	Target     decimal.Decimal `json:"precio_objetivo" swaggertype:"string"`
}

func Routes(app *fiber.App, svc *alarmsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	g := app.Group("/alarmas", middleware.JwtProtected(cfg.Auth.Jwt, authSvc))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Delete("/:id", Delete(svc))
}

// List returns the user's alarms.
// @Summary List alarms
// @Tags alarms
// @Produce json
// @Success 200 {object} common.Response
// @Router /alarmas [get]
// @Security BearerAuth
func List(svc *alarmsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		out, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list alarms", err)
		}
		if out == nil {
			out = []*alarmdomain.Alarm{}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Alarms", out)
	}
}

// Create sets a price alarm on a position.
// @Summary Create alarm
// @Tags alarms
// @Accept json
// @Produce json
// @Param request body AlarmInput true "Alarm"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /alarmas [post]
// @Security BearerAuth
func Create(svc *alarmsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AlarmInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		positionID, err := uuid.Parse(input.PositionID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid position ID", domain.Invalid("accion_id", "must be a valid UUID"))
		}
		a, err := svc.Create(c.UserContext(), userID, positionID, input.Target)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create alarm", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Alarm created", a)
	}
}

// Delete removes an alarm.
// @Summary Delete alarm
// @Tags alarms
// @Param id path string true "Alarm ID"
// @Success 204
// @Router /alarmas/{id} [delete]
// @Security BearerAuth
func Delete(svc *alarmsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid alarm ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete alarm", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Alarm deleted", nil)
	}
}
