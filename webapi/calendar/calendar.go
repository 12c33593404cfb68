// Package calendar exposes the financial events calendar.
package calendar

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	calendardomain "github.com/amirasaad/alphaquantum/pkg/domain/calendar"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	calendarsvc "github.com/amirasaad/alphaquantum/pkg/service/calendar"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// EventInput is the request body for a manual event.
type EventInput struct {
	Ticker      string  `json:"ticker" validate:"required,max=10"`
	Type        string  `json:"tipo_evento" validate:"required" example:"resultado"`
	Date        string  `json:"fecha" validate:"required" example:"2024-01-31"`
	Description string  `json:"descripcion" validate:"max=255"`
	Time        *string `json:"hora" example:"16:30"`
}

func Routes(app *fiber.App, svc *calendarsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	g := app.Group("/api/eventos", middleware.JwtProtected(cfg.Auth.Jwt, authSvc))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Delete("/:id", Delete(svc))
}

// List imports events for the user's tickers and returns the filtered calendar.
// @Summary Financial calendar
// @Tags calendar
// @Produce json
// @Param tipo query string false "Event type or todos"
// @Param ticker query string false "Ticker substring"
// @Param tiempo query string false "30_dias, 3_meses, 6_meses or 1_ano"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /api/eventos [get]
// @Security BearerAuth
func List(svc *calendarsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		all, err := svc.Refresh(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to refresh events", err)
		}
		f := calendardomain.Filter{
			Type:   c.Query("tipo"),
			Ticker: c.Query("ticker"),
			Window: calendardomain.Window(c.Query("tiempo")),
		}
		today := domain.Today()
		out := make([]*calendardomain.Event, 0, len(all))
		for _, e := range all {
			if f.Match(e, today) {
				out = append(out, e)
			}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Events", out)
	}
}

// Create stores a manual event.
// @Summary Create event
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body EventInput true "Event"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /api/eventos [post]
// @Security BearerAuth
func Create(svc *calendarsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[EventInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		typ, err := calendardomain.ParseType(input.Type)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		date, err := common.DateOrToday("fecha", input.Date)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		at := input.Time
		if at != nil && *at == "" {
			at = nil
		}
		e, err := svc.Create(c.UserContext(), userID, input.Ticker, typ, date, input.Description, at)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create event", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Event created", e)
	}
}

// Delete removes an event. Unknown IDs succeed.
// @Summary Delete event
// @Tags calendar
// @Param id path string true "Event ID"
// @Success 204
// @Failure 400 {object} common.ProblemDetails
// @Router /api/eventos/{id} [delete]
// @Security BearerAuth
func Delete(svc *calendarsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid event ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete event", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Event deleted", nil)
	}
}
