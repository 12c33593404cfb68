// Package cashflow exposes income and expense records, loans, rental
// properties and the cash-flow dashboard and projection.
package cashflow

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	cashflowdomain "github.com/amirasaad/alphaquantum/pkg/domain/cashflow"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	cashflowsvc "github.com/amirasaad/alphaquantum/pkg/service/cashflow"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *cashflowsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt, authSvc)
	app.Get("/flujo-de-caja", protected, Dashboard(svc))
	g := app.Group("/cashflow", protected)
	g.Get("/proyeccion", Projection(svc))
	g.Post("/ingresos", CreateRecord(svc, cashflowdomain.Income))
	g.Post("/gastos", CreateRecord(svc, cashflowdomain.Expense))
	g.Put("/registros/:id", UpdateRecord(svc))
	g.Delete("/registros/:id", DeleteRecord(svc))
	g.Post("/prestamos", CreateLoan(svc))
	g.Put("/prestamos/:id", UpdateLoan(svc))
	g.Delete("/prestamos/:id", DeleteLoan(svc))
	g.Post("/propiedades", CreateProperty(svc))
	g.Put("/propiedades/:id", UpdateProperty(svc))
	g.Delete("/propiedades/:id", DeleteProperty(svc))
}

// Dashboard returns totals, series, loans and properties.
// @Summary Cash-flow dashboard
// @Tags cashflow
// @Produce json
// @Success 200 {object} common.Response{data=DashboardOutput}
// @Failure 401 {object} common.ProblemDetails
// @Router /flujo-de-caja [get]
// @Security BearerAuth
func Dashboard(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		d, err := svc.Dashboard(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build cash-flow dashboard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Cash flow", newDashboard(d, domain.Today()))
	}
}

// Projection rolls rental income and loan payments forward.
// @Summary Cash-flow projection
// @Tags cashflow
// @Produce json
// @Param meses query int false "Months (1..120)" default(12)
// @Success 200 {object} common.Response{data=[]ProjectionMonth}
// @Failure 400 {object} common.ProblemDetails
// @Router /cashflow/proyeccion [get]
// @Security BearerAuth
func Projection(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		months, err := common.QueryInt(c, "meses", 12)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		points, err := svc.Projection(c.UserContext(), userID, months)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to project cash flow", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Projection", newProjection(points))
	}
}

// CreateRecord stores an income or expense record.
// @Summary Record income or expense
// @Tags cashflow
// @Accept json
// @Produce json
// @Param request body RecordInput true "Record"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /cashflow/ingresos [post]
// @Router /cashflow/gastos [post]
// @Security BearerAuth
func CreateRecord(svc *cashflowsvc.Service, category cashflowdomain.Category) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RecordInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		in, err := input.toInput()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		r, err := svc.CreateRecord(c.UserContext(), userID, category, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't store record", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Record stored", r)
	}
}

// UpdateRecord edits a record. The category cannot change.
// @Summary Update record
// @Tags cashflow
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param request body RecordInput true "Record"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /cashflow/registros/{id} [put]
// @Security BearerAuth
func UpdateRecord(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RecordInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid record ID", err)
		}
		in, err := input.toInput()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		r, err := svc.UpdateRecord(c.UserContext(), userID, id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update record", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Record updated", r)
	}
}

// DeleteRecord removes a record.
// @Summary Delete record
// @Tags cashflow
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /cashflow/registros/{id} [delete]
// @Security BearerAuth
func DeleteRecord(svc *cashflowsvc.Service) fiber.Handler {
	return deleteHandler("Invalid record ID", "Couldn't delete record", "Record deleted", svc.DeleteRecord)
}

// CreateLoan stores a loan.
// @Summary Create loan
// @Tags cashflow
// @Accept json
// @Produce json
// @Param request body LoanInput true "Loan"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /cashflow/prestamos [post]
// @Security BearerAuth
func CreateLoan(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoanInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		l, err := input.toLoan()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		out, err := svc.CreateLoan(c.UserContext(), userID, l)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create loan", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Loan created", out)
	}
}

// UpdateLoan edits a loan.
// @Summary Update loan
// @Tags cashflow
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param request body LoanInput true "Loan"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /cashflow/prestamos/{id} [put]
// @Security BearerAuth
func UpdateLoan(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoanInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid loan ID", err)
		}
		l, err := input.toLoan()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		out, err := svc.UpdateLoan(c.UserContext(), userID, id, l)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update loan", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Loan updated", out)
	}
}

// DeleteLoan removes a loan.
// @Summary Delete loan
// @Tags cashflow
// @Param id path string true "Loan ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /cashflow/prestamos/{id} [delete]
// @Security BearerAuth
func DeleteLoan(svc *cashflowsvc.Service) fiber.Handler {
	return deleteHandler("Invalid loan ID", "Couldn't delete loan", "Loan deleted", svc.DeleteLoan)
}

// CreateProperty stores a rental property.
// @Summary Create property
// @Tags cashflow
// @Accept json
// @Produce json
// @Param request body PropertyInput true "Property"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /cashflow/propiedades [post]
// @Security BearerAuth
func CreateProperty(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PropertyInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		out, err := svc.CreateProperty(c.UserContext(), userID, input.toProperty())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create property", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Property created", out)
	}
}

// UpdateProperty edits a rental property.
// @Summary Update property
// @Tags cashflow
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body PropertyInput true "Property"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /cashflow/propiedades/{id} [put]
// @Security BearerAuth
func UpdateProperty(svc *cashflowsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PropertyInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid property ID", err)
		}
		out, err := svc.UpdateProperty(c.UserContext(), userID, id, input.toProperty())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update property", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Property updated", out)
	}
}

// DeleteProperty removes a rental property.
// @Summary Delete property
// @Tags cashflow
// @Param id path string true "Property ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /cashflow/propiedades/{id} [delete]
// @Security BearerAuth
func DeleteProperty(svc *cashflowsvc.Service) fiber.Handler {
	return deleteHandler("Invalid property ID", "Couldn't delete property", "Property deleted", svc.DeleteProperty)
}
