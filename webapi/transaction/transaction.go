// Package transaction exposes the BUY / SELL / DIV ledger ("transacciones").
package transaction

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	txsvc "github.com/amirasaad/alphaquantum/pkg/service/transaction"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *txsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	g := app.Group("/transacciones", middleware.JwtProtected(cfg.Auth.Jwt, authSvc))
	g.Get("/", List(svc))
	g.Post("/", Create(svc))
	g.Get("/pnl", PnL(svc))
	g.Get("/export/csv", ExportCSV(svc))
	g.Get("/acciones-en-fecha", SharesOnDate(svc))
	g.Get("/:id", Get(svc))
	g.Put("/:id", Update(svc))
	g.Delete("/:id", Delete(svc))
}

// List returns the ledger, newest first.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /transacciones [get]
// @Security BearerAuth
func List(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		out, err := svc.List(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", out)
	}
}

// Create records a ledger entry and recomputes the position.
// @Summary Record transaction
// @Description Tipo accepts BUY, SELL or DIV and their Spanish names
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransactionInput true "Transaction"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /transacciones [post]
// @Security BearerAuth
func Create(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionInput](c)
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
		t, err := svc.Create(c.UserContext(), userID, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't record transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction recorded", t)
	}
}

// Get returns one ledger entry.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /transacciones/{id} [get]
// @Security BearerAuth
func Get(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err)
		}
		t, err := svc.Get(c.UserContext(), userID, id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transaction not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction found", t)
	}
}

// Update edits a ledger entry and recomputes the affected positions.
// @Summary Update transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body TransactionInput true "Transaction"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /transacciones/{id} [put]
// @Security BearerAuth
func Update(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransactionInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err)
		}
		in, err := input.toInput()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		t, err := svc.Update(c.UserContext(), userID, id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", t)
	}
}

// Delete removes a ledger entry and recomputes its position.
// @Summary Delete transaction
// @Tags transactions
// @Param id path string true "Transaction ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /transacciones/{id} [delete]
// @Security BearerAuth
func Delete(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err)
		}
		if err := svc.Delete(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Transaction deleted", nil)
	}
}

// PnL returns the running P&L report.
// @Summary P&L report
// @Tags transactions
// @Produce json
// @Param ticker query string false "Ticker"
// @Param desde query string false "From (YYYY-MM-DD)"
// @Param hasta query string false "To (YYYY-MM-DD)"
// @Success 200 {object} common.Response{data=PnLOutput}
// @Failure 400 {object} common.ProblemDetails
// @Router /transacciones/pnl [get]
// @Security BearerAuth
func PnL(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		rows, total, err := svc.PnL(c.UserContext(), userID, f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to build report", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "P&L report", newPnLOutput(rows, total))
	}
}

// ExportCSV downloads the P&L report as CSV.
// @Summary Export P&L as CSV
// @Tags transactions
// @Produce text/csv
// @Param ticker query string false "Ticker"
// @Param desde query string false "From (YYYY-MM-DD)"
// @Param hasta query string false "To (YYYY-MM-DD)"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} common.ProblemDetails
// @Router /transacciones/export/csv [get]
// @Security BearerAuth
func ExportCSV(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		f, err := filter(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		body, err := svc.ExportCSV(c.UserContext(), userID, f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to export transactions", err)
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Attachment(exportName(domain.Today()))
		return c.Send(body)
	}
}

// SharesOnDate returns how many shares of a ticker were held at the end of a date.
// @Summary Shares held on a date
// @Tags transactions
// @Produce json
// @Param ticker query string true "Ticker"
// @Param fecha query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} common.Response{data=SharesOutput}
// @Failure 400 {object} common.ProblemDetails
// @Router /transacciones/acciones-en-fecha [get]
// @Security BearerAuth
func SharesOnDate(svc *txsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		ticker := domain.NormalizeTicker(c.Query("ticker"))
		if ticker == "" {
			return common.ProblemDetailsJSON(c, "Invalid query", domain.Invalid("ticker", "is required"))
		}
		date, err := common.DateOrToday("fecha", c.Query("fecha"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid query", err)
		}
		qty, err := svc.SharesOnDate(c.UserContext(), userID, ticker, date)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to count shares", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Shares on date", SharesOutput{
			Ticker:   ticker,
			Date:     date.Format(domain.DateLayout),
			Quantity: qty,
		})
	}
}
