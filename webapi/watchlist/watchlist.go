// Package watchlist exposes watchlists and their tracked tickers.
package watchlist

import (
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/middleware"
	authsvc "github.com/amirasaad/alphaquantum/pkg/service/auth"
	watchlistsvc "github.com/amirasaad/alphaquantum/pkg/service/watchlist"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app *fiber.App, svc *watchlistsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	protected := middleware.JwtProtected(cfg.Auth.Jwt, authSvc)
	app.Get("/api/watchlist/precios", protected, RefreshPrices(svc))
	g := app.Group("/watchlist", protected)
	g.Get("/", Lists(svc))
	g.Get("/data", Data(svc))
	g.Post("/listas", CreateList(svc))
	g.Delete("/listas/:id", DeleteList(svc))
	g.Post("/items", AddItem(svc))
	g.Put("/items/:id", UpdateItem(svc))
	g.Delete("/items/:id", DeleteItem(svc))
}

// Lists returns every list with its items for display.
// @Summary Watchlists
// @Tags watchlist
// @Produce json
// @Success 200 {object} common.Response{data=[]ListView}
// @Failure 401 {object} common.ProblemDetails
// @Router /watchlist [get]
// @Security BearerAuth
func Lists(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		lists, err := svc.Lists(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load watchlists", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Watchlists", newListViews(lists))
	}
}

// Data returns the flat item data including the signal.
// @Summary Watchlist data
// @Tags watchlist
// @Produce json
// @Success 200 {object} common.Response
// @Router /watchlist/data [get]
// @Security BearerAuth
func Data(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		items, err := svc.Items(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to load watchlist items", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Watchlist items", ensureItems(items))
	}
}

// RefreshPrices re-quotes every item and recomputes the signal.
// @Summary Refresh watchlist prices
// @Tags watchlist
// @Produce json
// @Success 200 {object} common.Response
// @Router /api/watchlist/precios [get]
// @Security BearerAuth
func RefreshPrices(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		items, err := svc.RefreshPrices(c.UserContext(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to refresh prices", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Prices refreshed", ensureItems(items))
	}
}

// CreateList adds a named list.
// @Summary Create watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param request body ListInput true "List"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /watchlist/listas [post]
// @Security BearerAuth
func CreateList(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ListInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		l, err := svc.CreateList(c.UserContext(), userID, input.Title, input.Description)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create watchlist", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Watchlist created", l)
	}
}

// DeleteList removes a list and its items.
// @Summary Delete watchlist
// @Tags watchlist
// @Param id path string true "List ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /watchlist/listas/{id} [delete]
// @Security BearerAuth
func DeleteList(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid list ID", err)
		}
		if err := svc.DeleteList(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete watchlist", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Watchlist deleted", nil)
	}
}

// AddItem tracks a ticker, fetching its metrics.
// @Summary Add watchlist item
// @Tags watchlist
// @Accept json
// @Produce json
// @Param request body ItemInput true "Item"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /watchlist/items [post]
// @Security BearerAuth
func AddItem(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ItemInput](c)
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
		it, err := svc.AddItem(c.UserContext(), userID, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't add item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Item added", it)
	}
}

// UpdateItem edits an item and refetches its metrics.
// @Summary Update watchlist item
// @Tags watchlist
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body ItemInput true "Item"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /watchlist/items/{id} [put]
// @Security BearerAuth
func UpdateItem(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ItemInput](c)
		if input == nil {
			return err
		}
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid item ID", err)
		}
		in, err := input.toInput()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err)
		}
		it, err := svc.UpdateItem(c.UserContext(), userID, id, in)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Item updated", it)
	}
}

// DeleteItem stops tracking a ticker.
// @Summary Delete watchlist item
// @Tags watchlist
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /watchlist/items/{id} [delete]
// @Security BearerAuth
func DeleteItem(svc *watchlistsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := common.CurrentUser(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err)
		}
		id, err := common.ParamUUID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid item ID", err)
		}
		if err := svc.DeleteItem(c.UserContext(), userID, id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete item", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusNoContent, "Item deleted", nil)
	}
}
