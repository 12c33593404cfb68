// Package webapi wires the HTTP surface. Each sub-package owns the routes
// of one area:
// - auth: login and logout
// - user: registration and profile
// - portfolio, position, transaction, dividend: holdings and their ledger
// - analytics: summary, priced portfolio, return series and history
// - watchlist, calendar, fundamental, alarm: research and monitoring
// - cashflow: income, expenses, loans and rental properties
package webapi

import (
	"github.com/amirasaad/alphaquantum/pkg/app"
	alarmweb "github.com/amirasaad/alphaquantum/webapi/alarm"
	analyticsweb "github.com/amirasaad/alphaquantum/webapi/analytics"
	authweb "github.com/amirasaad/alphaquantum/webapi/auth"
	calendarweb "github.com/amirasaad/alphaquantum/webapi/calendar"
	cashflowweb "github.com/amirasaad/alphaquantum/webapi/cashflow"
	"github.com/amirasaad/alphaquantum/webapi/common"
	dividendweb "github.com/amirasaad/alphaquantum/webapi/dividend"
	fundamentalweb "github.com/amirasaad/alphaquantum/webapi/fundamental"
	portfolioweb "github.com/amirasaad/alphaquantum/webapi/portfolio"
	positionweb "github.com/amirasaad/alphaquantum/webapi/position"
	transactionweb "github.com/amirasaad/alphaquantum/webapi/transaction"
	userweb "github.com/amirasaad/alphaquantum/webapi/user"
	watchlistweb "github.com/amirasaad/alphaquantum/webapi/watchlist"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	cfg := a.Config
	authSvc := a.AuthService

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
	}))

	fiberApp.Use(common.RateLimiter(cfg.RateLimit))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("AlphaQuantum API is running!")
	})

	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		var routes []fiber.Map
		for _, r := range fiberApp.GetRoutes(true) {
			if r.Path != "" {
				routes = append(routes, fiber.Map{"method": r.Method, "path": r.Path})
			}
		}
		return c.JSON(routes)
	})

	authweb.Routes(fiberApp, authSvc, cfg)
	userweb.Routes(fiberApp, a.UserService, authSvc, cfg)
	portfolioweb.Routes(fiberApp, a.PortfolioService, authSvc, cfg)
	positionweb.Routes(fiberApp, a.PositionService, authSvc, cfg)
	transactionweb.Routes(fiberApp, a.TransactionService, authSvc, cfg)
	dividendweb.Routes(fiberApp, a.DividendService, authSvc, cfg)
	analyticsweb.Routes(fiberApp, a.AnalyticsService, authSvc, cfg)
	watchlistweb.Routes(fiberApp, a.WatchlistService, authSvc, cfg)
	calendarweb.Routes(fiberApp, a.CalendarService, authSvc, cfg)
	fundamentalweb.Routes(fiberApp, a.FundamentalService, authSvc, cfg)
	alarmweb.Routes(fiberApp, a.AlarmService, authSvc, cfg)
	cashflowweb.Routes(fiberApp, a.CashflowService, authSvc, cfg)
	return fiberApp
}
