package app

import (
	"log/slog"

	"github.com/amirasaad/alphaquantum/pkg/cache"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/eventbus"
	"github.com/amirasaad/alphaquantum/pkg/provider"
	"github.com/amirasaad/alphaquantum/pkg/repository"
	"github.com/amirasaad/alphaquantum/pkg/service/alarm"
	"github.com/amirasaad/alphaquantum/pkg/service/analytics"
	"github.com/amirasaad/alphaquantum/pkg/service/auth"
	"github.com/amirasaad/alphaquantum/pkg/service/calendar"
	"github.com/amirasaad/alphaquantum/pkg/service/cashflow"
	"github.com/amirasaad/alphaquantum/pkg/service/dividend"
	"github.com/amirasaad/alphaquantum/pkg/service/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/service/jobs"
	"github.com/amirasaad/alphaquantum/pkg/service/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/service/position"
	"github.com/amirasaad/alphaquantum/pkg/service/transaction"
	"github.com/amirasaad/alphaquantum/pkg/service/user"
	"github.com/amirasaad/alphaquantum/pkg/service/watchlist"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	Uow        repository.UnitOfWork
	EventBus   eventbus.Bus
	MarketData provider.MarketData
	// Cache holds revoked tokens. Quotes are cached inside MarketData.
	Cache  cache.Cache
	Logger *slog.Logger
}

type App struct {
	Deps   *Deps
	Config *config.App

	AuthService        *auth.Service
	UserService        *user.Service
	PortfolioService   *portfolio.Service
	PositionService    *position.Service
	TransactionService *transaction.Service
	DividendService    *dividend.Service
	AnalyticsService   *analytics.Service
	WatchlistService   *watchlist.Service
	CalendarService    *calendar.Service
	FundamentalService *fundamental.Service
	AlarmService       *alarm.Service
	CashflowService    *cashflow.Service
	Jobs               *jobs.Runner
}

func New(deps *Deps, cfg *config.App) *App {
	concurrency := 0
	if cfg.MarketData != nil {
		concurrency = cfg.MarketData.Concurrency
	}
	uow, logger, market := deps.Uow, deps.Logger, deps.MarketData

	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	app.AuthService = auth.New(uow, cfg.Auth.Jwt, deps.Cache, logger)
	app.UserService = user.New(uow, logger)
	app.PortfolioService = portfolio.New(uow, logger)
	app.PositionService = position.New(uow, deps.EventBus, logger)
	app.TransactionService = transaction.New(uow, deps.EventBus, logger)
	app.DividendService = dividend.New(uow, logger)
	app.AnalyticsService = analytics.New(uow, market, concurrency, logger)
	app.WatchlistService = watchlist.New(uow, market, concurrency, logger)
	app.CalendarService = calendar.New(uow, market, logger)
	app.FundamentalService = fundamental.New(uow, market, logger)
	app.AlarmService = alarm.New(uow, logger)
	app.CashflowService = cashflow.New(uow, logger)
	app.Jobs = &jobs.Runner{
		Users:     app.UserService,
		Analytics: app.AnalyticsService,
		Calendar:  app.CalendarService,
		Cashflow:  app.CashflowService,
		Watchlist: app.WatchlistService,
		Logger:    logger,
	}
	app.setupEventBus()
	return app
}
