// Package initializer builds the runtime dependencies of the server and the
// CLI from configuration.
package initializer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/alphaquantum/infra"
	infra_eventbus "github.com/amirasaad/alphaquantum/infra/eventbus"
	"github.com/amirasaad/alphaquantum/pkg/app"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"github.com/amirasaad/alphaquantum/pkg/eventbus"
	"gorm.io/gorm"
)

// Runtime is the initialized infrastructure plus what must be released on
// shutdown.
type Runtime struct {
	Deps    *app.Deps
	DB      *gorm.DB
	closers []func() error
}

// Close releases every resource in reverse order of creation.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

func (r *Runtime) onClose(fn func() error) {
	r.closers = append(r.closers, fn)
}

// InitializeDependencies opens the database, the cache, the event bus and
// the market data providers.
func InitializeDependencies(cfg *config.App) (_ *Runtime, err error) {
	rt := &Runtime{Deps: &app.Deps{}}
	defer func() {
		if err != nil {
			_ = rt.Close()
		}
	}()

	logger, logFile := setupLogger(cfg.Log)
	rt.Deps.Logger = logger
	if logFile != nil {
		rt.onClose(logFile.Close)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	rt.DB = db
	rt.onClose(func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	})
	rt.Deps.Uow = infra.NewUoW(db)

	bus, closeBus := initEventBus(cfg.Env, logger)
	rt.Deps.EventBus = bus
	rt.onClose(closeBus)

	c, cacheCloser, err := infra.NewCache(context.Background(), cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}
	rt.Deps.Cache = c
	rt.onClose(cacheCloser.Close)

	rt.Deps.MarketData = infra.NewMarketDataSystem(logger, cfg.MarketData, cfg.QuoteCache, c)
	return rt, nil
}

// initEventBus runs handlers inline under test so assertions can follow a
// request directly. Elsewhere handlers run on a background queue.
func initEventBus(env string, logger *slog.Logger) (eventbus.Bus, func() error) {
	if env == "test" {
		logger.Info("Using synchronous in-memory event bus")
		return infra_eventbus.NewWithMemory(logger), func() error { return nil }
	}
	bus := infra_eventbus.NewWithMemoryAsync(logger)
	logger.Info("Using asynchronous in-memory event bus")
	return bus, func() error {
		bus.Close()
		return nil
	}
}

var _ io.Closer = (*Runtime)(nil)
