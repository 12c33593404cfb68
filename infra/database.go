package infra

import (
	"errors"
	"fmt"
	"strings"
	"time"

	alarmrepo "github.com/amirasaad/alphaquantum/infra/repository/alarm"
	calendarrepo "github.com/amirasaad/alphaquantum/infra/repository/calendar"
	cashflowrepo "github.com/amirasaad/alphaquantum/infra/repository/cashflow"
	dividendrepo "github.com/amirasaad/alphaquantum/infra/repository/dividend"
	fundamentalrepo "github.com/amirasaad/alphaquantum/infra/repository/fundamental"
	portfoliorepo "github.com/amirasaad/alphaquantum/infra/repository/portfolio"
	positionrepo "github.com/amirasaad/alphaquantum/infra/repository/position"
	pricehistoryrepo "github.com/amirasaad/alphaquantum/infra/repository/pricehistory"
	snapshotrepo "github.com/amirasaad/alphaquantum/infra/repository/snapshot"
	transactionrepo "github.com/amirasaad/alphaquantum/infra/repository/transaction"
	userrepo "github.com/amirasaad/alphaquantum/infra/repository/user"
	watchlistrepo "github.com/amirasaad/alphaquantum/infra/repository/watchlist"
	"github.com/amirasaad/alphaquantum/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is empty.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is not set")

// Models lists every persisted model, parents first.
func Models() []any {
	return []any{
		&userrepo.User{},
		&portfoliorepo.Portfolio{},
		&positionrepo.Position{},
		&transactionrepo.Transaction{},
		&dividendrepo.Dividend{},
		&pricehistoryrepo.PriceHistory{},
		&snapshotrepo.Snapshot{},
		&watchlistrepo.List{},
		&watchlistrepo.Item{},
		&calendarrepo.Event{},
		&fundamentalrepo.Analysis{},
		&alarmrepo.Alarm{},
		&cashflowrepo.Record{},
		&cashflowrepo.Loan{},
		&cashflowrepo.Property{},
	}
}

// IsSQLite reports whether url selects the SQLite driver.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, "sqlite://") || strings.HasPrefix(url, "file:") || url == ":memory:"
}

func dialector(url string) gorm.Dialector {
	if IsSQLite(url) {
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	}
	return postgres.Open(url)
}

// NewDBConnection opens the database named by cnf.Url. sqlite:// and file:
// URLs use SQLite, anything else Postgres.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, ErrMissingDatabaseURL
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	connection, err := gorm.Open(dialector(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if IsSQLite(cnf.Url) {
		// one writer keeps in-memory databases shared across the pool
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	}

	if cnf.AutoMigrate {
		if err := AutoMigrate(connection); err != nil {
			return nil, err
		}
	}
	return connection, nil
}

// AutoMigrate creates or updates every table from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
