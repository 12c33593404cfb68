package infra

import (
	"context"
	"fmt"
	"reflect"

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
	"github.com/amirasaad/alphaquantum/pkg/repository"
	"github.com/amirasaad/alphaquantum/pkg/repository/alarm"
	"github.com/amirasaad/alphaquantum/pkg/repository/calendar"
	"github.com/amirasaad/alphaquantum/pkg/repository/cashflow"
	"github.com/amirasaad/alphaquantum/pkg/repository/dividend"
	"github.com/amirasaad/alphaquantum/pkg/repository/fundamental"
	"github.com/amirasaad/alphaquantum/pkg/repository/portfolio"
	"github.com/amirasaad/alphaquantum/pkg/repository/position"
	"github.com/amirasaad/alphaquantum/pkg/repository/pricehistory"
	"github.com/amirasaad/alphaquantum/pkg/repository/snapshot"
	"github.com/amirasaad/alphaquantum/pkg/repository/transaction"
	"github.com/amirasaad/alphaquantum/pkg/repository/user"
	"github.com/amirasaad/alphaquantum/pkg/repository/watchlist"
	"gorm.io/gorm"
)

type constructor func(*gorm.DB) any

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories handed out inside Do share the transaction.
type UoW struct {
	db       *gorm.DB
	tx       *gorm.DB
	registry map[reflect.Type]constructor
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		registry: map[reflect.Type]constructor{
			key((*user.Repository)(nil)):         func(db *gorm.DB) any { return userrepo.New(db) },
			key((*portfolio.Repository)(nil)):    func(db *gorm.DB) any { return portfoliorepo.New(db) },
			key((*position.Repository)(nil)):     func(db *gorm.DB) any { return positionrepo.New(db) },
			key((*transaction.Repository)(nil)):  func(db *gorm.DB) any { return transactionrepo.New(db) },
			key((*dividend.Repository)(nil)):     func(db *gorm.DB) any { return dividendrepo.New(db) },
			key((*pricehistory.Repository)(nil)): func(db *gorm.DB) any { return pricehistoryrepo.New(db) },
			key((*snapshot.Repository)(nil)):     func(db *gorm.DB) any { return snapshotrepo.New(db) },
			key((*watchlist.Repository)(nil)):    func(db *gorm.DB) any { return watchlistrepo.New(db) },
			key((*calendar.Repository)(nil)):     func(db *gorm.DB) any { return calendarrepo.New(db) },
			key((*fundamental.Repository)(nil)):  func(db *gorm.DB) any { return fundamentalrepo.New(db) },
			key((*alarm.Repository)(nil)):        func(db *gorm.DB) any { return alarmrepo.New(db) },
			key((*cashflow.Repository)(nil)):     func(db *gorm.DB) any { return cashflowrepo.New(db) },
		},
	}
}

// key resolves a nil pointer to an interface into the interface type.
func key(repoType any) reflect.Type {
	t := reflect.TypeOf(repoType)
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

// Do runs fn in a transaction and hands it a UoW bound to that transaction.
// A returned error or a panic rolls the transaction back.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx, registry: u.registry})
	})
}

// GetRepository returns the repository registered for repoType, a nil
// pointer to a repository interface. Outside Do the repository uses the
// plain session.
func (u *UoW) GetRepository(repoType any) (any, error) {
	build, ok := u.registry[key(repoType)]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %T", repoType)
	}
	session := u.tx
	if session == nil {
		session = u.db
	}
	return build(session), nil
}
