// Package repository holds helpers shared by the gorm repositories.
package repository

import (
	"errors"
	"strings"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts gorm errors anywhere in err's chain to
// domain errors. Unmapped errors are returned unchanged.
func MapGormErrorToDomain(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.Invalid("reference", "points to a missing record")
	}
	return err
}

// WrapError runs a gorm operation and maps its error.
//
//	err := WrapError(func() error {
//	    return r.db.WithContext(ctx).Create(m).Error
//	})
func WrapError(op func() error) error {
	return MapGormErrorToDomain(op())
}

// NilIfNotFound turns gorm.ErrRecordNotFound into a nil error so lookups
// can report absence as (nil, nil).
func NilIfNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// ByTicker scopes a query to a ticker, ignoring case.
func ByTicker(ticker string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("UPPER(ticker) = ?", strings.ToUpper(strings.TrimSpace(ticker)))
	}
}
