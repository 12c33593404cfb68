package user

import (
	"context"
	"strings"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/dto"
	"github.com/amirasaad/alphaquantum/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed user.Repository.
func New(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, create *dto.UserCreate) error {
	m := &User{
		ID:       create.ID,
		Username: create.Username,
		Email:    strings.ToLower(create.Email),
		Password: create.Password,
		Names:    create.Names,
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(m).Error
	})
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, uu *dto.UserUpdate) error {
	updates := make(map[string]any)
	if uu.Names != nil {
		updates["names"] = *uu.Names
	}
	if uu.Password != nil {
		updates["password"] = *uu.Password
	}
	if len(updates) == 0 {
		return nil
	}
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates).Error
	})
}

func (r *userRepository) first(ctx context.Context, query string, arg any) (*dto.UserRead, error) {
	var m User
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if err != nil {
		return nil, repository.NilIfNotFound(err)
	}
	return mapModelToDTO(&m), nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*dto.UserRead, error) {
	return r.first(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	return r.first(ctx, "username = ?", strings.TrimSpace(username))
}

// ownedTables are deleted child first so the foreign keys of a migrated
// postgres schema are never violated.
var ownedTables = []string{
	"price_alarms",
	"watchlist_items",
	"watchlist_lists",
	"financial_events",
	"fundamental_analyses",
	"portfolio_snapshots",
	"transactions",
	"cashflow_records",
	"loans",
	"rental_properties",
}

// Delete removes the user and everything the user owns.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repository.WrapError(func() error {
		db := r.db.WithContext(ctx)
		for _, table := range ownedTables {
			if err := db.Exec("DELETE FROM "+table+" WHERE user_id = ?", id).Error; err != nil {
				return err
			}
		}
		if err := db.Exec(
			"DELETE FROM dividends WHERE position_id IN (SELECT id FROM positions WHERE user_id = ?)", id,
		).Error; err != nil {
			return err
		}
		for _, table := range []string{"positions", "portfolios"} {
			if err := db.Exec("DELETE FROM "+table+" WHERE user_id = ?", id).Error; err != nil {
				return err
			}
		}
		return db.Delete(&User{}, "id = ?", id).Error
	})
}

func (r *userRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&User{}).Order("created_at").Pluck("id", &ids).Error
	return ids, repository.MapGormErrorToDomain(err)
}

func (r *userRepository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where(query, arg).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", strings.TrimSpace(username))
}

func mapModelToDTO(m *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             m.ID,
		Username:       m.Username,
		HashedPassword: m.Password,
		Email:          m.Email,
		Names:          m.Names,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
