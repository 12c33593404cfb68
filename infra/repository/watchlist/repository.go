package watchlist

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/watchlist"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type watchlistRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed watchlist repository.
func New(db *gorm.DB) repo.Repository {
	return &watchlistRepository{db: db}
}

func (r *watchlistRepository) CreateList(ctx context.Context, l *watchlist.List) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(listToModel(l)).Error
	})
}

func (r *watchlistRepository) GetList(ctx context.Context, userID, id uuid.UUID) (*watchlist.List, error) {
	var m List
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *watchlistRepository) FindListByTitle(ctx context.Context, userID uuid.UUID, title string) (*watchlist.List, error) {
	var m List
	err := r.db.WithContext(ctx).Where("user_id = ? AND title = ?", userID, title).First(&m).Error
	if err != nil {
		return nil, repository.NilIfNotFound(err)
	}
	return m.toDomain(), nil
}

func (r *watchlistRepository) Lists(ctx context.Context, userID uuid.UUID) ([]*watchlist.List, error) {
	var rows []List
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("title").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*watchlist.List, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *watchlistRepository) DeleteList(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		db := r.db.WithContext(ctx)
		if err := db.Where("list_id = ? AND user_id = ?", id, userID).Delete(&Item{}).Error; err != nil {
			return err
		}
		return db.Where("id = ? AND user_id = ?", id, userID).Delete(&List{}).Error
	})
}

func (r *watchlistRepository) CreateItem(ctx context.Context, it *watchlist.Item) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(itemToModel(it)).Error
	})
}

func (r *watchlistRepository) UpdateItem(ctx context.Context, it *watchlist.Item) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Save(itemToModel(it)).Error
	})
}

func (r *watchlistRepository) GetItem(ctx context.Context, userID, id uuid.UUID) (*watchlist.Item, error) {
	var m Item
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *watchlistRepository) DeleteItem(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Item{}).Error
	})
}

func (r *watchlistRepository) items(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*watchlist.Item, error) {
	var rows []Item
	if err := r.db.WithContext(ctx).Scopes(scope).Order("ticker").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*watchlist.Item, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

func (r *watchlistRepository) Items(ctx context.Context, userID uuid.UUID) ([]*watchlist.Item, error) {
	return r.items(ctx, func(db *gorm.DB) *gorm.DB { return db.Where("user_id = ?", userID) })
}

func (r *watchlistRepository) AllItems(ctx context.Context) ([]*watchlist.Item, error) {
	return r.items(ctx, func(db *gorm.DB) *gorm.DB { return db })
}

func (r *watchlistRepository) ItemExists(
	ctx context.Context,
	userID, listID uuid.UUID,
	ticker string,
	excludeID uuid.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Item{}).
		Where("user_id = ? AND list_id = ? AND id <> ?", userID, listID, excludeID).
		Scopes(repository.ByTicker(ticker)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
