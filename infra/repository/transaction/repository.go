package transaction

import (
	"context"

	"github.com/amirasaad/alphaquantum/infra/repository"
	"github.com/amirasaad/alphaquantum/pkg/domain/ledger"
	repo "github.com/amirasaad/alphaquantum/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

// New returns a gorm-backed transaction repository.
func New(db *gorm.DB) repo.Repository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *ledger.Transaction) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(t)).Error
	})
}

func (r *transactionRepository) Update(ctx context.Context, t *ledger.Transaction) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Save(toModel(t)).Error
	})
}

func (r *transactionRepository) Get(ctx context.Context, userID, id uuid.UUID) (*ledger.Transaction, error) {
	var m Transaction
	if err := repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	}); err != nil {
		return nil, err
	}
	return m.toDomain(), nil
}

func (r *transactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&Transaction{}).Error
	})
}

func (r *transactionRepository) List(ctx context.Context, userID uuid.UUID) ([]*ledger.Transaction, error) {
	return r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID).Order("date DESC").Order("created_at DESC")
	})
}

func (r *transactionRepository) ListByTicker(ctx context.Context, userID uuid.UUID, ticker string) ([]*ledger.Transaction, error) {
	txs, err := r.find(ctx, func(db *gorm.DB) *gorm.DB {
		return repository.ByTicker(ticker)(db.Where("user_id = ?", userID)).Order("date").Order("created_at")
	})
	if err != nil {
		return nil, err
	}
	ledger.Sort(txs)
	return txs, nil
}

func (r *transactionRepository) find(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*ledger.Transaction, error) {
	var rows []Transaction
	if err := r.db.WithContext(ctx).Scopes(scope).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*ledger.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}
