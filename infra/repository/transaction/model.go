package transaction

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table.
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_user_ticker"`
	Ticker     string          `gorm:"size:10;not null;index:idx_transactions_user_ticker"`
	Type       string          `gorm:"size:4;not null"`
	Quantity   decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	Commission decimal.Decimal `gorm:"type:numeric(18,4);not null;default:0"`
	Date       time.Time       `gorm:"type:date;not null"`
	Note       string          `gorm:"size:255"`
	CreatedAt  time.Time
}

func (Transaction) TableName() string { return "transactions" }

func toModel(t *ledger.Transaction) *Transaction {
	return &Transaction{
		ID:         t.ID,
		UserID:     t.UserID,
		Ticker:     t.Ticker,
		Type:       string(t.Type),
		Quantity:   t.Quantity,
		Price:      t.Price,
		Commission: t.Commission,
		Date:       t.Date,
		Note:       t.Note,
		CreatedAt:  t.CreatedAt,
	}
}

func (m *Transaction) toDomain() *ledger.Transaction {
	return &ledger.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Ticker:     m.Ticker,
		Type:       ledger.Type(m.Type),
		Quantity:   m.Quantity,
		Price:      m.Price,
		Commission: m.Commission,
		Date:       m.Date.UTC(),
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}
