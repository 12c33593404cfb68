package snapshot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is a row of portfolio_snapshots ("HistoricoCartera").
type Snapshot struct {
	ID       uint            `gorm:"primaryKey"`
	UserID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_snapshots_user_date"`
	Date     time.Time       `gorm:"type:date;not null;uniqueIndex:idx_snapshots_user_date"`
	Value    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Invested decimal.Decimal `gorm:"type:numeric(18,2);not null"`
}

func (Snapshot) TableName() string { return "portfolio_snapshots" }
