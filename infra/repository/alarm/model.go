package alarm

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Alarm is a row of price_alarms ("AlarmaPrecio").
type Alarm struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PositionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Ticker     string          `gorm:"size:10;not null"`
	Target     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Activated  bool            `gorm:"not null;default:false"`
	CreatedAt  time.Time
}

func (Alarm) TableName() string { return "price_alarms" }
