package fundamental

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is a row of fundamental_analyses ("AnalisisFundamental").
type Analysis struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Ticker string    `gorm:"size:10;not null"`
	Date   time.Time `gorm:"type:date;not null"`
	// Data is the JSON report, stored as text.
	Data      string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (Analysis) TableName() string { return "fundamental_analyses" }
