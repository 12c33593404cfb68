package calendar

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/calendar"
	"github.com/google/uuid"
)

// Event is a row of financial_events ("EventoFinanciero").
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_financial_events_lookup"`
	Ticker      string    `gorm:"size:10;not null;index:idx_financial_events_lookup"`
	Type        string    `gorm:"size:10;not null;index:idx_financial_events_lookup"`
	Date        time.Time `gorm:"type:date;not null;index:idx_financial_events_lookup"`
	Time        *string   `gorm:"size:5"`
	Description string    `gorm:"type:text"`
}

func (Event) TableName() string { return "financial_events" }

func toModel(e *calendar.Event) *Event {
	return &Event{
		ID:          e.ID,
		UserID:      e.UserID,
		Ticker:      e.Ticker,
		Type:        string(e.Type),
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
	}
}

func (m *Event) toDomain() *calendar.Event {
	return &calendar.Event{
		ID:          m.ID,
		UserID:      m.UserID,
		Ticker:      m.Ticker,
		Type:        calendar.Type(m.Type),
		Date:        m.Date.UTC(),
		Time:        m.Time,
		Description: m.Description,
	}
}
