package portfolio

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/portfolio"
	"github.com/google/uuid"
)

// Portfolio is a row of the portfolios table ("Cartera").
type Portfolio struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"size:100;not null"`
	CreatedAt time.Time
}

func (Portfolio) TableName() string { return "portfolios" }

func toModel(p *portfolio.Portfolio) *Portfolio {
	return &Portfolio{ID: p.ID, UserID: p.UserID, Name: p.Name, CreatedAt: p.CreatedAt}
}

func (m *Portfolio) toDomain() *portfolio.Portfolio {
	return &portfolio.Portfolio{ID: m.ID, UserID: m.UserID, Name: m.Name, CreatedAt: m.CreatedAt}
}
