// Package alarm models price alarms on positions.
package alarm

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Alarm fires once the position's current price reaches Target.
type Alarm struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	PositionID uuid.UUID       `json:"accion_id"`
	Ticker     string          `json:"ticker"`
	Target     decimal.Decimal `json:"precio_objetivo"`
	Activated  bool            `json:"es_activada"`
	CreatedAt  time.Time       `json:"creado"`
}

// New validates and builds an Alarm.
func New(userID, positionID uuid.UUID, ticker string, target decimal.Decimal) (*Alarm, error) {
	if !target.IsPositive() {
		return nil, domain.Invalid("precio_objetivo", "must be greater than zero")
	}
	return &Alarm{
		ID:         uuid.New(),
		UserID:     userID,
		PositionID: positionID,
		Ticker:     domain.NormalizeTicker(ticker),
		Target:     domain.RoundMoney(target),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Check activates the alarm when price >= Target. It reports whether the
// alarm changed state.
func (a *Alarm) Check(price *decimal.Decimal) bool {
	if a.Activated || price == nil {
		return false
	}
	if price.GreaterThanOrEqual(a.Target) {
		a.Activated = true
		return true
	}
	return false
}
