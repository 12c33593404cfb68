// Package calendar models financial events (earnings, dividends, trades)
// and the filters used to browse them.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
)

// Type is the kind of a financial event.
type Type string

const (
	Earnings Type = "resultado"
	Dividend Type = "dividendo"
	Purchase Type = "compra"
	Sale     Type = "venta"
)

// AllTypes means "no type filter".
const AllTypes = "todos"

// ParseType validates an event type.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case Earnings, Dividend, Purchase, Sale:
		return t, nil
	}
	return "", domain.Invalid("tipo_evento", "must be resultado, dividendo, compra or venta")
}

// Event is an entry in a user's financial calendar ("EventoFinanciero").
type Event struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Ticker      string    `json:"ticker"`
	Type        Type      `json:"tipo_evento"`
	Description string    `json:"descripcion"`
	Date        time.Time `json:"fecha"`
	// Time is an optional HH:MM time of day.
	Time *string `json:"hora"`
}

// NewEvent validates and builds an Event.
func NewEvent(userID uuid.UUID, ticker string, typ Type, date time.Time, description string, at *string) (*Event, error) {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" || len(ticker) > 10 {
		return nil, domain.Invalid("ticker", "must be between 1 and 10 characters")
	}
	if _, err := ParseType(string(typ)); err != nil {
		return nil, err
	}
	if date.IsZero() {
		return nil, domain.Invalid("fecha", "is required")
	}
	if at != nil {
		if _, err := time.Parse("15:04", *at); err != nil {
			return nil, domain.Invalid("hora", "must use the HH:MM format")
		}
	}
	return &Event{
		ID:          uuid.New(),
		UserID:      userID,
		Ticker:      ticker,
		Type:        typ,
		Description: strings.TrimSpace(description),
		Date:        domain.Day(date),
		Time:        at,
	}, nil
}

// EarningsDescription formats the description of an imported earnings event.
func EarningsDescription(reported, estimated string) string {
	return fmt.Sprintf("EPS real: %s / estimado: %s", reported, estimated)
}

// DividendDescription formats the description of an imported dividend event.
func DividendDescription(amount string) string {
	return fmt.Sprintf("Dividendo de %s USD.", amount)
}

// TradeDescription formats the description of a recorded buy or sell.
func TradeDescription(typ Type, quantity, price string) string {
	verb := "Compra"
	if typ == Sale {
		verb = "Venta"
	}
	return fmt.Sprintf("%s de %s acciones a %s.", verb, quantity, price)
}

// Window is a look-back period for the calendar view.
type Window string

const (
	Last30Days  Window = "30_dias"
	Last3Months Window = "3_meses"
	Last6Months Window = "6_meses"
	LastYear    Window = "1_ano"
)

var windowDays = map[Window]int{
	Last30Days:  30,
	Last3Months: 90,
	Last6Months: 180,
	LastYear:    365,
}

// Since returns the earliest date included by w. ok is false for unknown or
// empty windows, which mean "no limit".
func (w Window) Since(today time.Time) (since time.Time, ok bool) {
	days, ok := windowDays[w]
	if !ok {
		return time.Time{}, false
	}
	return domain.Day(today).AddDate(0, 0, -days), true
}

// Filter narrows a calendar listing.
type Filter struct {
	// Type is empty or AllTypes for every type.
	Type   string
	Ticker string
	Window Window
}

// Match reports whether e passes the filter relative to today.
func (f Filter) Match(e *Event, today time.Time) bool {
	if f.Type != "" && f.Type != AllTypes && string(e.Type) != strings.ToLower(f.Type) {
		return false
	}
	if t := domain.NormalizeTicker(f.Ticker); t != "" && !strings.Contains(e.Ticker, t) {
		return false
	}
	if since, ok := f.Window.Since(today); ok && e.Date.Before(since) {
		return false
	}
	return true
}
