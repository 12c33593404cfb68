// Package watchlist models named ticker lists with target prices and the
// upside/recommendation rule applied to them.
package watchlist

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultListTitle names the list created on demand for items added without one.
const DefaultListTitle = "Mi Watchlist"

// Recommendation is the signal derived from upside.
type Recommendation string

const (
	Buy    Recommendation = "COMPRAR"
	Review Recommendation = "REVISAR"
	Wait   Recommendation = "ESPERAR"
)

var (
	buyThreshold = decimal.NewFromInt(10)
	hundred      = decimal.NewFromInt(100)
)

// Upside is (target - price) / price * 100. It is nil when either input is
// nil or the price is zero.
func Upside(target, price *decimal.Decimal) *decimal.Decimal {
	if target == nil || price == nil || price.IsZero() {
		return nil
	}
	u := target.Sub(*price).Div(*price).Mul(hundred)
	return &u
}

// Recommend maps upside to a signal: above 10 buys, below 0 waits and
// anything in between, both ends included, is reviewed.
func Recommend(upside *decimal.Decimal) *Recommendation {
	if upside == nil {
		return nil
	}
	var r Recommendation
	switch {
	case upside.GreaterThan(buyThreshold):
		r = Buy
	case upside.IsNegative():
		r = Wait
	default:
		r = Review
	}
	return &r
}

// List is a named watchlist ("WatchlistLista").
type List struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"titulo"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"creado"`
	Items       []*Item   `json:"items,omitempty"`
}

// NewList validates and builds a List.
func NewList(userID uuid.UUID, title, description string) (*List, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > 100 {
		return nil, domain.Invalid("titulo", "must be between 1 and 100 characters")
	}
	return &List{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// Metrics is the market snapshot an item is enriched with.
type Metrics struct {
	Price   *decimal.Decimal
	PE      *decimal.Decimal
	High52W *decimal.Decimal
	Low52W  *decimal.Decimal
}

// Item is a tracked ticker in a list.
type Item struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	ListID         uuid.UUID        `json:"lista_id"`
	Name           string           `json:"nombre"`
	Ticker         string           `json:"ticker"`
	TargetPrice    *decimal.Decimal `json:"valor_objetivo"`
	Upside         *decimal.Decimal `json:"upside"`
	High52W        *decimal.Decimal `json:"max_52s"`
	Low52W         *decimal.Decimal `json:"min_52s"`
	PE             *decimal.Decimal `json:"per"`
	Recommendation *Recommendation  `json:"recomendacion"`
	CurrentPrice   *decimal.Decimal `json:"precio_actual"`
	CreatedAt      time.Time        `json:"creado"`
	UpdatedAt      time.Time        `json:"actualizado"`
}

// NewItem validates and builds an Item.
func NewItem(userID, listID uuid.UUID, name, ticker string, target *decimal.Decimal) (*Item, error) {
	now := time.Now().UTC()
	it := &Item{
		ID:        uuid.New(),
		UserID:    userID,
		ListID:    listID,
		CreatedAt: now,
	}
	if err := it.Apply(name, ticker, target); err != nil {
		return nil, err
	}
	return it, nil
}

// Apply validates and sets the editable fields.
func (it *Item) Apply(name, ticker string, target *decimal.Decimal) error {
	ticker = domain.NormalizeTicker(ticker)
	if ticker == "" || len(ticker) > 10 {
		return domain.Invalid("ticker", "must be between 1 and 10 characters")
	}
	if target != nil && target.IsNegative() {
		return domain.Invalid("valor_objetivo", "must not be negative")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = ticker
	}
	it.Name = name
	it.Ticker = ticker
	if target != nil {
		t := domain.RoundMoney(*target)
		target = &t
	}
	it.TargetPrice = target
	it.UpdatedAt = time.Now().UTC()
	it.Evaluate()
	return nil
}

// Enrich stores fresh metrics and re-evaluates the signal. Nil metrics leave
// the stored values untouched.
func (it *Item) Enrich(m Metrics) {
	if m.Price != nil {
		p := domain.RoundMoney(*m.Price)
		it.CurrentPrice = &p
	}
	if m.PE != nil {
		it.PE = m.PE
	}
	if m.High52W != nil {
		it.High52W = m.High52W
	}
	if m.Low52W != nil {
		it.Low52W = m.Low52W
	}
	it.UpdatedAt = time.Now().UTC()
	it.Evaluate()
}

// SetPrice stores a quote and re-evaluates the signal. Nil and zero quotes are ignored.
func (it *Item) SetPrice(quote *decimal.Decimal) bool {
	if quote == nil || quote.IsZero() {
		return false
	}
	it.Enrich(Metrics{Price: quote})
	return true
}

// Evaluate recomputes upside and recommendation from target and price.
func (it *Item) Evaluate() {
	raw := Upside(it.TargetPrice, it.CurrentPrice)
	it.Recommendation = Recommend(raw)
	it.Upside = nil
	if raw != nil {
		u := domain.RoundMoney(*raw)
		it.Upside = &u
	}
}
