package watchlist

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// List is a row of watchlist_lists ("WatchlistLista").
type List struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_lists_user_title"`
	Title       string    `gorm:"size:100;not null;uniqueIndex:idx_watchlist_lists_user_title"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time
}

func (List) TableName() string { return "watchlist_lists" }

// Item is a row of watchlist_items, unique per (user, list, ticker).
type Item struct {
	ID             uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_items_user_list_ticker"`
	ListID         uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:idx_watchlist_items_user_list_ticker"`
	Ticker         string              `gorm:"size:10;not null;uniqueIndex:idx_watchlist_items_user_list_ticker"`
	Name           string              `gorm:"size:100;not null"`
	TargetPrice    decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	Upside         decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	High52W        decimal.NullDecimal `gorm:"column:high_52w;type:numeric(14,4)"`
	Low52W         decimal.NullDecimal `gorm:"column:low_52w;type:numeric(14,4)"`
	PE             decimal.NullDecimal `gorm:"column:pe;type:numeric(14,4)"`
	Recommendation *string             `gorm:"size:20"`
	CurrentPrice   decimal.NullDecimal `gorm:"type:numeric(14,2)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Item) TableName() string { return "watchlist_items" }

func nullable(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func ptr(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func listToModel(l *watchlist.List) *List {
	return &List{ID: l.ID, UserID: l.UserID, Title: l.Title, Description: l.Description, CreatedAt: l.CreatedAt}
}

func (m *List) toDomain() *watchlist.List {
	return &watchlist.List{ID: m.ID, UserID: m.UserID, Title: m.Title, Description: m.Description, CreatedAt: m.CreatedAt}
}

func itemToModel(it *watchlist.Item) *Item {
	m := &Item{
		ID:           it.ID,
		UserID:       it.UserID,
		ListID:       it.ListID,
		Ticker:       it.Ticker,
		Name:         it.Name,
		TargetPrice:  nullable(it.TargetPrice),
		Upside:       nullable(it.Upside),
		High52W:      nullable(it.High52W),
		Low52W:       nullable(it.Low52W),
		PE:           nullable(it.PE),
		CurrentPrice: nullable(it.CurrentPrice),
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
	if it.Recommendation != nil {
		rec := string(*it.Recommendation)
		m.Recommendation = &rec
	}
	return m
}

func (m *Item) toDomain() *watchlist.Item {
	it := &watchlist.Item{
		ID:           m.ID,
		UserID:       m.UserID,
		ListID:       m.ListID,
		Ticker:       m.Ticker,
		Name:         m.Name,
		TargetPrice:  ptr(m.TargetPrice),
		Upside:       ptr(m.Upside),
		High52W:      ptr(m.High52W),
		Low52W:       ptr(m.Low52W),
		PE:           ptr(m.PE),
		CurrentPrice: ptr(m.CurrentPrice),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Recommendation != nil {
		rec := watchlist.Recommendation(*m.Recommendation)
		it.Recommendation = &rec
	}
	return it
}
