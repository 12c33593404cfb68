package watchlist

import (
	"github.com/amirasaad/alphaquantum/pkg/domain"
	watchlistdomain "github.com/amirasaad/alphaquantum/pkg/domain/watchlist"
	watchlistsvc "github.com/amirasaad/alphaquantum/pkg/service/watchlist"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const notAvailable = "N/A"

// ListInput is the request body for creating a list.
type ListInput struct {
	Title       string `json:"titulo" validate:"required,max=100"`
	Description string `json:"descripcion" validate:"max=255"`
}

// ItemInput is the request body for adding or editing an item.
type ItemInput struct {
	ListID *string          `json:"lista_id"`
	Name   string           `json:"nombre" validate:"max=100"`
	Ticker string           `json:"ticker" validate:"required,max=10"`
	Target *decimal.Decimal `json:"valor_objetivo" swaggertype:"string"`
}

func (in *ItemInput) toInput() (watchlistsvc.ItemInput, error) {
	listID, err := common.OptionalUUID("lista_id", in.ListID)
	if err != nil {
		return watchlistsvc.ItemInput{}, err
	}
	return watchlistsvc.ItemInput{ListID: listID, Name: in.Name, Ticker: in.Ticker, Target: in.Target}, nil
}

// ItemView is an item with nil values rendered as 0 and "N/A".
type ItemView struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"nombre"`
	Ticker         string    `json:"ticker"`
	TargetPrice    string    `json:"valor_objetivo"`
	CurrentPrice   string    `json:"precio_actual"`
	Upside         string    `json:"upside"`
	High52W        string    `json:"max_52s"`
	Low52W         string    `json:"min_52s"`
	PE             string    `json:"per"`
	Recommendation string    `json:"recomendacion"`
}

// ListView is a list with its displayed items.
type ListView struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"titulo"`
	Description string     `json:"descripcion"`
	Items       []ItemView `json:"items"`
}

func orZero(d *decimal.Decimal) string {
	if d == nil {
		return domain.FormatMoney(decimal.Zero)
	}
	return domain.FormatMoney(*d)
}

func newItemView(it *watchlistdomain.Item) ItemView {
	rec := notAvailable
	if it.Recommendation != nil {
		rec = string(*it.Recommendation)
	}
	return ItemView{
		ID:             it.ID,
		Name:           it.Name,
		Ticker:         it.Ticker,
		TargetPrice:    orZero(it.TargetPrice),
		CurrentPrice:   orZero(it.CurrentPrice),
		Upside:         orZero(it.Upside),
		High52W:        orZero(it.High52W),
		Low52W:         orZero(it.Low52W),
		PE:             orZero(it.PE),
		Recommendation: rec,
	}
}

func newListViews(lists []*watchlistdomain.List) []ListView {
	out := make([]ListView, 0, len(lists))
	for _, l := range lists {
		v := ListView{ID: l.ID, Title: l.Title, Description: l.Description, Items: make([]ItemView, 0, len(l.Items))}
		for _, it := range l.Items {
			v.Items = append(v.Items, newItemView(it))
		}
		out = append(out, v)
	}
	return out
}

func ensureItems(items []*watchlistdomain.Item) []*watchlistdomain.Item {
	if items == nil {
		return []*watchlistdomain.Item{}
	}
	return items
}
