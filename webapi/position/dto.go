package position

import (
	"time"

	positionsvc "github.com/amirasaad/alphaquantum/pkg/service/position"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/shopspring/decimal"
)

// PositionInput is the request body for creating or editing a position.
type PositionInput struct {
	PortfolioID *string         `json:"cartera_id"`
	Name        string          `json:"nombre" validate:"max=100"`
	Ticker      string          `json:"ticker" validate:"required,max=10"`
	Quantity    decimal.Decimal `json:"cantidad" swaggertype:"string"`
	BuyPrice    decimal.Decimal `json:"precio_compra" swaggertype:"string"`
	Date        string          `json:"fecha" example:"2024-01-31"`
}

// toInput converts the body. An empty date means today on create and
// "unchanged" on edit.
func (in *PositionInput) toInput(create bool) (positionsvc.Input, error) {
	portfolioID, err := common.OptionalUUID("cartera_id", in.PortfolioID)
	if err != nil {
		return positionsvc.Input{}, err
	}
	var date time.Time
	if create || in.Date != "" {
		if date, err = common.DateOrToday("fecha", in.Date); err != nil {
			return positionsvc.Input{}, err
		}
	}
	return positionsvc.Input{
		PortfolioID: portfolioID,
		Name:        in.Name,
		Ticker:      in.Ticker,
		Quantity:    in.Quantity,
		BuyPrice:    in.BuyPrice,
		Date:        date,
	}, nil
}
