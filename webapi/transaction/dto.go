package transaction

import (
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/amirasaad/alphaquantum/pkg/domain/ledger"
	txsvc "github.com/amirasaad/alphaquantum/pkg/service/transaction"
	"github.com/amirasaad/alphaquantum/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// TransactionInput is the request body for recording or editing a ledger entry.
type TransactionInput struct {
	Ticker     string          `json:"ticker" validate:"required,max=10"`
	Type       string          `json:"tipo" validate:"required" example:"BUY"`
	Quantity   decimal.Decimal `json:"cantidad" swaggertype:"string"`
	Price      decimal.Decimal `json:"precio" swaggertype:"string"`
	Commission decimal.Decimal `json:"comision" swaggertype:"string"`
	Date       string          `json:"fecha" example:"2024-01-31"`
	Note       string          `json:"nota" validate:"max=255"`
}

func (in *TransactionInput) toInput() (txsvc.Input, error) {
	typ, err := ledger.ParseType(in.Type)
	if err != nil {
		return txsvc.Input{}, err
	}
	date, err := common.DateOrToday("fecha", in.Date)
	if err != nil {
		return txsvc.Input{}, err
	}
	return txsvc.Input{
		Ticker:     in.Ticker,
		Type:       typ,
		Quantity:   in.Quantity,
		Price:      in.Price,
		Commission: in.Commission,
		Date:       date,
		Note:       in.Note,
	}, nil
}

// PnLRow is one entry of the P&L report.
type PnLRow struct {
	*ledger.Transaction
	Amount        string `json:"importe"`
	PositionAfter string `json:"posicion_despues"`
	AvgCostAfter  string `json:"coste_medio_despues"`
}

// PnLOutput is the JSON P&L report.
type PnLOutput struct {
	Rows  []PnLRow `json:"transacciones"`
	Total string   `json:"total"`
}

func newPnLOutput(rows []ledger.PnLRow, total decimal.Decimal) PnLOutput {
	out := PnLOutput{Rows: make([]PnLRow, 0, len(rows)), Total: domain.FormatMoney(total)}
	for _, r := range rows {
		out.Rows = append(out.Rows, PnLRow{
			Transaction:   r.Transaction,
			Amount:        domain.FormatMoney(r.Amount),
			PositionAfter: r.PositionAfter.StringFixed(domain.QuantityPlaces),
			AvgCostAfter:  r.AvgCostAfter.StringFixed(domain.QuantityPlaces),
		})
	}
	return out
}

// SharesOutput answers the shares-on-date query.
type SharesOutput struct {
	Ticker   string          `json:"ticker"`
	Date     string          `json:"fecha"`
	Quantity decimal.Decimal `json:"cantidad" swaggertype:"string"`
}

// filter reads the ticker, desde and hasta query parameters.
func filter(c *fiber.Ctx) (ledger.Filter, error) {
	from, err := common.QueryDate(c, "desde")
	if err != nil {
		return ledger.Filter{}, err
	}
	to, err := common.QueryDate(c, "hasta")
	if err != nil {
		return ledger.Filter{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return ledger.Filter{}, domain.Invalid("hasta", "must not be before desde")
	}
	return ledger.Filter{Ticker: c.Query("ticker"), From: from, To: to}, nil
}

func exportName(now time.Time) string {
	return "transacciones_" + now.Format("20060102") + ".csv"
}
