// Package fundamental normalizes company overview data and stores the
// analyses a user has looked up.
package fundamental

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/alphaquantum/pkg/domain"
	"github.com/google/uuid"
)

// Overview is the normalized company summary shown next to the price chart.
// Numeric fields are nil when the provider has no usable value.
type Overview struct {
	Name                 string   `json:"Name"`
	Sector               string   `json:"Sector"`
	Industry             string   `json:"Industry"`
	Country              string   `json:"Country"`
	FullTimeEmployees    string   `json:"FullTimeEmployees"`
	PER                  *float64 `json:"PER"`
	ROE                  *float64 `json:"ROE"`
	ROIC                 *float64 `json:"ROIC"`
	DebtToEquity         *float64 `json:"DebtToEquity"`
	EPS                  *float64 `json:"EPS"`
	DividendPerShare     *float64 `json:"DividendPerShare"`
	DividendYield        *float64 `json:"DividendYield"`
	MarketCapitalization *float64 `json:"MarketCapitalization"`
	NetIncomeTTM         *float64 `json:"NetIncomeTTM"`
}

// ParseNumber converts a provider string to a float. "", "N/A", "None" and
// "-" yield nil, as does anything unparsable.
func ParseNumber(v string) *float64 {
	v = strings.TrimSpace(v)
	switch v {
	case "", "N/A", "None", "-":
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Normalize maps raw provider overview fields onto an Overview. ROIC and
// NetIncomeTTM are not part of the overview feed and stay nil.
func Normalize(raw map[string]string) Overview {
	return Overview{
		Name:                 raw["Name"],
		Sector:               raw["Sector"],
		Industry:             raw["Industry"],
		Country:              raw["Country"],
		FullTimeEmployees:    raw["FullTimeEmployees"],
		PER:                  ParseNumber(raw["PERatio"]),
		ROE:                  ParseNumber(raw["ReturnOnEquityTTM"]),
		DebtToEquity:         ParseNumber(raw["DebtEquityRatio"]),
		EPS:                  ParseNumber(raw["EPS"]),
		DividendPerShare:     ParseNumber(raw["DividendPerShare"]),
		DividendYield:        ParseNumber(raw["DividendYield"]),
		MarketCapitalization: ParseNumber(raw["MarketCapitalization"]),
	}
}

// Series is a daily closing price series in ascending date order.
type Series struct {
	Dates  []string  `json:"fechas"`
	Closes []float64 `json:"cierres"`
}

// Trim keeps the last n points.
func (s Series) Trim(n int) Series {
	if n <= 0 || len(s.Dates) <= n {
		return s
	}
	return Series{Dates: s.Dates[len(s.Dates)-n:], Closes: s.Closes[len(s.Closes)-n:]}
}

// Analysis is a stored lookup ("AnalisisFundamental").
type Analysis struct {
	ID     uuid.UUID       `json:"id"`
	UserID uuid.UUID       `json:"user_id"`
	Ticker string          `json:"ticker"`
	Date   time.Time       `json:"fecha"`
	Data   json.RawMessage `json:"datos"`
}

// Report is the payload stored in an Analysis and returned to the client.
type Report struct {
	Ticker   string   `json:"ticker"`
	Series   Series   `json:"serie"`
	Overview Overview `json:"fundamentales"`
}

// NewAnalysis stores r as the analysis data for today.
func NewAnalysis(userID uuid.UUID, r Report) (*Analysis, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return &Analysis{
		ID:     uuid.New(),
		UserID: userID,
		Ticker: domain.NormalizeTicker(r.Ticker),
		Date:   domain.Today(),
		Data:   data,
	}, nil
}
