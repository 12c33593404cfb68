package domain

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Places used when storing quantities and unit prices.
const (
	QuantityPlaces = 4
	MoneyPlaces    = 2
)

var hundred = decimal.NewFromInt(100)

// Quantize rounds to QuantityPlaces using banker's rounding.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(QuantityPlaces)
}

// RoundMoney rounds to MoneyPlaces using banker's rounding.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(MoneyPlaces)
}

// FormatMoney renders d with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixedBank(MoneyPlaces)
}

// DisplayEUR renders d as a euro amount with currency symbol and
// thousands separators, rounded to cents.
func DisplayEUR(d decimal.Decimal) string {
	cents := RoundMoney(d).Shift(MoneyPlaces).IntPart()
	return gomoney.New(cents, gomoney.EUR).Display()
}

// Percent returns part/whole*100, or zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// NormalizeTicker trims and upper-cases a ticker symbol.
func NormalizeTicker(t string) string {
	return strings.ToUpper(strings.TrimSpace(t))
}
