// Package currency holds the fixed table of supported display currencies.
package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultSymbol is used for codes missing from the table.
const DefaultSymbol = "$"

const defaultFraction = 2

// Entry describes one supported currency.
type Entry struct {
	Code   string `json:"code" example:"EUR"`
	Name   string `json:"name" example:"Euro"`
	Symbol string `json:"symbol" example:"€"`
}

var table = []Entry{
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "$"},
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
}

// All returns a copy of the table in display order.
func All() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

func Lookup(code string) (Entry, bool) {
	for _, e := range table {
		if e.Code == code {
			return e, true
		}
	}
	return Entry{}, false
}

func IsSupported(code string) bool {
	_, ok := Lookup(code)
	return ok
}

// SymbolOf returns the display symbol for code, or DefaultSymbol when the code is unknown.
func SymbolOf(code string) string {
	if e, ok := Lookup(code); ok {
		return e.Symbol
	}
	return DefaultSymbol
}

// Format renders amount with the symbol of code, thousands grouped by "," and
// rounded to the currency's minor units.
func Format(amount decimal.Decimal, code string) string {
	fraction := defaultFraction
	if c := money.GetCurrency(code); c != nil {
		fraction = c.Fraction
	}

	minor := amount.Shift(int32(fraction)).Round(0).IntPart()
	f := money.NewFormatter(fraction, ".", ",", SymbolOf(code), "$1")
	return f.Format(minor)
}
