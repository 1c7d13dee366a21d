package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSymbolOf(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"USD", "$"},
		{"EUR", "€"},
		{"GBP", "£"},
		{"JPY", "¥"},
		{"CAD", "$"},
		{"INR", "₹"},
		{"CNY", "¥"},
		{"ZZZ", "$"},
		{"", "$"},
		{"eur", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, SymbolOf(tt.code))
		})
	}
}

func TestLookup(t *testing.T) {
	e, ok := Lookup("AUD")
	assert.True(t, ok)
	assert.Equal(t, Entry{Code: "AUD", Name: "Australian Dollar", Symbol: "$"}, e)

	_, ok = Lookup("ZZZ")
	assert.False(t, ok)
	assert.False(t, IsSupported("ZZZ"))
	assert.True(t, IsSupported("CAD"))
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 8)
	assert.Equal(t, "USD", all[0].Code)

	all[0].Symbol = "X"
	assert.Equal(t, "$", SymbolOf("USD"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		code   string
		want   string
	}{
		{"usd grouped", decimal.NewFromFloat(1234.5), "USD", "$1,234.50"},
		{"eur", decimal.NewFromInt(122000), "EUR", "€122,000.00"},
		{"yen has no minor units", decimal.NewFromFloat(1234.4), "JPY", "¥1,234"},
		{"unknown falls back", decimal.NewFromInt(5), "ZZZ", "$5.00"},
		{"negative", decimal.NewFromInt(-7000), "GBP", "-£7,000.00"},
		{"zero", decimal.Zero, "INR", "₹0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.amount, tt.code))
		})
	}
}
