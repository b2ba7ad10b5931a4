package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		currency Currency
		expected bool
	}{
		{name: "should accept EUR", currency: CurrencyEUR, expected: true},
		{name: "should accept USD", currency: CurrencyUSD, expected: true},
		{name: "should accept GBP", currency: CurrencyGBP, expected: true},
		{name: "should accept JPY", currency: CurrencyJPY, expected: true},
		{name: "should accept CNY", currency: CurrencyCNY, expected: true},
		{name: "should reject unknown code", currency: Currency("CHF"), expected: false},
		{name: "should reject empty code", currency: Currency(""), expected: false},
		{name: "should reject lowercase code", currency: Currency("eur"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.currency.IsValid())
		})
	}
}

func TestCurrency_Symbol(t *testing.T) {
	tests := []struct {
		currency Currency
		symbol   string
	}{
		{currency: CurrencyEUR, symbol: "€"},
		{currency: CurrencyUSD, symbol: "$"},
		{currency: CurrencyGBP, symbol: "£"},
		{currency: CurrencyJPY, symbol: "¥"},
		{currency: CurrencyCNY, symbol: "元"},
	}

	for _, tt := range tests {
		t.Run(string(tt.currency), func(t *testing.T) {
			assert.Equal(t, tt.symbol, tt.currency.Symbol())
		})
	}
}

func TestCurrency_ZeroDecimal(t *testing.T) {
	assert.True(t, CurrencyJPY.ZeroDecimal())
	assert.True(t, CurrencyCNY.ZeroDecimal())
	assert.False(t, CurrencyEUR.ZeroDecimal())
	assert.False(t, CurrencyUSD.ZeroDecimal())
	assert.False(t, CurrencyGBP.ZeroDecimal())
}

func TestCurrencies(t *testing.T) {
	currencies := Currencies()

	assert.Len(t, currencies, 5)
	for _, currency := range currencies {
		assert.True(t, currency.IsValid())
	}
}
