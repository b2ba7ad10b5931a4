package domain

// Currency is a 3-letter billing currency code.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCNY Currency = "CNY"
)

// Currencies returns the supported currencies in presentation order.
func Currencies() []Currency {
	return []Currency{CurrencyEUR, CurrencyUSD, CurrencyGBP, CurrencyJPY, CurrencyCNY}
}

// IsValid checks if the currency is one of the supported codes.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyGBP, CurrencyJPY, CurrencyCNY:
		return true
	}
	return false
}

// Symbol returns the display symbol for the currency.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyEUR:
		return "€"
	case CurrencyUSD:
		return "$"
	case CurrencyGBP:
		return "£"
	case CurrencyJPY:
		return "¥"
	case CurrencyCNY:
		return "元"
	default:
		return string(c)
	}
}

// ZeroDecimal reports whether amounts in this currency are rendered without
// decimal places.
func (c Currency) ZeroDecimal() bool {
	return c == CurrencyJPY || c == CurrencyCNY
}

// String returns the currency code for display purposes.
func (c Currency) String() string {
	return string(c)
}
