package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ttb/internal/domain"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency domain.Currency
		expected string
	}{
		{
			name:     "should format euros with two decimals",
			amount:   1234.5,
			currency: domain.CurrencyEUR,
			expected: "1,234.50 €",
		},
		{
			name:     "should format dollars with two decimals",
			amount:   99.999,
			currency: domain.CurrencyUSD,
			expected: "100.00 $",
		},
		{
			name:     "should format pounds with thousands separators",
			amount:   1000000,
			currency: domain.CurrencyGBP,
			expected: "1,000,000.00 £",
		},
		{
			name:     "should truncate yuan to whole units",
			amount:   1234.5,
			currency: domain.CurrencyCNY,
			expected: "1,234 元",
		},
		{
			name:     "should truncate yen rather than round",
			amount:   1999.99,
			currency: domain.CurrencyJPY,
			expected: "1,999 ¥",
		},
		{
			name:     "should format a zero amount",
			amount:   0,
			currency: domain.CurrencyEUR,
			expected: "0.00 €",
		},
		{
			name:     "should format a zero yen amount",
			amount:   0,
			currency: domain.CurrencyJPY,
			expected: "0 ¥",
		},
		{
			name:     "should format a sub-unit amount",
			amount:   0.83,
			currency: domain.CurrencyEUR,
			expected: "0.83 €",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatAmount(tt.amount, tt.currency)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{
			name:     "should format zero as 00:00:00",
			duration: 0,
			expected: "00:00:00",
		},
		{
			name:     "should zero-pad all components",
			duration: time.Hour + time.Minute + time.Second,
			expected: "01:01:01",
		},
		{
			name:     "should format seconds only",
			duration: 45 * time.Second,
			expected: "00:00:45",
		},
		{
			name:     "should not cap hours at 24",
			duration: 120 * time.Hour,
			expected: "120:00:00",
		},
		{
			name:     "should clamp a negative duration to zero",
			duration: -time.Minute,
			expected: "00:00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatDuration(tt.duration)
			assert.Equal(t, tt.expected, result)
		})
	}
}
