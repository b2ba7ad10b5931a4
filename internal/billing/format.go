package billing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ttb/internal/domain"
)

// FormatAmount renders a billable amount with its currency symbol. Zero-decimal
// currencies are truncated to whole units, not rounded; all others get exactly
// two decimal places. Thousands separators are applied in both cases.
func FormatAmount(amount float64, currency domain.Currency) string {
	if currency.ZeroDecimal() {
		return humanize.Comma(int64(math.Trunc(amount))) + " " + currency.Symbol()
	}

	formatted := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(formatted, ".", 2)
	whole, _ := strconv.ParseInt(parts[0], 10, 64)
	return humanize.Comma(whole) + "." + parts[1] + " " + currency.Symbol()
}

// FormatDuration renders a duration as HH:MM:SS. Hours are not capped at 24;
// 120 hours renders as "120:00:00".
func FormatDuration(d time.Duration) string {
	totalSeconds := int64(d.Seconds())
	if totalSeconds < 0 {
		totalSeconds = 0
	}

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
