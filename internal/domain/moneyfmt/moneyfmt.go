// Package moneyfmt renders currency amounts for display.
package moneyfmt

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Amount renders v with locale-aware thousands separators
// (1000 -> "1,000", 100.5 -> "100.5"). Non-numeric and NaN inputs render as
// "0". Amount is total: it never panics.
func Amount(v any) string {
	f, ok := asNumber(v)
	if !ok || math.IsNaN(f) {
		return "0"
	}
	return printer.Sprint(number.Decimal(f))
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
