package utils

import (
	"github.com/shopspring/decimal"
)

// RatePrecision is the number of decimal places rates are displayed with.
const RatePrecision = 6

// RoundRate rounds a rate half away from zero to the given number of places.
// Example: RoundRate(0.9127418765972983, 6) returns 0.912742
func RoundRate(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
