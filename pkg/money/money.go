// Package money renders monetary amounts for display.
package money

import "github.com/shopspring/decimal"

const CurrencySymbol = "$"

// Round rounds to cents, half away from zero.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatUSD renders amount as a fixed-point string with two decimals and a dollar prefix.
func FormatUSD(amount decimal.Decimal) string {
	return CurrencySymbol + Round(amount).StringFixed(2)
}

// FromCents builds a decimal amount from integer cents.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Shift(-2)
}
