package utils

import (
	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly precision fractional digits.
// Example: 5.5 with precision 2 returns "5.50"; 12.3456 with precision 0 returns "12".
func FormatAmount(amount decimal.Decimal, precision int32) string {
	return amount.StringFixed(precision)
}
