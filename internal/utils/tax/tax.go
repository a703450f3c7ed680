package tax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrRateMissing  = errors.New("tax rate not set")
	ErrRateNegative = errors.New("tax rate must not be negative")
)

var hundred = decimal.NewFromInt(100)

// ExtractInclusive returns the tax portion contained in a tax-inclusive total:
// total * rate / (100 + rate), rounded half away from zero to precision places.
func ExtractInclusive(total, ratePercent decimal.Decimal, precision int32) decimal.Decimal {
	if total.IsZero() || ratePercent.IsZero() {
		return decimal.Zero
	}
	return total.Mul(ratePercent).Div(hundred.Add(ratePercent)).Round(precision)
}

// ParseRate parses a stored rate such as "19", "7.5", "7,5" or "19 %".
func ParseRate(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return decimal.Zero, ErrRateMissing
	}
	s = strings.Replace(s, ",", ".", 1)
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid tax rate %q: %w", raw, err)
	}
	if rate.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrRateNegative, raw)
	}
	return rate, nil
}

// ResolveRate parses raw and falls back when it is unusable. The parse error is
// returned alongside the fallback so callers can report it.
func ResolveRate(raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	rate, err := ParseRate(raw)
	if err != nil {
		return fallback, err
	}
	return rate, nil
}
