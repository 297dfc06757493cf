package entity

import (
	"fmt"
	"math"
	"strconv"

	errs "github.com/salapeso/savings-api/internal/domain/error"
)

// Monetary values are stored in centavos (int64) to avoid floating point
// drift in ledger sums. The API edge speaks decimal numbers, so the
// conversions here are the only place floats touch money.

// maxAmountCents caps a single amount at a value safely representable both
// as cents and when converted back through float64
const maxAmountCents = int64(1) << 52

// CentsFromDecimal converts a decimal number (as received in JSON) to cents.
// Amounts may be negative: withdrawals and downward balance adjustments are
// regular signed entries.
func CentsFromDecimal(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: not a finite number", errs.ErrInvalidAmount)
	}

	cents := math.Round(amount * 100)
	if cents > float64(maxAmountCents) || cents < -float64(maxAmountCents) {
		return 0, errs.ErrAmountOverflow
	}

	return int64(cents), nil
}

// DecimalFromCents converts cents back to the decimal number used on the wire
func DecimalFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// FormatCents converts cents to a decimal string with exactly two places.
// 1015 becomes "10.15", -50 becomes "-0.50".
func FormatCents(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	s := strconv.FormatInt(cents, 10)
	for len(s) < 3 {
		s = "0" + s
	}

	pos := len(s) - 2
	out := s[:pos] + "." + s[pos:]
	if negative {
		return "-" + out
	}
	return out
}
