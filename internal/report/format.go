// Package report formats similarity scores for output.
package report

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatResult renders a score as a percentage with exactly two decimals,
// rounding half up on the score's shortest decimal form (0.12345 -> "12.35%").
func FormatResult(score float64) string {
	pct := decimal.NewFromFloat(score).Mul(hundred)
	return pct.Round(2).StringFixed(2) + "%"
}
