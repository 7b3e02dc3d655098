package pricing

import "fmt"

// Money represents a monetary value stored in minor units (cents).
type Money = int64

// RoundHalfUpDiv divides amount by divisor rounding half-up to the nearest
// cent. Divisor must be positive; non-positive divisors yield 0.
func RoundHalfUpDiv(amount Money, divisor int64) Money {
	if divisor <= 0 {
		return 0
	}
	if amount >= 0 {
		return (amount*2 + divisor) / (2 * divisor)
	}
	return -((-amount*2 + divisor) / (2 * divisor))
}

// FormatUSD renders cents as a dollar string, e.g. 123450 -> "$1234.50".
func FormatUSD(amount Money) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s$%d.%02d", sign, amount/100, amount%100)
}
