package domain

import "github.com/shopspring/decimal"

// Every currency quantity in the engine is rounded to cents at the point it
// is computed, not only at display time. Downstream sums are therefore stable
// across runs and across implementations.

// RoundCents rounds a currency amount to 2 decimal places, half away from
// zero.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// PercentOf applies a percentage rate (e.g. 7.25 means 7.25%) to an amount.
// The result is not rounded; callers round the named quantity they are
// computing.
func PercentOf(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(decimal.NewFromInt(100))
}

// ClampZero floors a currency amount at zero. Negative financed balances are
// never propagated out of the calculators.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
