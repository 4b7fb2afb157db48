// Package pricing holds the pure quoting arithmetic. Every monetary
// intermediate is rounded to two decimals, half away from zero, before it
// feeds the next step.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrInvalidMargin is returned when a margin or AIU percentage would make a
// price divisor zero or negative.
var ErrInvalidMargin = errors.New("margin must be lower than 100%")

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// pct returns p/100.
func pct(p float64) decimal.Decimal {
	return dec(p).Div(hundred)
}

// Round2 rounds a monetary amount to cents.
func Round2(v float64) float64 {
	return toFloat(dec(v))
}

// LineSubtotal returns qty * price rounded to cents.
func LineSubtotal(qty, price float64) float64 {
	return toFloat(round2(dec(qty).Mul(dec(price))))
}

func sumLines(lines [][2]float64) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(round2(dec(l[0]).Mul(dec(l[1]))))
	}
	return total
}

// grossUp returns cost / (1 - percent/100), rejecting percent >= 100.
func grossUp(cost decimal.Decimal, percent float64) (decimal.Decimal, error) {
	divisor := one.Sub(pct(percent))
	if !divisor.IsPositive() {
		return decimal.Zero, ErrInvalidMargin
	}
	return round2(cost.Div(divisor)), nil
}

// Sum adds amounts exactly and rounds the result to cents.
func Sum(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(dec(v))
	}
	return toFloat(total)
}
