package procurement

import "github.com/shopspring/decimal"

// GrossMarkup is the fixed VAT-like factor applied to a line's net value.
var GrossMarkup = decimal.RequireFromString("1.15")

// Round2 rounds a monetary amount to two decimal places, half away from zero.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// NetValue returns quantity × unit price rounded to two decimals.
func NetValue(quantity int, unitPrice float64) float64 {
	f, _ := decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(unitPrice)).Round(2).Float64()
	return f
}

// GrossValue applies the markup to a net value and rounds to two decimals.
func GrossValue(net float64) float64 {
	f, _ := decimal.NewFromFloat(net).Mul(GrossMarkup).Round(2).Float64()
	return f
}

// SumNet totals the net values of the given amounts and rounds the result.
func SumNet(values ...float64) float64 {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Round(2).Float64()
	return f
}
