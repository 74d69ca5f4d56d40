package services

import "github.com/shopspring/decimal"

// Amounts are stored as float64 with two decimal places; arithmetic goes through decimal so
// sums of many small amounts do not drift.

func roundAmount(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

func subAmount(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(2).InexactFloat64()
}

func exceeds(amount, limit float64) bool {
	return decimal.NewFromFloat(amount).GreaterThan(decimal.NewFromFloat(limit))
}
