package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// DefaultInterestRate applied to school loans when none is given (percent)
const DefaultInterestRate = 10.0

// TontineMaintenanceFee is the flat fee deducted once per tontine payout
const TontineMaintenanceFee = 10.0

// IsValidAmount rejects NaN, infinities and non-positive amounts
func IsValidAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount > 0
}

// IsValidRate rejects NaN, infinities and negative rates. Zero is allowed.
func IsValidRate(rate float64) bool {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return false
	}
	return rate >= 0
}

// Sum adds amounts exactly, avoiding float accumulation drift
func Sum(amounts []float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}

// Balance computes Σ(entries) − Σ(exits) over the full collections
func Balance(entries, exits []float64) float64 {
	in := decimal.NewFromFloat(Sum(entries))
	out := decimal.NewFromFloat(Sum(exits))
	f, _ := in.Sub(out).Float64()
	return f
}

// LoanInterest computes principal × rate / 100
func LoanInterest(principal, rate float64) float64 {
	p := decimal.NewFromFloat(principal)
	r := decimal.NewFromFloat(rate)
	f, _ := p.Mul(r).Div(decimal.NewFromInt(100)).Float64()
	return f
}

// LoanTotalDue computes principal plus its interest
func LoanTotalDue(principal, rate float64) float64 {
	p := decimal.NewFromFloat(principal)
	i := decimal.NewFromFloat(LoanInterest(principal, rate))
	f, _ := p.Add(i).Float64()
	return f
}

// TontinePot computes the full pot collected for one beneficiary
func TontinePot(individualAmount float64, participantCount int) float64 {
	a := decimal.NewFromFloat(individualAmount)
	n := decimal.NewFromInt(int64(participantCount))
	f, _ := a.Mul(n).Float64()
	return f
}

// TontineNet deducts the flat maintenance fee from the pot, exactly once
func TontineNet(pot float64) float64 {
	p := decimal.NewFromFloat(pot)
	fee := decimal.NewFromFloat(TontineMaintenanceFee)
	f, _ := p.Sub(fee).Float64()
	return f
}
