package domain

import (
	"math"
	"testing"
)

func TestBalance(t *testing.T) {
	cases := []struct {
		entries []float64
		exits   []float64
		want    float64
	}{
		{[]float64{100}, []float64{25}, 75},
		{nil, nil, 0},
		{[]float64{}, []float64{}, 0},
		{[]float64{10.10, 20.20, 30.30}, nil, 60.60},
		{[]float64{50}, []float64{80}, -30},
		{[]float64{0.1, 0.2}, []float64{0.3}, 0},
	}

	for i, c := range cases {
		if got := Balance(c.entries, c.exits); got != c.want {
			t.Fatalf("case %d: expected balance %v, got %v", i, c.want, got)
		}
	}
}

func TestLoanInterest(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		interest  float64
		totalDue  float64
	}{
		{800, 10, 80, 880},
		{0, 10, 0, 0},
		{800, 0, 0, 800},
		{1000, 5.5, 55, 1055},
		{333.33, 10, 33.333, 366.663},
	}

	for i, c := range cases {
		if got := LoanInterest(c.principal, c.rate); got != c.interest {
			t.Fatalf("case %d: expected interest %v, got %v", i, c.interest, got)
		}
		if got := LoanTotalDue(c.principal, c.rate); got != c.totalDue {
			t.Fatalf("case %d: expected total due %v, got %v", i, c.totalDue, got)
		}
	}
}

func TestTontinePot(t *testing.T) {
	cases := []struct {
		individual float64
		count      int
		pot        float64
		net        float64
	}{
		{500, 3, 1500, 1490},
		{10, 1, 10, 0},
		{25.50, 4, 102, 92},
	}

	for i, c := range cases {
		pot := TontinePot(c.individual, c.count)
		if pot != c.pot {
			t.Fatalf("case %d: expected pot %v, got %v", i, c.pot, pot)
		}
		if got := TontineNet(pot); got != c.net {
			t.Fatalf("case %d: expected net %v, got %v", i, c.net, got)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   bool
	}{
		{100, true},
		{0.01, true},
		{0, false},
		{-5, false},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}

	for i, c := range cases {
		if got := IsValidAmount(c.amount); got != c.want {
			t.Fatalf("case %d: IsValidAmount(%v) = %v, want %v", i, c.amount, got, c.want)
		}
	}

	if !IsValidRate(0) || !IsValidRate(10) {
		t.Fatal("valid rates rejected")
	}
	if IsValidRate(-1) || IsValidRate(math.NaN()) {
		t.Fatal("invalid rate accepted")
	}
}
