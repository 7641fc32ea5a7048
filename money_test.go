package footprint

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

// moneyEqual compares Money values by amount and currency.
var moneyEqual = cmp.Options{
	cmp.AllowUnexported(Money{}),
	cmp.Comparer(decimal.Decimal.Equal),
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.5, ""), "1234.50"},
		{M(1234.56, "USD"), "$1,234.56"},
		{M(0, ""), "0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_Weigh(t *testing.T) {
	testCases := []struct {
		amount    Money
		intensity float64
		want      float64
	}{
		{M(1_000_000, "EUR"), 1e-6, 1},
		{M(1_000_000, "EUR"), 2e-6, 2},
		{M(250_000.50, "EUR"), 0, 0},
		{M(0, "EUR"), 3e-6, 0},
		{M(100, ""), 0.25, 25},
	}
	for _, tc := range testCases {
		if got := tc.amount.Weigh(tc.intensity); got != tc.want {
			t.Errorf("%v.Weigh(%v) = %v, want %v", tc.amount, tc.intensity, got, tc.want)
		}
	}
}

func TestMoney_Add(t *testing.T) {
	sum, err := M(1, "EUR").Add(M(2, ""))
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if !cmp.Equal(M(3, "EUR"), sum, moneyEqual) {
		t.Errorf("Add() = %v, want 3 EUR", sum)
	}
	if _, err := M(1, "EUR").Add(M(1, "USD")); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add() of EUR and USD error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("1000000.25", "EUR")
	if err != nil {
		t.Fatalf("ParseMoney() failed: %v", err)
	}
	if !cmp.Equal(M(1000000.25, "EUR"), m, moneyEqual) {
		t.Errorf("ParseMoney() = %v", m)
	}
	if _, err := ParseMoney("a lot", "EUR"); err == nil {
		t.Error("ParseMoney(\"a lot\") expected an error")
	}
}
