package footprint

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount, typically the outstanding amount of a
// loan.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates money from a number and an ISO 4217 currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney parses a decimal amount.
func ParseMoney(amount, currency string) (Money, error) {
	v, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return Money{value: v, cur: currency}, nil
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// IsNegative reports whether m is strictly below zero.
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// Add returns m+n. The "" currency is compatible with any other.
func (m Money) Add(n Money) (Money, error) {
	c, err := cur(m, n)
	if err != nil {
		return Money{}, err
	}
	return Money{value: m.value.Add(n.value), cur: c}, nil
}

// makes the "" currency totally weak.
func cur(a, b Money) (string, error) {
	switch {
	case a.cur == "":
		return b.cur, nil
	case b.cur == "":
		return a.cur, nil
	case a.cur != b.cur:
		return "", fmt.Errorf("%s != %s: %w", a.cur, b.cur, ErrCurrencyMismatch)
	}
	return a.cur, nil
}

// Weigh returns intensity × amount.
//
// The product is computed in decimal, so that intensities given with a short
// decimal representation (1e-6 per EUR) give exact impacts (1 for a million).
func (m Money) Weigh(intensity float64) float64 {
	if intensity == 0 || m.value.IsZero() {
		return 0
	}
	return decimal.NewFromFloat(intensity).Mul(m.value).InexactFloat64()
}

// appendJSON appends the amount and currency members of an object.
func (m Money) appendJSON(w *jsonObjectWriter) *jsonObjectWriter {
	w.Append("amount", json.Number(m.value.String()))
	return w.Optional("currency", m.cur)
}
