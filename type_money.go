package finboard

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

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
		panic("unreachable")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, e.g. "$1,234.50".
//
// Without a currency the value is printed with two decimals.
func (m Money) String() string {
	if m.cur == "" {
		return m.value.StringFixed(2)
	}
	cur := m.currency()
	dec := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
