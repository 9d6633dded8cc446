package hyperbtc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ErrInvalidNetWorth is returned when a net worth cannot be parsed or is negative.
var ErrInvalidNetWorth = errors.New("invalid net worth")

// ParseMoney reads a monetary amount the way people type them: an optional
// currency sign, thousands separators (the currency's or Go's underscore)
// and an optional decimal part.
//
//	"1,000,000" "$85000" "1_000_000" "1.5e6"
func ParseMoney(s, currency string) (Money, error) {
	c := *money.New(0, currency).Currency()
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, c.Grapheme)
	s = strings.ReplaceAll(s, c.Thousand, "")
	s = strings.ReplaceAll(s, "_", "")
	value, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("cannot parse %q as an amount: %w", s, err)
	}
	return Money{value: value, cur: currency}, nil
}

// ParseNetWorth parses a net worth in the given currency.
// Negative amounts are rejected with ErrInvalidNetWorth: the distributions
// contain negative thresholds, but a scenario starts from what you own.
func ParseNetWorth(s, currency string) (Money, error) {
	m, err := ParseMoney(s, currency)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %v", ErrInvalidNetWorth, err)
	}
	if m.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrInvalidNetWorth, m)
	}
	return m, nil
}

// functions that requires the full currency

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value, rounded to
// the unit. Wealth thresholds span from thousands to trillions, cents are noise.
func (m Money) String() string {
	cur := m.currency()
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.value.Round(0).IntPart())
}

// Simple wrapper around money.Money

func (m Money) Currency() string                { return m.cur }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Mul(n BTC) Money                 { return Money{value: m.value.Mul(n.value), cur: m.cur} }
func (m Money) Div(n BTC) Money                 { return Money{value: m.value.Div(n.value), cur: m.cur} }
func (m Money) DivPrice(n Money) BTC            { return BTC{value: m.value.Div(n.value)} }

// PctOf returns which percentage of n the amount m represents.
func (m Money) PctOf(n Money) Percent {
	return Percent(m.value.Div(n.value).InexactFloat64() * 100)
}

// AsFloat returns the amount as a float64, for display abbreviations only,
// calculations stay on the exact value.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}
