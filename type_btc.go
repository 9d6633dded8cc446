package hyperbtc

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}

}

// BTC represents an amount of bitcoin.
type BTC struct {
	value decimal.Decimal
}

func B[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) BTC {
	return BTC{value: newDecimal(value)}
}

func (b BTC) Equal(p BTC) bool           { return b.value.Equal(p.value) }
func (b BTC) LessThan(p BTC) bool        { return b.value.LessThan(p.value) }
func (b BTC) LessThanOrEqual(p BTC) bool { return b.value.LessThanOrEqual(p.value) }
func (b BTC) GreaterThan(p BTC) bool     { return b.value.GreaterThan(p.value) }
func (b BTC) Div(p BTC) BTC              { return BTC{value: b.value.Div(p.value)} }
func (b BTC) Mul(p BTC) BTC              { return BTC{value: b.value.Mul(p.value)} }
func (b BTC) Add(p BTC) BTC              { return BTC{value: b.value.Add(p.value)} }
func (b BTC) Sub(p BTC) BTC              { return BTC{value: b.value.Sub(p.value)} }
func (b BTC) IsNegative() bool           { return b.value.IsNegative() }
func (b BTC) IsPositive() bool           { return b.value.IsPositive() }
func (b BTC) IsZero() bool               { return b.value.IsZero() }

// String returns the amount with the eight decimals a satoshi calls for.
func (b BTC) String() string { return b.value.StringFixed(8) }

// StringFixed returns the amount rounded to the given number of decimals.
func (b BTC) StringFixed(places int32) string { return b.value.StringFixed(places) }

// PctOf returns which percentage of p the amount b represents.
func (b BTC) PctOf(p BTC) Percent {
	return Percent(b.value.Div(p.value).InexactFloat64() * 100)
}

// AsFloat returns the amount as a float64 for chart sampling.
func (b BTC) AsFloat() float64 { return b.value.InexactFloat64() }
