package hyperbtc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Breakpoint anchors a wealth percentile to the minimum net worth it takes
// to reach it.
type Breakpoint struct {
	Percentile Percent
	Wealth     Money
}

// Dataset describes one wealth distribution: who is in it, how much they own
// in aggregate, and the share of the bitcoin supply they compete for.
//
// A Dataset is immutable once built, all evaluations read from it concurrently.
type Dataset struct {
	name        string // short name, also the switch command ("Global", "US")
	tag         string // short source tag for result titles ("UBS 2024")
	source      string // full name of the underlying study
	adults      float64
	totalWealth Money
	allocation  BTC
	breakpoints []Breakpoint
}

// NewDataset builds a distribution and checks it is usable for interpolation:
// at least two breakpoints, percentiles strictly increasing within [0, 100],
// and wealth strictly increasing along them.
func NewDataset(name, tag, source string, adults float64, totalWealth Money, allocation BTC, breakpoints []Breakpoint) (*Dataset, error) {
	if name == "" {
		return nil, fmt.Errorf("dataset needs a name")
	}
	if adults <= 0 {
		return nil, fmt.Errorf("dataset %s: adult population must be positive, got %g", name, adults)
	}
	if !totalWealth.IsPositive() {
		return nil, fmt.Errorf("dataset %s: total wealth must be positive, got %s", name, totalWealth)
	}
	if !allocation.IsPositive() {
		return nil, fmt.Errorf("dataset %s: bitcoin allocation must be positive, got %s", name, allocation)
	}
	if len(breakpoints) < 2 {
		return nil, fmt.Errorf("dataset %s: interpolation needs at least two breakpoints, got %d", name, len(breakpoints))
	}
	for i, bp := range breakpoints {
		if bp.Percentile < 0 || bp.Percentile > 100 {
			return nil, fmt.Errorf("dataset %s: percentile %v out of [0, 100]", name, bp.Percentile)
		}
		if i == 0 {
			continue
		}
		prev := breakpoints[i-1]
		if bp.Percentile <= prev.Percentile {
			return nil, fmt.Errorf("dataset %s: percentiles must be strictly increasing, got %v after %v", name, bp.Percentile, prev.Percentile)
		}
		if !prev.Wealth.LessThan(bp.Wealth) {
			return nil, fmt.Errorf("dataset %s: wealth must be strictly increasing, got %s at %v after %s", name, bp.Wealth, bp.Percentile, prev.Wealth)
		}
	}
	return &Dataset{
		name:        name,
		tag:         tag,
		source:      source,
		adults:      adults,
		totalWealth: totalWealth,
		allocation:  allocation,
		breakpoints: breakpoints,
	}, nil
}

func (ds *Dataset) Name() string       { return ds.name }
func (ds *Dataset) Tag() string        { return ds.tag }
func (ds *Dataset) Source() string     { return ds.source }
func (ds *Dataset) Adults() float64    { return ds.adults }
func (ds *Dataset) TotalWealth() Money { return ds.totalWealth }
func (ds *Dataset) Allocation() BTC    { return ds.allocation }

// Breakpoints returns a copy of the distribution's anchor points.
func (ds *Dataset) Breakpoints() []Breakpoint {
	bps := make([]Breakpoint, len(ds.breakpoints))
	copy(bps, ds.breakpoints)
	return bps
}

// HyperPrice is the bitcoin price once the dataset's whole wealth has moved
// into its bitcoin allocation. Both builtins resolve to the same price, the
// US holds 30% of the wealth and 30% of the coins.
func (ds *Dataset) HyperPrice() Money {
	return ds.totalWealth.Div(ds.allocation)
}

// PercentileOfWealth returns the wealth percentile a net worth falls in,
// interpolating linearly between breakpoints. Net worths below the first
// breakpoint clamp to its percentile, above the last to the last's.
func (ds *Dataset) PercentileOfWealth(w Money) Percent {
	first, last := ds.breakpoints[0], ds.breakpoints[len(ds.breakpoints)-1]
	if w.LessThanOrEqual(first.Wealth) {
		return first.Percentile
	}
	if w.GreaterThanOrEqual(last.Wealth) {
		return last.Percentile
	}
	for i := 0; i < len(ds.breakpoints)-1; i++ {
		lo, hi := ds.breakpoints[i], ds.breakpoints[i+1]
		if w.GreaterThanOrEqual(lo.Wealth) && w.LessThanOrEqual(hi.Wealth) {
			ratio := w.Sub(lo.Wealth).value.Div(hi.Wealth.Sub(lo.Wealth).value).InexactFloat64()
			return lo.Percentile + Percent(ratio)*(hi.Percentile-lo.Percentile)
		}
	}
	// unreachable, the clamps above bound w inside the breakpoints
	return last.Percentile
}

// WealthAtPercentile returns the net worth it takes to sit at a percentile,
// interpolating linearly between breakpoints. Percentiles outside the
// breakpoint range clamp to the first or last threshold.
func (ds *Dataset) WealthAtPercentile(p Percent) Money {
	first, last := ds.breakpoints[0], ds.breakpoints[len(ds.breakpoints)-1]
	if p <= first.Percentile {
		return first.Wealth
	}
	if p >= last.Percentile {
		return last.Wealth
	}
	for i := 0; i < len(ds.breakpoints)-1; i++ {
		lo, hi := ds.breakpoints[i], ds.breakpoints[i+1]
		if p >= lo.Percentile && p <= hi.Percentile {
			ratio := decimal.NewFromFloat(float64((p - lo.Percentile) / (hi.Percentile - lo.Percentile)))
			span := hi.Wealth.Sub(lo.Wealth)
			return lo.Wealth.Add(Money{value: span.value.Mul(ratio), cur: span.cur})
		}
	}
	// unreachable, the clamps above bound p inside the breakpoints
	return last.Wealth
}

// ParseDataset maps a dataset name, as typed in the prompt or a -mode flag,
// to its builtin distribution.
func ParseDataset(name string) (*Dataset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "global":
		return Global(), nil
	case "us":
		return US(), nil
	default:
		return nil, fmt.Errorf("unknown dataset %q (available: global, us)", name)
	}
}

// Global returns the built-in global wealth distribution.
//
// Aggregates and the wealth pyramid boundaries (39.5%, 82.2%, top 1.5%) come
// from the UBS Global Wealth Report 2024, the remaining anchors are
// interpolation estimates between them.
func Global() *Dataset { return globalDataset }

// US returns the built-in US wealth distribution, from the Federal Reserve
// Survey of Consumer Finances. The US holds roughly 30% of global wealth
// with 6.9% of the adults, and competes for a proportional 30% of the coins.
func US() *Dataset { return usDataset }

var (
	globalDataset = must(NewDataset(
		"Global", "UBS 2024", "UBS Global Wealth Report 2024",
		3.767e9, M(449.9e12, "USD"), B(21_000_000),
		[]Breakpoint{
			{0, M(-5_000, "USD")},
			{10, M(1_500, "USD")},
			{20, M(3_500, "USD")},
			{30, M(6_000, "USD")},
			{39.5, M(10_000, "USD")},
			{50, M(25_000, "USD")},
			{60, M(40_000, "USD")},
			{70, M(60_000, "USD")},
			{80, M(85_000, "USD")},
			{82.2, M(100_000, "USD")},
			{90, M(200_000, "USD")},
			{95, M(500_000, "USD")},
			{98.5, M(1_000_000, "USD")},
			{99, M(1_500_000, "USD")},
			{99.5, M(5_000_000, "USD")},
			{99.9, M(25_000_000, "USD")},
			{100, M(100_000_000, "USD")},
		},
	))

	usDataset = must(NewDataset(
		"US", "Fed SCF", "Federal Reserve Survey of Consumer Finances",
		260e6, M(134.97e12, "USD"), B(6_300_000),
		[]Breakpoint{
			{0, M(-10_000, "USD")},
			{10, M(0, "USD")},
			{25, M(15_000, "USD")},
			{50, M(121_000, "USD")},
			{75, M(403_000, "USD")},
			{90, M(1_200_000, "USD")},
			{95, M(2_400_000, "USD")},
			{99, M(11_100_000, "USD")},
			{99.5, M(21_000_000, "USD")},
			{99.9, M(43_200_000, "USD")},
			{100, M(500_000_000, "USD")},
		},
	))
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
