package hyperbtc

import "testing"

func TestPercentileOfWealth(t *testing.T) {
	tests := []struct {
		name    string
		dataset *Dataset
		wealth  Money
		want    Percent
	}{
		{"global breakpoint median", Global(), M(25_000, "USD"), 50},
		{"global breakpoint 100k", Global(), M(100_000, "USD"), 82.2},
		{"global midpoint", Global(), M(92_500, "USD"), 81.1},
		{"global inside first segment", Global(), M(-2_500, "USD"), 3.846153846153846},
		{"global clamp below", Global(), M(-999_999, "USD"), 0},
		{"global first breakpoint", Global(), M(-5_000, "USD"), 0},
		{"global clamp above", Global(), M(200_000_000, "USD"), 100},
		{"global last breakpoint", Global(), M(100_000_000, "USD"), 100},
		{"us breakpoint median", US(), M(121_000, "USD"), 50},
		{"us 100k", US(), M(100_000, "USD"), 45.04716981132075},
		{"us clamp below", US(), M(-50_000, "USD"), 0},
		{"us clamp above", US(), M(1_000_000_000, "USD"), 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.dataset.PercentileOfWealth(tc.wealth)
			if !got.Equal(tc.want) {
				t.Errorf("PercentileOfWealth(%s) = %v, want %v", tc.wealth, got, tc.want)
			}
		})
	}
}

func TestWealthAtPercentile(t *testing.T) {
	tests := []struct {
		name       string
		dataset    *Dataset
		percentile Percent
		want       Money
	}{
		{"global bottom", Global(), 0, M(-5_000, "USD")},
		{"global first percentile", Global(), 1, M(-4_350, "USD")},
		{"global median", Global(), 50, M(25_000, "USD")},
		{"global 99.9", Global(), 99.9, M(25_000_000, "USD")},
		{"global top", Global(), 100, M(100_000_000, "USD")},
		{"global clamp below", Global(), -5, M(-5_000, "USD")},
		{"global clamp above", Global(), 101, M(100_000_000, "USD")},
		{"us median", US(), 50, M(121_000, "USD")},
		{"us interpolated", US(), 30, M(36_200, "USD")},
		{"us top decile", US(), 90, M(1_200_000, "USD")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.dataset.WealthAtPercentile(tc.percentile)
			if !got.Equal(tc.want) {
				t.Errorf("WealthAtPercentile(%v) = %s, want %s", tc.percentile, got, tc.want)
			}
		})
	}
}

// The two conversions must agree with each other anywhere between the
// distribution's ends.
func TestPercentileRoundTrip(t *testing.T) {
	for _, ds := range []*Dataset{Global(), US()} {
		for _, p := range StandardPercentiles {
			got := ds.PercentileOfWealth(ds.WealthAtPercentile(p))
			if !got.Equal(p) {
				t.Errorf("%s: round trip of %v came back as %v", ds.Name(), p, got)
			}
		}
	}
}

// A richer person never ranks below a poorer one, clamped ends included.
func TestPercentileMonotonic(t *testing.T) {
	for _, ds := range []*Dataset{Global(), US()} {
		prev := ds.PercentileOfWealth(M(-1_000_000, "USD"))
		for w := float64(-20_000); w < 2e8; w = w*1.5 + 15_000 {
			got := ds.PercentileOfWealth(M(w, "USD"))
			if got < prev {
				t.Fatalf("%s: percentile dropped to %v at %s", ds.Name(), got, M(w, "USD"))
			}
			prev = got
		}
	}
}

func TestHyperPrice(t *testing.T) {
	global, us := Global().HyperPrice(), US().HyperPrice()
	// the US holds 30% of the wealth and 30% of the coins, the shares cancel
	if !global.Equal(us) {
		t.Errorf("HyperPrice() differ: global %s, us %s", global, us)
	}
	if got, want := global.String(), "$21,423,810"; got != want {
		t.Errorf("HyperPrice() = %s, want %s", got, want)
	}
}

func TestNewDatasetValidation(t *testing.T) {
	usd := func(v float64) Money { return M(v, "USD") }
	valid := []Breakpoint{{0, usd(-100)}, {50, usd(1_000)}, {100, usd(1_000_000)}}
	tests := []struct {
		name        string
		dsName      string
		adults      float64
		wealth      Money
		allocation  BTC
		breakpoints []Breakpoint
		wantErr     bool
	}{
		{"valid", "Test", 1e6, usd(1e9), B(1000), valid, false},
		{"missing name", "", 1e6, usd(1e9), B(1000), valid, true},
		{"no adults", "Test", 0, usd(1e9), B(1000), valid, true},
		{"zero wealth", "Test", 1e6, usd(0), B(1000), valid, true},
		{"zero allocation", "Test", 1e6, usd(1e9), B(0), valid, true},
		{"single breakpoint", "Test", 1e6, usd(1e9), B(1000), valid[:1], true},
		{"percentile above 100", "Test", 1e6, usd(1e9), B(1000),
			[]Breakpoint{{0, usd(0)}, {101, usd(100)}}, true},
		{"percentiles not increasing", "Test", 1e6, usd(1e9), B(1000),
			[]Breakpoint{{0, usd(0)}, {50, usd(100)}, {50, usd(200)}}, true},
		{"wealth not increasing", "Test", 1e6, usd(1e9), B(1000),
			[]Breakpoint{{0, usd(0)}, {50, usd(100)}, {100, usd(100)}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDataset(tc.dsName, "tag", "source", tc.adults, tc.wealth, tc.allocation, tc.breakpoints)
			if (err != nil) != tc.wantErr {
				t.Errorf("NewDataset() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestParseDataset(t *testing.T) {
	tests := []struct {
		in      string
		want    *Dataset
		wantErr bool
	}{
		{"global", Global(), false},
		{"GLOBAL", Global(), false},
		{" Us ", US(), false},
		{"us", US(), false},
		{"europe", nil, true},
		{"", nil, true},
	}
	for _, tc := range tests {
		got, err := ParseDataset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDataset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDataset(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
