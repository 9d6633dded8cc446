package hyperbtc

import "testing"

func TestNewDistributionReport(t *testing.T) {
	rep := NewDistributionReport(Global())
	if len(rep.Samples) != distributionCount {
		t.Fatalf("got %d samples, want %d", len(rep.Samples), distributionCount)
	}
	if first := rep.Samples[0].Percentile; !first.Equal(distributionFirst) {
		t.Errorf("first sample at %v, want %v", first, distributionFirst)
	}
	if last := rep.Samples[len(rep.Samples)-1].Percentile; !last.Equal(distributionLast) {
		t.Errorf("last sample at %v, want %v", last, distributionLast)
	}
	for i := 1; i < len(rep.Samples); i++ {
		prev, cur := rep.Samples[i-1], rep.Samples[i]
		if cur.Percentile <= prev.Percentile {
			t.Errorf("sample %d: percentile %v not above previous %v", i, cur.Percentile, prev.Percentile)
		}
		if cur.BitcoinNeeded.LessThan(prev.BitcoinNeeded) {
			t.Errorf("sample %d: bitcoin %s below previous %s", i, cur.BitcoinNeeded, prev.BitcoinNeeded)
		}
	}
}
