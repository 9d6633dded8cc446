package hyperbtc

import "testing"

func TestNewTableReport(t *testing.T) {
	for _, ds := range []*Dataset{Global(), US()} {
		rep := NewTableReport(ds)
		if len(rep.Rows) != len(StandardPercentiles) {
			t.Fatalf("%s: got %d rows, want %d", ds.Name(), len(rep.Rows), len(StandardPercentiles))
		}
		for i, row := range rep.Rows {
			if !row.Percentile.Equal(StandardPercentiles[i]) {
				t.Errorf("%s row %d: Percentile = %v, want %v", ds.Name(), i, row.Percentile, StandardPercentiles[i])
			}
			if i > 0 && row.NetWorth.LessThan(rep.Rows[i-1].NetWorth) {
				t.Errorf("%s row %d: threshold %s below previous %s", ds.Name(), i, row.NetWorth, rep.Rows[i-1].NetWorth)
			}
			if i > 0 && row.BitcoinNeeded.LessThan(rep.Rows[i-1].BitcoinNeeded) {
				t.Errorf("%s row %d: bitcoin %s below previous %s", ds.Name(), i, row.BitcoinNeeded, rep.Rows[i-1].BitcoinNeeded)
			}
		}
	}
}

func TestTableReportThresholds(t *testing.T) {
	rep := NewTableReport(Global())
	rows := make(map[Percent]CalculationResult, len(rep.Rows))
	for _, row := range rep.Rows {
		rows[row.Percentile] = row
	}

	if got, want := rows[50].NetWorth, M(25_000, "USD"); !got.Equal(want) {
		t.Errorf("median threshold = %s, want %s", got, want)
	}
	if got, want := rows[50].BitcoinNeeded.String(), "0.00116693"; got != want {
		t.Errorf("median bitcoin = %s, want %s", got, want)
	}
	if got, want := rows[99.9].NetWorth, M(25_000_000, "USD"); !got.Equal(want) {
		t.Errorf("99.9 threshold = %s, want %s", got, want)
	}
	// the first percentile threshold is negative, in debt like the real bottom
	if !rows[1].NetWorth.IsNegative() {
		t.Errorf("first percentile threshold = %s, want negative", rows[1].NetWorth)
	}
}
