package hyperbtc

// StandardPercentiles is the fixed set of percentiles the table view walks,
// the same for every dataset so that tables stay comparable across modes.
var StandardPercentiles = []Percent{1, 5, 10, 20, 30, 40, 50, 60, 70, 80, 90, 95, 99, 99.9}

// TableReport holds one scenario evaluation per standard percentile.
type TableReport struct {
	Dataset *Dataset
	Rows    []CalculationResult
}

// NewTableReport evaluates the scenario at each standard percentile's wealth
// threshold.
func NewTableReport(ds *Dataset) *TableReport {
	rows := make([]CalculationResult, 0, len(StandardPercentiles))
	for _, p := range StandardPercentiles {
		r := Evaluate(ds.WealthAtPercentile(p), ds)
		// keep the requested percentile, the round trip through wealth may drift
		r.Percentile = p
		rows = append(rows, r)
	}
	return &TableReport{Dataset: ds, Rows: rows}
}
