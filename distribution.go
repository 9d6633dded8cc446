package hyperbtc

// Distribution sampling bounds. The 0th percentile holds negative wealth in
// every dataset, sampling starts above it.
const (
	distributionFirst = Percent(1)
	distributionLast  = Percent(99.9)
	distributionCount = 50
)

// Sample pairs a percentile with the bitcoin needed to hold it.
type Sample struct {
	Percentile    Percent
	BitcoinNeeded BTC
}

// DistributionReport samples the whole distribution for plotting, evenly
// from the 1st to the 99.9th percentile.
type DistributionReport struct {
	Dataset *Dataset
	Samples []Sample
}

// NewDistributionReport evaluates the scenario at each sampled percentile.
func NewDistributionReport(ds *Dataset) *DistributionReport {
	step := (distributionLast - distributionFirst) / (distributionCount - 1)
	samples := make([]Sample, 0, distributionCount)
	for i := 0; i < distributionCount; i++ {
		p := distributionFirst + Percent(i)*step
		r := Evaluate(ds.WealthAtPercentile(p), ds)
		samples = append(samples, Sample{Percentile: p, BitcoinNeeded: r.BitcoinNeeded})
	}
	return &DistributionReport{Dataset: ds, Samples: samples}
}
