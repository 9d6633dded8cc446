package renderer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/etnz/hyperbtc"
	"github.com/guptarohit/asciigraph"
	md "github.com/nao1215/markdown"
)

const (
	chartHeight = 12
	chartWidth  = 64
)

// DistributionMarkdown renders the sampled distribution as two terminal
// charts: the full curve on a log10 scale, then a linear zoom on the
// percentiles reachable with less than one coin.
func DistributionMarkdown(rep *hyperbtc.DistributionReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	ds := rep.Dataset
	doc.H1(fmt.Sprintf("Bitcoin Needed to Maintain %s Wealth Percentile", ds.Name()))

	// the bottom of every distribution is in debt, log10 needs positive values
	var logs []float64
	var logFrom, logTo hyperbtc.Percent
	for _, s := range rep.Samples {
		if !s.BitcoinNeeded.IsPositive() {
			continue
		}
		if len(logs) == 0 {
			logFrom = s.Percentile
		}
		logTo = s.Percentile
		logs = append(logs, math.Log10(s.BitcoinNeeded.AsFloat()))
	}
	if len(logs) > 0 {
		doc.PlainText("Bitcoin needed per percentile, log10 scale (0 marks one whole coin):")
		doc.CodeBlocks(md.SyntaxHighlightNone, asciigraph.Plot(logs,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(fmt.Sprintf("%s wealth percentile %.3g to %.3g, log10(BTC)",
				ds.Name(), float64(logFrom), float64(logTo)))))
	}

	limit := hyperbtc.B(1)
	var zoom []float64
	var zoomFrom, zoomTo hyperbtc.Percent
	for _, s := range rep.Samples {
		if s.BitcoinNeeded.GreaterThan(limit) {
			continue
		}
		if len(zoom) == 0 {
			zoomFrom = s.Percentile
		}
		zoomTo = s.Percentile
		zoom = append(zoom, s.BitcoinNeeded.AsFloat())
	}
	if len(zoom) > 0 {
		doc.H2("Zoomed View (up to 1 BTC)")
		doc.PlainText("Same curve, linear scale, capped at one coin:")
		doc.CodeBlocks(md.SyntaxHighlightNone, asciigraph.Plot(zoom,
			asciigraph.Height(chartHeight),
			asciigraph.Width(chartWidth),
			asciigraph.Caption(fmt.Sprintf("%s wealth percentile %.3g to %.3g, BTC",
				ds.Name(), float64(zoomFrom), float64(zoomTo)))))
	}

	return doc.String()
}
