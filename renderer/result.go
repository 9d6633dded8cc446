package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hyperbtc"
	md "github.com/nao1215/markdown"
)

// ResultOptions holds configuration for rendering a scenario result.
type ResultOptions struct {
	Quote     hyperbtc.Money // today's bitcoin price, for the reality check line
	Live      bool           // whether Quote came from the market or the fallback
	ShowQuote bool           // append the reality check line at all
}

// ResultMarkdown renders one scenario evaluation.
func ResultMarkdown(r hyperbtc.CalculationResult, opts ResultOptions) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	ds := r.Dataset
	doc.H1(fmt.Sprintf("Results for %s (%s, %s)", r.NetWorth, ds.Name(), ds.Tag()))

	lines := []string{
		fmt.Sprintf("%s percentile: %s", ds.Name(), r.Percentile),
		fmt.Sprintf("Bitcoin needed: %s BTC", r.BitcoinNeeded),
	}
	supplyLine := fmt.Sprintf("%% of total Bitcoin supply (%s): %s",
		shortBTC(hyperbtc.TotalSupply), r.PctOfTotalSupply.PreciseString())
	if ds.Allocation().LessThan(hyperbtc.TotalSupply) {
		// a partial allocation: show the share of it, then widen to the world
		lines = append(lines,
			fmt.Sprintf("%% of %s Bitcoin allocation (%s): %s",
				ds.Name(), shortBTC(ds.Allocation()), r.PctOfAllocation.PreciseString()),
			supplyLine,
			fmt.Sprintf("%% of %s wealth: %s", ds.Name(), wealthShare(r.PctOfWealth)),
			fmt.Sprintf("%% of global wealth: %s", wealthShare(r.PctOfGlobalWealth())),
		)
	} else {
		lines = append(lines,
			supplyLine,
			fmt.Sprintf("%% of global wealth: %s", wealthShare(r.PctOfWealth)),
		)
	}
	if opts.ShowQuote {
		label := "live"
		if !opts.Live {
			label = "fallback"
		}
		lines = append(lines, fmt.Sprintf("Today's cost at %s/BTC (%s): %s",
			opts.Quote, label, r.CostAt(opts.Quote)))
	}
	doc.BulletList(lines...)

	return doc.String()
}
