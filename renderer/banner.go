package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hyperbtc"
	md "github.com/nao1215/markdown"
)

// BannerMarkdown is the header printed when a session opens: the built-in
// datasets at a glance, the clearing price, and the available commands.
func BannerMarkdown(global, us *hyperbtc.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bitcoin World Wealth Percentile Calculator")
	doc.BulletList(
		fmt.Sprintf("%s: %s adults, %s wealth", global.Name(), shortCount(global.Adults()), shortMoney(global.TotalWealth())),
		fmt.Sprintf("%s: %s adults (%.1f%%), %s wealth (%.0f%%)", us.Name(),
			shortCount(us.Adults()), us.Adults()/global.Adults()*100,
			shortMoney(us.TotalWealth()), us.TotalWealth().PctOf(global.TotalWealth())),
		fmt.Sprintf("Total Bitcoin: %s BTC", shortBTC(hyperbtc.TotalSupply)),
		fmt.Sprintf("%s Bitcoin allocation: %s BTC (%.0f%%)", us.Name(),
			shortBTC(us.Allocation()), us.Allocation().PctOf(hyperbtc.TotalSupply)),
		fmt.Sprintf("BTC Price (hyperbitcoinization): %s", global.HyperPrice()),
	)

	doc.H2("Commands")
	doc.BulletList(
		"`<net worth>`: bitcoin needed to keep that rank, e.g. `100000` or `$1,500,000`",
		fmt.Sprintf("`global`: switch to the global distribution (compete for %s BTC)", shortBTC(global.Allocation())),
		fmt.Sprintf("`us`: switch to the US distribution (compete for %s BTC)", shortBTC(us.Allocation())),
		"`table`: net worth thresholds at standard percentiles",
		"`plot`: bitcoin needed across the whole distribution",
		"`price`: live bitcoin price against the hyperbitcoinization price",
		"`help`: documentation topics, e.g. `help methodology`",
		"`quit`: exit",
	)

	return doc.String()
}
