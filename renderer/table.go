package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hyperbtc"
	md "github.com/nao1215/markdown"
)

// TableMarkdown renders the thresholds at each standard percentile.
func TableMarkdown(rep *hyperbtc.TableReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	ds := rep.Dataset
	doc.H1(fmt.Sprintf("Bitcoin Needed by %s Percentile", ds.Name()))

	supplyHeader := fmt.Sprintf("%% of Total Supply (%s)", shortBTC(hyperbtc.TotalSupply))
	if ds.Allocation().LessThan(hyperbtc.TotalSupply) {
		supplyHeader = fmt.Sprintf("%% of %s Allocation (%s)", ds.Name(), shortBTC(ds.Allocation()))
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{
			fmt.Sprintf("%s Percentile", ds.Name()),
			"Net Worth Threshold",
			"Bitcoin Needed",
			supplyHeader,
		},
		Rows: [][]string{},
	}
	for _, row := range rep.Rows {
		table.Rows = append(table.Rows, []string{
			pctLabel(row.Percentile),
			row.NetWorth.String(),
			row.BitcoinNeeded.String(),
			row.PctOfAllocation.PreciseString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
