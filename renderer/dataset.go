package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/hyperbtc"
	md "github.com/nao1215/markdown"
)

// SwitchMarkdown confirms a mode switch with the dataset's vitals.
func SwitchMarkdown(ds *hyperbtc.Dataset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Switched to %s wealth distribution", strings.ToUpper(ds.Name())))

	global := hyperbtc.Global()
	sample := fmt.Sprintf("Sample: %s adults, %s wealth", grouped(ds.Adults()), shortMoney(ds.TotalWealth()))
	if ds != global {
		sample += fmt.Sprintf(" (%.0f%% of global)", ds.TotalWealth().PctOf(global.TotalWealth()))
	}
	doc.BulletList(
		fmt.Sprintf("Data: %s", ds.Source()),
		sample,
		fmt.Sprintf("Bitcoin allocation: %s BTC (%.0f%% of supply)",
			grouped(ds.Allocation().AsFloat()), ds.Allocation().PctOf(hyperbtc.TotalSupply)),
		fmt.Sprintf("Key thresholds: Top 1%%: %s+ | Top 10%%: %s+ | Median: %s",
			shortMoney(ds.WealthAtPercentile(99)),
			shortMoney(ds.WealthAtPercentile(90)),
			shortMoney(ds.WealthAtPercentile(50))),
	)

	return doc.String()
}
