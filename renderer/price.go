package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/hyperbtc"
	md "github.com/nao1215/markdown"
)

// PriceMarkdown renders today's bitcoin price against the scenario's
// clearing price.
func PriceMarkdown(ds *hyperbtc.Dataset, quote hyperbtc.Money, live bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Bitcoin Price Reality Check")

	quoteLine := fmt.Sprintf("Live market price: %s", quote)
	if !live {
		quoteLine = fmt.Sprintf("Fallback price: %s (market unreachable)", quote)
	}
	hyper := ds.HyperPrice()
	doc.BulletList(
		quoteLine,
		fmt.Sprintf("Hyperbitcoinization price (%s): %s", ds.Name(), hyper),
		fmt.Sprintf("Multiple between the two: %.0fx", float64(hyper.PctOf(quote))/100),
	)

	return doc.String()
}
