package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/hyperbtc"
	"github.com/etnz/hyperbtc/coingecko"
	"github.com/etnz/hyperbtc/renderer"
	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	mode    modeFlag
	timeout time.Duration
}

func (*priceCmd) Name() string { return "price" }
func (*priceCmd) Synopsis() string {
	return "compare today's bitcoin price to the hyperbitcoinization price"
}
func (*priceCmd) Usage() string {
	return `hbc price [-mode <dataset>] [-timeout <duration>]

  Fetches today's bitcoin price and compares it to the price bitcoin clears
  at once the dataset's whole wealth has moved into its allocation.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	c.mode.setFlags(f)
	f.DurationVar(&c.timeout, "timeout", coingecko.DefaultTimeout, "how long to wait for the market before falling back")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.mode.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	quote, live := hyperbtc.CurrentPrice(ctx, coingecko.Spot)
	printMarkdown(renderer.PriceMarkdown(c.mode.ds, quote, live))
	return subcommands.ExitSuccess
}
