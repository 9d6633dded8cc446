package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hyperbtc"
	"github.com/etnz/hyperbtc/coingecko"
	"github.com/etnz/hyperbtc/renderer"
	"github.com/google/subcommands"
)

// evalCmd holds the flags for the 'eval' subcommand.
type evalCmd struct {
	mode modeFlag
	live bool
}

func (*evalCmd) Name() string { return "eval" }
func (*evalCmd) Synopsis() string {
	return "compute the percentile and bitcoin needed for a net worth"
}
func (*evalCmd) Usage() string {
	return `hbc eval [-mode <dataset>] [-live] <net worth>

  Computes the wealth percentile a net worth sits at and the bitcoin that
  seat costs under hyperbitcoinization.

Usage Examples:
# The global rank of $85,000.
$ hbc eval 85000

# The US rank of $1.5M, with today's cost of the bitcoin needed.
$ hbc eval -mode us -live 1.5e6
`
}

func (c *evalCmd) SetFlags(f *flag.FlagSet) {
	c.mode.setFlags(f)
	f.BoolVar(&c.live, "live", false, "fetch today's bitcoin price and show the cost of the bitcoin needed")
}

func (c *evalCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.mode.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: eval takes exactly one net worth argument.")
		return subcommands.ExitUsageError
	}
	w, err := hyperbtc.ParseNetWorth(f.Arg(0), "USD")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	opts := renderer.ResultOptions{}
	if c.live {
		opts.Quote, opts.Live = hyperbtc.CurrentPrice(ctx, coingecko.Spot)
		opts.ShowQuote = true
	}
	printMarkdown(renderer.ResultMarkdown(hyperbtc.Evaluate(w, c.mode.ds), opts))
	return subcommands.ExitSuccess
}
