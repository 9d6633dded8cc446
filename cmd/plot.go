package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hyperbtc"
	"github.com/etnz/hyperbtc/renderer"
	"github.com/google/subcommands"
)

// plotCmd holds the flags for the 'plot' subcommand.
type plotCmd struct {
	mode modeFlag
}

func (*plotCmd) Name() string { return "plot" }
func (*plotCmd) Synopsis() string {
	return "chart the bitcoin needed across the wealth distribution"
}
func (*plotCmd) Usage() string {
	return `hbc plot [-mode <dataset>]

  Charts the bitcoin needed to hold a wealth percentile, across the whole
  distribution on a log scale and zoomed on the portion below one bitcoin.
`
}

func (c *plotCmd) SetFlags(f *flag.FlagSet) { c.mode.setFlags(f) }

func (c *plotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.mode.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.DistributionMarkdown(hyperbtc.NewDistributionReport(c.mode.ds)))
	return subcommands.ExitSuccess
}
