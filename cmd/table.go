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

// tableCmd holds the flags for the 'table' subcommand.
type tableCmd struct {
	mode modeFlag
}

func (*tableCmd) Name() string { return "table" }
func (*tableCmd) Synopsis() string {
	return "display the bitcoin needed at every standard percentile"
}
func (*tableCmd) Usage() string {
	return `hbc table [-mode <dataset>]

  Displays the net worth threshold and the bitcoin it costs under
  hyperbitcoinization for every standard wealth percentile.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) { c.mode.setFlags(f) }

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.mode.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.TableMarkdown(hyperbtc.NewTableReport(c.mode.ds)))
	return subcommands.ExitSuccess
}
