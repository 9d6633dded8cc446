// Package cmd implements the CLI application to explore bitcoin wealth
// percentiles.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/hyperbtc"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&replCmd{}, "calculator")
	c.Register(&evalCmd{}, "calculator")
	c.Register(&tableCmd{}, "calculator")
	c.Register(&plotCmd{}, "calculator")

	c.Register(&priceCmd{}, "market")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "documentation")
}

// renderMarkdown renders markdown for the terminal. Raw markdown is still
// readable, so rendering failures fall back to the source text.
func renderMarkdown(md string) string {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		return md
	}
	return out
}

func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }

// modeFlag is the -mode flag shared by every command that ranks against a
// wealth distribution.
type modeFlag struct {
	mode string
	// processed
	ds *hyperbtc.Dataset
}

func (m *modeFlag) setFlags(f *flag.FlagSet) {
	f.StringVar(&m.mode, "mode", "global", "wealth distribution to rank against (global, us)")
}

func (m *modeFlag) init() error {
	ds, err := hyperbtc.ParseDataset(m.mode)
	if err != nil {
		return err
	}
	m.ds = ds
	return nil
}
