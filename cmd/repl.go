package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/hyperbtc"
	"github.com/etnz/hyperbtc/coingecko"
	"github.com/etnz/hyperbtc/docs"
	"github.com/etnz/hyperbtc/renderer"
	"github.com/google/subcommands"
)

// replCmd holds the flags for the 'repl' subcommand.
type replCmd struct {
	mode modeFlag
}

func (*replCmd) Name() string     { return "repl" }
func (*replCmd) Synopsis() string { return "start the interactive wealth percentile calculator" }
func (*replCmd) Usage() string {
	return `hbc repl [-mode <dataset>]

  Starts the interactive calculator. Type a net worth to see the wealth
  percentile it sits at and the bitcoin that seat costs under
  hyperbitcoinization, or one of the commands listed in the banner
  (global, us, table, plot, price, help, quit).
`
}

func (c *replCmd) SetFlags(f *flag.FlagSet) { c.mode.setFlags(f) }

func (c *replCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.mode.init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	s := &session{
		ds:    c.mode.ds,
		fetch: coingecko.Spot,
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
	}
	if err := s.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

const prompt = "> "

// session is one interactive calculator run.
type session struct {
	ds    *hyperbtc.Dataset
	fetch hyperbtc.PriceFunc
	in    *bufio.Reader
	out   io.Writer

	// the spot price is fetched once per session, on the first command that
	// needs it, and served from memory afterwards
	quote   hyperbtc.Money
	live    bool
	fetched bool
}

func (s *session) run(ctx context.Context) error {
	s.print(renderer.BannerMarkdown(hyperbtc.Global(), hyperbtc.US()))
	for {
		fmt.Fprint(s.out, prompt)
		line, readErr := s.in.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			if quit := s.dispatch(ctx, line); quit {
				return nil
			}
		}
		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			}
			return readErr
		}
	}
}

// dispatch parses and runs one prompt line, reporting whether the session is
// over. Bad input never ends the session.
func (s *session) dispatch(ctx context.Context, line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintln(s.out, "Please enter a valid number or command.")
		return false
	}
	if _, ok := cmd.(quitCommand); ok {
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	}
	md, err := s.execute(ctx, cmd)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return false
	}
	s.print(md)
	return false
}

func (s *session) execute(ctx context.Context, cmd command) (string, error) {
	switch c := cmd.(type) {
	case evalCommand:
		quote, live := s.currentPrice(ctx)
		r := hyperbtc.Evaluate(c.netWorth, s.ds)
		return renderer.ResultMarkdown(r, renderer.ResultOptions{Quote: quote, Live: live, ShowQuote: true}), nil
	case switchCommand:
		s.ds = c.ds
		return renderer.SwitchMarkdown(s.ds), nil
	case tableCommand:
		return renderer.TableMarkdown(hyperbtc.NewTableReport(s.ds)), nil
	case plotCommand:
		return renderer.DistributionMarkdown(hyperbtc.NewDistributionReport(s.ds)), nil
	case priceCommand:
		quote, live := s.currentPrice(ctx)
		return renderer.PriceMarkdown(s.ds, quote, live), nil
	case helpCommand:
		if len(c.topics) == 0 {
			return docs.GetTopic("readme")
		}
		return docs.GetTopics(c.topics...)
	}
	return "", fmt.Errorf("unknown command %T", cmd)
}

func (s *session) currentPrice(ctx context.Context) (hyperbtc.Money, bool) {
	if !s.fetched {
		s.quote, s.live = hyperbtc.CurrentPrice(ctx, s.fetch)
		s.fetched = true
	}
	return s.quote, s.live
}

func (s *session) print(md string) { fmt.Fprint(s.out, renderMarkdown(md)) }

// command is one parsed prompt line.
type command interface{ isCommand() }

type evalCommand struct{ netWorth hyperbtc.Money }
type switchCommand struct{ ds *hyperbtc.Dataset }
type tableCommand struct{}
type plotCommand struct{}
type priceCommand struct{}
type helpCommand struct{ topics []string }
type quitCommand struct{}

func (evalCommand) isCommand()   {}
func (switchCommand) isCommand() {}
func (tableCommand) isCommand()  {}
func (plotCommand) isCommand()   {}
func (priceCommand) isCommand()  {}
func (helpCommand) isCommand()   {}
func (quitCommand) isCommand()   {}

// parseCommand reads one prompt line. Keywords win over numbers, anything
// else must parse as a net worth.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command")
	}
	keyword := strings.ToLower(fields[0])
	if keyword == "help" || keyword == "h" || keyword == "?" {
		if len(fields) > 1 {
			return helpCommand{topics: fields[1:]}, nil
		}
		return helpCommand{}, nil
	}
	if len(fields) == 1 {
		switch keyword {
		case "quit", "exit", "q":
			return quitCommand{}, nil
		case "table":
			return tableCommand{}, nil
		case "plot":
			return plotCommand{}, nil
		case "price":
			return priceCommand{}, nil
		case "global", "us":
			ds, err := hyperbtc.ParseDataset(keyword)
			if err != nil {
				return nil, err
			}
			return switchCommand{ds: ds}, nil
		}
	}
	w, err := hyperbtc.ParseNetWorth(line, "USD")
	if err != nil {
		return nil, err
	}
	return evalCommand{netWorth: w}, nil
}
