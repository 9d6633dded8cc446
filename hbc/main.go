package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/hyperbtc/cmd"
	"github.com/etnz/hyperbtc/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete() answers the
// shell and exits when a completion is requested, and returns immediately
// otherwise.
func completion() {
	mode := map[string]complete.Predictor{
		"mode": predict.Set{"global", "us"},
	}
	topics, _ := docs.GetAllTopics()
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"repl": {Flags: mode},
			"eval": {Flags: map[string]complete.Predictor{
				"mode": predict.Set{"global", "us"},
				"live": predict.Nothing,
			}},
			"table": {Flags: mode},
			"plot":  {Flags: mode},
			"price": {Flags: map[string]complete.Predictor{
				"mode":    predict.Set{"global", "us"},
				"timeout": predict.Nothing,
			}},
			"topic":  {Args: predict.Set(append(topics, "readme", "*"))},
			"assist": {},
			"help":   {},
		},
	}
	c.Complete("hbc")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	// a bare invocation starts the interactive calculator
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "repl")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
