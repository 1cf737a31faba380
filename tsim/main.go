package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tradesim/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion, a no-op outside of a completion request.
	completion := &complete.Command{
		Sub: map[string]*complete.Command{
			"session":   {},
			"market":    {},
			"portfolio": {},
			"history":   {},
			"buy":       {Flags: map[string]complete.Predictor{"q": predict.Something}},
			"sell":      {Flags: map[string]complete.Predictor{"q": predict.Something}},
		},
		Flags: map[string]complete.Predictor{"file": predict.Files("*.jsonl")},
	}
	completion.Complete("tsim")

	// Running the binary bare starts the interactive session.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "session")
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
