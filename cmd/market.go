package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradesim"
	"github.com/etnz/tradesim/renderer"
	"github.com/google/subcommands"
)

type marketCmd struct{}

func (*marketCmd) Name() string     { return "market" }
func (*marketCmd) Synopsis() string { return "list all stocks and their current prices" }
func (*marketCmd) Usage() string {
	return `tsim market

  Lists all tradable stocks with their current prices.
`
}

func (p *marketCmd) SetFlags(f *flag.FlagSet) {}

func (p *marketCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Market(tradesim.BuiltinMarket()))
	return subcommands.ExitSuccess
}
