package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradesim"
	"github.com/google/subcommands"
)

type sellCmd struct {
	quantity int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell shares of a stock" }
func (*sellCmd) Usage() string {
	return `tsim sell -q <quantity> <symbol>

  Sells shares at the current market price and saves the account.

Usage Examples:
$ tsim sell -q 5 AAPL
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.quantity, "q", 0, "Number of shares to sell.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeTrade(tradesim.KindSell, p.quantity, f.Args())
}
