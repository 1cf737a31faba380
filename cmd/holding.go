package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradesim/renderer"
	"github.com/google/subcommands"
)

type holdingCmd struct{}

func (*holdingCmd) Name() string     { return "portfolio" }
func (*holdingCmd) Synopsis() string { return "show the saved holdings and cash balance" }
func (*holdingCmd) Usage() string {
	return `tsim portfolio

  Shows the holdings and the available cash balance of the saved account.
`
}

func (p *holdingCmd) SetFlags(f *flag.FlagSet) {}

func (p *holdingCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.Holding(account))
	return subcommands.ExitSuccess
}
