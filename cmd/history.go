package cmd

import (
	"context"
	"flag"

	"github.com/etnz/tradesim/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "list all transactions in execution order" }
func (*historyCmd) Usage() string {
	return `tsim history

  Lists all transactions of the saved account, oldest first.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.History(account))
	return subcommands.ExitSuccess
}
