// Package cmd implements the CLI application to run the trading simulator.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tradesim"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sessionCmd{}, "session")

	c.Register(&marketCmd{}, "views")
	c.Register(&holdingCmd{}, "views")
	c.Register(&historyCmd{}, "views")

	c.Register(&buyCmd{}, "trades")
	c.Register(&sellCmd{}, "trades")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountFile = flag.String("file", "portfolio.jsonl", "Path to the account file (JSONL format)")

// openStore returns the store over the app account file.
func openStore() *tradesim.Store { return tradesim.NewStore(*accountFile) }

// loadAccount loads the saved account, failing when none exists yet.
func loadAccount() (*tradesim.Account, error) {
	account, err := openStore().Load()
	if err == nil {
		return account, nil
	}
	if errors.Is(err, tradesim.ErrNoAccount) {
		return nil, fmt.Errorf("no saved account in %q, start one with 'tsim session'", *accountFile)
	}
	return nil, err
}

// printMarkdown renders markdown to the terminal. It falls back to the raw
// markdown when the terminal renderer fails.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}
