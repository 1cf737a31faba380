package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/tradesim"
	"github.com/etnz/tradesim/renderer"
	"github.com/google/subcommands"
)

type buyCmd struct {
	quantity int
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "buy shares of a stock" }
func (*buyCmd) Usage() string {
	return `tsim buy -q <quantity> <symbol>

  Buys shares at the current market price and saves the account.

Usage Examples:
$ tsim buy -q 5 AAPL
`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.quantity, "q", 0, "Number of shares to buy.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return executeTrade(tradesim.KindBuy, p.quantity, f.Args())
}

// executeTrade runs one buy or sell against the saved account and saves it back.
func executeTrade(kind tradesim.TradeKind, quantity int, args []string) subcommands.ExitStatus {
	if len(args) != 1 {
		return fail(fmt.Errorf("expected exactly one stock symbol, got %d arguments", len(args)))
	}
	symbol := strings.ToUpper(args[0])

	market := tradesim.BuiltinMarket()
	stock := market.Get(symbol)
	if stock == nil {
		return fail(fmt.Errorf("%s: %w", symbol, tradesim.ErrUnknownSecurity))
	}

	store := openStore()
	account, err := loadAccount()
	if err != nil {
		return fail(err)
	}

	var tx tradesim.Transaction
	switch kind {
	case tradesim.KindBuy:
		tx = tradesim.NewBuy(time.Now(), stock.Symbol(), tradesim.Q(quantity), stock.Price())
	case tradesim.KindSell:
		tx = tradesim.NewSell(time.Now(), stock.Symbol(), tradesim.Q(quantity), stock.Price())
	}
	if err := tradesim.Execute(account, tx); err != nil {
		return fail(err)
	}
	if err := store.Save(account); err != nil {
		return fail(err)
	}
	fmt.Println(renderer.Transaction(tx))
	fmt.Printf("Available balance: %s\n", account.Balance())
	return subcommands.ExitSuccess
}
