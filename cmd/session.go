package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/tradesim"
	"github.com/etnz/tradesim/renderer"
	"github.com/google/subcommands"
)

type sessionCmd struct{}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "run an interactive trading session" }
func (*sessionCmd) Usage() string {
	return `tsim session

  Runs the interactive menu loop: view the market, buy and sell stocks,
  inspect the portfolio and history, then save and exit. A fresh account is
  created on first run.
`
}

func (p *sessionCmd) SetFlags(f *flag.FlagSet) {}

func (p *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()

	stdin := bufio.NewScanner(os.Stdin)

	account, err := store.Load()
	switch {
	case err == nil:
		fmt.Printf("Loaded portfolio data for user: %s\n", account.Name())
	case errors.Is(err, tradesim.ErrNoAccount):
		account, err = createAccount(stdin, os.Stdout)
		if err != nil {
			return fail(err)
		}
	default:
		// A present but unreadable file is not a first run: stop rather than
		// overwrite it on exit.
		return fail(err)
	}

	session := &Session{
		Market:  tradesim.BuiltinMarket(),
		Account: account,
		Out:     os.Stdout,
		Render:  printMarkdown,
	}
	session.scanner = stdin
	if err := session.Run(); err != nil {
		return fail(err)
	}

	if err := store.Save(account); err != nil {
		return fail(err)
	}
	fmt.Printf("Portfolio saved to %s. Goodbye, %s!\n", store.Path(), account.Name())
	return subcommands.ExitSuccess
}

// createAccount prompts for a name and opens an account with the standard
// opening balance.
func createAccount(scanner *bufio.Scanner, out io.Writer) (*tradesim.Account, error) {
	fmt.Fprint(out, "Enter your name: ")
	if !scanner.Scan() {
		return nil, errors.New("input closed before a name was entered")
	}
	name := strings.TrimSpace(scanner.Text())
	if name == "" {
		name = "trader"
	}
	account := tradesim.NewAccount(name, tradesim.OpeningBalance())
	fmt.Fprintf(out, "Welcome, %s! Starting balance %s\n", name, account.Balance())
	return account, nil
}

// Session is one interactive run of the simulator over an account.
//
// The market and the account are passed in explicitly; the session owns no
// global state.
type Session struct {
	Market  *tradesim.Market
	Account *tradesim.Account
	In      io.Reader
	Out     io.Writer
	Render  func(markdown string) // nil means print markdown as is

	scanner *bufio.Scanner
}

// Run loops on the menu until Save & Exit is chosen. It returns an error only
// when the input closes before an explicit exit; in that case nothing has
// been saved.
func (s *Session) Run() error {
	if s.scanner == nil {
		s.scanner = bufio.NewScanner(s.In)
	}
	if s.Render == nil {
		s.Render = func(markdown string) { fmt.Fprint(s.Out, markdown) }
	}

	for {
		s.printMenu()
		choice, err := s.readLine("Enter your choice: ")
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.Render(renderer.Market(s.Market))
		case "2":
			if err := s.trade(tradesim.KindBuy); err != nil {
				return err
			}
		case "3":
			if err := s.trade(tradesim.KindSell); err != nil {
				return err
			}
		case "4":
			s.Render(renderer.Holding(s.Account))
		case "5":
			s.Render(renderer.History(s.Account))
		case "6":
			return nil
		default:
			fmt.Fprintln(s.Out, "Invalid choice, try again.")
		}
	}
}

func (s *Session) printMenu() {
	fmt.Fprint(s.Out, `
===== STOCK TRADING MENU =====
1. View Market
2. Buy Stock
3. Sell Stock
4. View Portfolio
5. View Transaction History
6. Save & Exit
`)
}

// trade prompts for a symbol and a quantity and executes one buy or sell.
// Invalid input aborts the trade and reports why, the session keeps running.
func (s *Session) trade(kind tradesim.TradeKind) error {
	symbol, err := s.readLine("Enter stock symbol: ")
	if err != nil {
		return err
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	stock := s.Market.Get(symbol)
	if stock == nil {
		fmt.Fprintf(s.Out, "Error: %s: %v\n", symbol, tradesim.ErrUnknownSecurity)
		return nil
	}

	raw, err := s.readLine("Enter quantity: ")
	if err != nil {
		return err
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty <= 0 {
		fmt.Fprintf(s.Out, "Error: %q: %v\n", strings.TrimSpace(raw), tradesim.ErrInvalidQuantity)
		return nil
	}

	var tx tradesim.Transaction
	switch kind {
	case tradesim.KindBuy:
		tx = tradesim.NewBuy(time.Now(), stock.Symbol(), tradesim.Q(qty), stock.Price())
	case tradesim.KindSell:
		tx = tradesim.NewSell(time.Now(), stock.Symbol(), tradesim.Q(qty), stock.Price())
	}

	if err := tradesim.Execute(s.Account, tx); err != nil {
		fmt.Fprintf(s.Out, "Error: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.Out, renderer.Transaction(tx))
	return nil
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.Out, prompt)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed before save, nothing was saved")
	}
	return s.scanner.Text(), nil
}
