// Package renderer renders the simulator state to markdown, ready to be
// printed to the terminal.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradesim"
	md "github.com/nao1215/markdown"
)

// Market renders the market price list to a markdown table.
func Market(m *tradesim.Market) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Market")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Price"},
		Rows:   [][]string{},
	}
	for _, s := range m.Stocks() {
		table.Rows = append(table.Rows, []string{s.Symbol(), s.Price().String()})
	}
	doc.Table(table)

	return doc.String()
}

// Holding renders the portfolio summary: one row per position and the cash
// balance underneath.
func Holding(a *tradesim.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Summary")
	if a.Portfolio().Len() == 0 {
		doc.PlainText("No holdings yet.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{"Symbol", "Shares"},
			Rows:   [][]string{},
		}
		for _, pos := range a.Portfolio().Positions() {
			table.Rows = append(table.Rows, []string{pos.Security, pos.Quantity.String()})
		}
		doc.Table(table)
	}
	doc.PlainText(fmt.Sprintf("Available balance: %s", a.Balance()))

	return doc.String()
}

// History renders the transaction history in execution order.
func History(a *tradesim.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transaction History")
	if len(a.History()) == 0 {
		doc.PlainText("No transactions yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Time", "Action", "Symbol", "Shares", "Price", "Total"},
		Rows:   [][]string{},
	}
	for _, tx := range a.History() {
		table.Rows = append(table.Rows, []string{
			tx.Time.Format("2006-01-02 15:04:05"),
			string(tx.Kind),
			tx.Security,
			tx.Quantity.String(),
			tx.Price.String(),
			tx.Amount().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
