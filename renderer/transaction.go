package renderer

import (
	"fmt"

	"github.com/etnz/tradesim"
)

// Transaction renders a one-line confirmation for an executed trade.
func Transaction(tx tradesim.Transaction) string {
	switch tx.Kind {
	case tradesim.KindBuy:
		return fmt.Sprintf("Bought %s shares of %s for %s", tx.Quantity, tx.Security, tx.Amount())
	case tradesim.KindSell:
		return fmt.Sprintf("Sold %s shares of %s for %s", tx.Quantity, tx.Security, tx.Amount())
	default:
		return string(tx.Kind)
	}
}
