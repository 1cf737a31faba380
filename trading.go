package tradesim

import (
	"errors"
	"fmt"
)

// Trading errors. Callers match them with errors.Is.
var (
	ErrUnknownSecurity      = errors.New("unknown security")
	ErrInvalidQuantity      = errors.New("quantity must be a positive number")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientPosition = errors.New("insufficient position")
)

// applyFunc validates one trade against the account and, only when every
// check passed, applies it.
type applyFunc func(a *Account, tx Transaction) error

// handlers dispatches trade application by kind.
var handlers = map[TradeKind]applyFunc{
	KindBuy:  applyBuy,
	KindSell: applySell,
}

// Execute validates tx against the account state and applies it: balance and
// portfolio are updated and the record is appended to the history. On error
// the account is left untouched.
func Execute(a *Account, tx Transaction) error {
	if tx.Quantity.IsZero() || tx.Quantity.IsNegative() {
		return fmt.Errorf("%s %s %s: %w", tx.Kind, tx.Quantity, tx.Security, ErrInvalidQuantity)
	}
	apply, ok := handlers[tx.Kind]
	if !ok {
		return fmt.Errorf("unknown trade kind: %q", tx.Kind)
	}
	return apply(a, tx)
}

func applyBuy(a *Account, tx Transaction) error {
	cost := tx.Amount()
	if a.balance.LessThan(cost) {
		return fmt.Errorf("cannot buy %s %s for %s, balance is %s: %w",
			tx.Quantity, tx.Security, cost, a.balance, ErrInsufficientFunds)
	}
	a.balance = a.balance.Sub(cost)
	a.portfolio.Add(tx.Security, tx.Quantity)
	a.history = append(a.history, tx)
	return nil
}

func applySell(a *Account, tx Transaction) error {
	if !a.portfolio.Has(tx.Security, tx.Quantity) {
		return fmt.Errorf("cannot sell %s %s, position is %s: %w",
			tx.Quantity, tx.Security, a.portfolio.Position(tx.Security), ErrInsufficientPosition)
	}
	a.balance = a.balance.Add(tx.Amount())
	a.portfolio.Remove(tx.Security, tx.Quantity)
	a.history = append(a.history, tx)
	return nil
}
