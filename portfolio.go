package tradesim

import "sort"

// Position is one portfolio line: a security and the quantity held.
type Position struct {
	Security string
	Quantity Quantity
}

// Portfolio tracks the quantity held for each security.
//
// A security absent from the portfolio means zero shares; no entry is ever
// kept with a quantity of zero or less.
type Portfolio struct {
	holdings map[string]Quantity
}

// NewPortfolio creates an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{holdings: make(map[string]Quantity)}
}

// Add credits qty shares of security, creating the entry if needed.
func (p *Portfolio) Add(security string, qty Quantity) {
	p.holdings[security] = p.holdings[security].Add(qty)
}

// Remove debits qty shares of security, deleting the entry when it is depleted.
func (p *Portfolio) Remove(security string, qty Quantity) {
	left := p.holdings[security].Sub(qty)
	if left.IsPositive() {
		p.holdings[security] = left
		return
	}
	delete(p.holdings, security)
}

// Has reports whether at least qty shares of security are held.
func (p *Portfolio) Has(security string, qty Quantity) bool {
	held, ok := p.holdings[security]
	return ok && held.GreaterThanOrEqual(qty)
}

// Position returns the quantity held for security, zero when absent.
func (p *Portfolio) Position(security string) Quantity {
	return p.holdings[security]
}

func (p *Portfolio) Len() int { return len(p.holdings) }

// Positions returns all holdings in security order.
func (p *Portfolio) Positions() []Position {
	out := make([]Position, 0, len(p.holdings))
	for sec, qty := range p.holdings {
		out = append(out, Position{Security: sec, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Security < out[j].Security })
	return out
}
