package tradesim

// Currency is the single currency this simulator trades in.
const Currency = "INR"

// OpeningBalance returns the cash balance a fresh account starts with.
func OpeningBalance() Money { return M(15000, Currency) }

// Account is one trader: a cash balance, a portfolio of holdings and the
// chronological history of executed trades.
type Account struct {
	name      string
	balance   Money
	portfolio *Portfolio
	history   []Transaction
}

// NewAccount creates an account with an empty portfolio and no history.
func NewAccount(name string, opening Money) *Account {
	return &Account{
		name:      name,
		balance:   opening,
		portfolio: NewPortfolio(),
		history:   make([]Transaction, 0),
	}
}

func (a *Account) Name() string          { return a.name }
func (a *Account) Balance() Money        { return a.balance }
func (a *Account) Portfolio() *Portfolio { return a.portfolio }

// History returns the executed trades in execution order.
func (a *Account) History() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}
