package tradesim

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TradeKind is a typed string identifying the kind of a trade.
type TradeKind string

// Trade kinds recorded in the history.
const (
	KindBuy  TradeKind = "buy"
	KindSell TradeKind = "sell"
)

// ParseTradeKind parses a string into a TradeKind.
func ParseTradeKind(s string) (TradeKind, error) {
	switch TradeKind(s) {
	case KindBuy:
		return KindBuy, nil
	case KindSell:
		return KindSell, nil
	default:
		return "", fmt.Errorf("unknown trade kind: %q", s)
	}
}

// Transaction is the immutable record of one executed buy or sell.
//
// It is a single record carrying its kind rather than a hierarchy of types:
// execution is dispatched on Kind (see trading.go).
type Transaction struct {
	Kind     TradeKind
	Security string
	Quantity Quantity
	Price    Money // unit price at execution time
	Time     time.Time
}

// NewBuy creates a buy record for qty shares of security at the given unit price.
func NewBuy(at time.Time, security string, qty Quantity, price Money) Transaction {
	return Transaction{Kind: KindBuy, Security: security, Quantity: qty, Price: price, Time: at}
}

// NewSell creates a sell record for qty shares of security at the given unit price.
func NewSell(at time.Time, security string, qty Quantity, price Money) Transaction {
	return Transaction{Kind: KindSell, Security: security, Quantity: qty, Price: price, Time: at}
}

// Amount returns the total value of the trade, unit price times quantity.
func (t Transaction) Amount() Money { return t.Price.Mul(t.Quantity) }

func (t Transaction) Equal(o Transaction) bool {
	return t.Kind == o.Kind &&
		t.Security == o.Security &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Time.Equal(o.Time)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Kind)
	w.Append("time", t.Time.Format(time.RFC3339Nano))
	w.Append("security", t.Security)
	w.Append("quantity", t.Quantity)
	w.EmbedFrom(t.Price)
	return w.MarshalJSON()
}

// tradeCmd is a specialized struct for decoding a transaction line.
type tradeCmd struct {
	Command  string          `json:"command"`
	Time     string          `json:"time"`
	Security string          `json:"security"`
	Quantity Quantity        `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the flat structure where amount and currency are separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp tradeCmd
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	kind, err := ParseTradeKind(temp.Command)
	if err != nil {
		return err
	}
	at, err := time.Parse(time.RFC3339Nano, temp.Time)
	if err != nil {
		return fmt.Errorf("invalid transaction time %q: %w", temp.Time, err)
	}
	t.Kind = kind
	t.Security = temp.Security
	t.Quantity = temp.Quantity
	t.Price = M(temp.Amount, temp.Currency)
	t.Time = at
	return nil
}
