package tradesim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The account is persisted as a JSONL stream: one "account" header line with
// the name and cash balance, one "holding" line per portfolio position, then
// one line per history record, in execution order. Each line carries a
// "command" field identifying it.

const (
	cmdAccount = "account"
	cmdHolding = "holding"
)

// accountCmd is a specialized struct for decoding the header line.
type accountCmd struct {
	Command  string          `json:"command"`
	Name     string          `json:"name"`
	Currency string          `json:"currency"`
	Balance  decimal.Decimal `json:"balance"`
}

// holdingCmd is a specialized struct for decoding one portfolio position.
type holdingCmd struct {
	Command  string   `json:"command"`
	Security string   `json:"security"`
	Quantity Quantity `json:"quantity"`
}

// EncodeAccount writes the full account to w, header first, then holdings in
// security order, then the history in execution order.
func EncodeAccount(w io.Writer, a *Account) error {
	var h jsonObjectWriter
	h.Append("command", cmdAccount)
	h.Append("name", a.Name())
	h.Append("currency", a.Balance().Currency())
	h.Append("balance", a.Balance().value.Round(int32(a.Balance().currency().Fraction)))
	if err := encodeLine(w, &h); err != nil {
		return err
	}

	for _, pos := range a.Portfolio().Positions() {
		var l jsonObjectWriter
		l.Append("command", cmdHolding)
		l.Append("security", pos.Security)
		l.Append("quantity", pos.Quantity)
		if err := encodeLine(w, &l); err != nil {
			return err
		}
	}

	for _, tx := range a.History() {
		b, err := json.Marshal(tx)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

func encodeLine(w io.Writer, obj *jsonObjectWriter) error {
	b, err := obj.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// DecodeAccount reads an account back from a stream of JSONL data. It
// identifies each line by its "command" field and rejects streams that do not
// start with an account header, or whose lines are malformed.
func DecodeAccount(r io.Reader) (*Account, error) {
	scanner := bufio.NewScanner(r)

	var account *Account
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Command string `json:"command"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify command in line %q: %w", string(line), err)
		}

		switch identifier.Command {
		case cmdAccount:
			if account != nil {
				return nil, fmt.Errorf("duplicate account header in line %q", string(line))
			}
			var temp accountCmd
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			if temp.Name == "" {
				return nil, fmt.Errorf("account header has no name")
			}
			if temp.Balance.IsNegative() {
				return nil, fmt.Errorf("account balance %s is negative", temp.Balance)
			}
			account = NewAccount(temp.Name, M(temp.Balance, temp.Currency))

		case cmdHolding:
			if account == nil {
				return nil, fmt.Errorf("holding line %q before account header", string(line))
			}
			var temp holdingCmd
			if err := json.Unmarshal(line, &temp); err != nil {
				return nil, err
			}
			if temp.Security == "" {
				return nil, fmt.Errorf("holding line %q has no security", string(line))
			}
			if !temp.Quantity.IsPositive() {
				return nil, fmt.Errorf("holding %s has non-positive quantity %s", temp.Security, temp.Quantity)
			}
			account.portfolio.Add(temp.Security, temp.Quantity)

		case string(KindBuy), string(KindSell):
			if account == nil {
				return nil, fmt.Errorf("transaction line %q before account header", string(line))
			}
			var tx Transaction
			if err := json.Unmarshal(line, &tx); err != nil {
				return nil, err
			}
			account.history = append(account.history, tx)

		default:
			return nil, fmt.Errorf("unknown command %q in line %q", identifier.Command, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("stream contains no account header")
	}
	return account, nil
}
