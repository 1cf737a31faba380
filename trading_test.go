package tradesim

import (
	"errors"
	"testing"
	"time"
)

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestExecute_Buy(t *testing.T) {
	market := BuiltinMarket()

	testCases := []struct {
		name        string
		symbol      string
		quantity    int
		wantErr     error
		wantBalance Money
		wantShares  Quantity
	}{
		{
			name:        "Affordable buy",
			symbol:      "AAPL",
			quantity:    5,
			wantBalance: M(6000, Currency), // 15000 - 5*1800
			wantShares:  Q(5),
		},
		{
			name:        "Buy the whole balance",
			symbol:      "TSLA",
			quantity:    5,
			wantBalance: M(0, Currency), // 15000 - 5*3000
			wantShares:  Q(5),
		},
		{
			name:        "Cost above balance",
			symbol:      "GOOGL",
			quantity:    7, // 17500 > 15000
			wantErr:     ErrInsufficientFunds,
			wantBalance: M(15000, Currency),
			wantShares:  Q(0),
		},
		{
			name:        "Zero quantity",
			symbol:      "AAPL",
			quantity:    0,
			wantErr:     ErrInvalidQuantity,
			wantBalance: M(15000, Currency),
			wantShares:  Q(0),
		},
		{
			name:        "Negative quantity",
			symbol:      "AAPL",
			quantity:    -3,
			wantErr:     ErrInvalidQuantity,
			wantBalance: M(15000, Currency),
			wantShares:  Q(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := NewAccount("june", OpeningBalance())
			stock := market.Get(tc.symbol)

			err := Execute(account, NewBuy(testTime, stock.Symbol(), Q(tc.quantity), stock.Price()))

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tc.wantErr)
				}
				if len(account.History()) != 0 {
					t.Errorf("failed trade was recorded in history")
				}
			} else {
				if err != nil {
					t.Fatalf("Execute() unexpected error: %v", err)
				}
				if got := len(account.History()); got != 1 {
					t.Fatalf("history has %d records, want 1", got)
				}
			}
			if got := account.Balance(); !got.Equal(tc.wantBalance) {
				t.Errorf("balance = %s, want %s", got, tc.wantBalance)
			}
			if got := account.Portfolio().Position(tc.symbol); !got.Equal(tc.wantShares) {
				t.Errorf("position in %s = %s, want %s", tc.symbol, got, tc.wantShares)
			}
		})
	}
}

func TestExecute_Sell(t *testing.T) {
	market := BuiltinMarket()

	// Start every case from an account holding 6 AAPL bought at 1800.
	setup := func(t *testing.T) *Account {
		t.Helper()
		account := NewAccount("june", OpeningBalance())
		aapl := market.Get("AAPL")
		if err := Execute(account, NewBuy(testTime, "AAPL", Q(6), aapl.Price())); err != nil {
			t.Fatalf("setup buy failed: %v", err)
		}
		return account
	}

	testCases := []struct {
		name        string
		symbol      string
		quantity    int
		wantErr     error
		wantBalance Money
		wantShares  Quantity
	}{
		{
			name:        "Partial sell",
			symbol:      "AAPL",
			quantity:    2,
			wantBalance: M(7800, Currency), // 4200 + 2*1800
			wantShares:  Q(4),
		},
		{
			name:        "Sell the whole position",
			symbol:      "AAPL",
			quantity:    6,
			wantBalance: M(15000, Currency),
			wantShares:  Q(0),
		},
		{
			name:        "More than held",
			symbol:      "AAPL",
			quantity:    10,
			wantErr:     ErrInsufficientPosition,
			wantBalance: M(4200, Currency),
			wantShares:  Q(6),
		},
		{
			name:        "Symbol never held",
			symbol:      "TSLA",
			quantity:    1,
			wantErr:     ErrInsufficientPosition,
			wantBalance: M(4200, Currency),
			wantShares:  Q(0),
		},
		{
			name:        "Zero quantity",
			symbol:      "AAPL",
			quantity:    0,
			wantErr:     ErrInvalidQuantity,
			wantBalance: M(4200, Currency),
			wantShares:  Q(6),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			account := setup(t)
			stock := market.Get(tc.symbol)

			err := Execute(account, NewSell(testTime, stock.Symbol(), Q(tc.quantity), stock.Price()))

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Execute() error = %v, want %v", err, tc.wantErr)
				}
				if got := len(account.History()); got != 1 {
					t.Errorf("history has %d records, want the setup buy only", got)
				}
			} else {
				if err != nil {
					t.Fatalf("Execute() unexpected error: %v", err)
				}
				if got := len(account.History()); got != 2 {
					t.Fatalf("history has %d records, want 2", got)
				}
				if got := account.History()[1].Kind; got != KindSell {
					t.Errorf("last record kind = %s, want %s", got, KindSell)
				}
			}
			if got := account.Balance(); !got.Equal(tc.wantBalance) {
				t.Errorf("balance = %s, want %s", got, tc.wantBalance)
			}
			if got := account.Portfolio().Position(tc.symbol); !got.Equal(tc.wantShares) {
				t.Errorf("position in %s = %s, want %s", tc.symbol, got, tc.wantShares)
			}
		})
	}
}

// The full session scenario: two buys drain the balance, an oversized sell
// changes nothing.
func TestExecute_Scenario(t *testing.T) {
	market := BuiltinMarket()
	account := NewAccount("june", OpeningBalance())
	aapl := market.Get("AAPL")

	if err := Execute(account, NewBuy(testTime, "AAPL", Q(5), aapl.Price())); err != nil {
		t.Fatalf("first buy failed: %v", err)
	}
	if got, want := account.Balance(), M(6000, Currency); !got.Equal(want) {
		t.Errorf("balance after first buy = %s, want %s", got, want)
	}

	if err := Execute(account, NewBuy(testTime, "AAPL", Q(1), aapl.Price())); err != nil {
		t.Fatalf("second buy failed: %v", err)
	}
	if got, want := account.Balance(), M(4200, Currency); !got.Equal(want) {
		t.Errorf("balance after second buy = %s, want %s", got, want)
	}
	if got, want := account.Portfolio().Position("AAPL"), Q(6); !got.Equal(want) {
		t.Errorf("AAPL position = %s, want %s", got, want)
	}

	err := Execute(account, NewSell(testTime, "AAPL", Q(10), aapl.Price()))
	if !errors.Is(err, ErrInsufficientPosition) {
		t.Fatalf("oversell error = %v, want %v", err, ErrInsufficientPosition)
	}
	if got, want := account.Balance(), M(4200, Currency); !got.Equal(want) {
		t.Errorf("balance after failed sell = %s, want %s", got, want)
	}
	if got, want := account.Portfolio().Position("AAPL"), Q(6); !got.Equal(want) {
		t.Errorf("AAPL position after failed sell = %s, want %s", got, want)
	}
	if got := len(account.History()); got != 2 {
		t.Errorf("history has %d records, want 2", got)
	}
}

func TestExecute_UnknownKind(t *testing.T) {
	account := NewAccount("june", OpeningBalance())
	tx := Transaction{Kind: "short", Security: "AAPL", Quantity: Q(1), Price: M(1800, Currency), Time: testTime}
	if err := Execute(account, tx); err == nil {
		t.Fatal("Execute() accepted an unknown trade kind")
	}
}
