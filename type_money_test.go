package tradesim

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		name  string
		value Money
		want  string
	}{
		{"Whole rupees", M(15000, "INR"), "₹15,000.00"},
		{"With cents", M(4200.50, "INR"), "₹4,200.50"},
		{"Zero", M(0, "INR"), "₹0.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.value.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(100, "INR")
	b := M(40, "INR")

	if got, want := a.Sub(b), M(60, "INR"); !got.Equal(want) {
		t.Errorf("Sub = %s, want %s", got, want)
	}
	if got, want := a.Add(b), M(140, "INR"); !got.Equal(want) {
		t.Errorf("Add = %s, want %s", got, want)
	}
	if got, want := b.Mul(Q(3)), M(120, "INR"); !got.Equal(want) {
		t.Errorf("Mul = %s, want %s", got, want)
	}
	if !b.LessThan(a) {
		t.Error("40 < 100 reported false")
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding INR to USD did not panic")
		}
	}()
	M(1, "INR").Add(M(1, "USD"))
}

func TestQuantity_Comparisons(t *testing.T) {
	if !Q(5).GreaterThanOrEqual(Q(5)) {
		t.Error("5 >= 5 reported false")
	}
	if Q(0).IsPositive() {
		t.Error("0 reported positive")
	}
	if !Q(-1).IsNegative() {
		t.Error("-1 not reported negative")
	}
	if got, want := Q(7).Sub(Q(2)), Q(5); !got.Equal(want) {
		t.Errorf("Sub = %s, want %s", got, want)
	}
}
