package entities

import "testing"

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{200, 20000},
		{220.5, 22050},
		{0.1 + 0.2, 30},
		{19.999, 2000},
		{1.005, 101},
		{-3.25, -325},
	}
	for _, c := range cases {
		if got := ToMinorUnits(c.in); got != c.want {
			t.Fatalf("ToMinorUnits(%v): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 22000, 999999} {
		if got := ToMinorUnits(FromMinorUnits(cents)); got != cents {
			t.Fatalf("round trip %d: got %d", cents, got)
		}
	}
	for _, amount := range []float64{0.01, 12.34, 200, 220, 1234.56} {
		if got := FromMinorUnits(ToMinorUnits(amount)); got != amount {
			t.Fatalf("round trip %v: got %v", amount, got)
		}
	}
}

func TestAmountHelpers(t *testing.T) {
	if got := FormatAmount(220); got != "220.00" {
		t.Fatalf("expected 220.00, got %s", got)
	}
	if got, err := ParseAmount("199.99"); err != nil || got != 199.99 {
		t.Fatalf("expected 199.99, got %v err=%v", got, err)
	}
	if _, err := ParseAmount("abc"); err == nil {
		t.Fatalf("expected parse error")
	}
	if got := SumAmounts(0.1, 0.2, 100); got != 100.3 {
		t.Fatalf("expected 100.3, got %v", got)
	}
	if !AmountsEqual(0.1+0.2, 0.3) || AmountsEqual(1, 1.01) {
		t.Fatalf("unexpected AmountsEqual result")
	}
}

func TestOrder_ExpectedTotal(t *testing.T) {
	o := Order{
		People: []Person{
			{FirstName: "Ana", LastName: "Lee", Admission: 100},
			{FirstName: "Bo", Admission: 75.5},
		},
		Donation: 20,
		Fees:     4.5,
	}
	if got := o.ExpectedTotal(); got != 200 {
		t.Fatalf("expected 200, got %v", got)
	}
	if o.Purchaser().FullName() != "Ana Lee" {
		t.Fatalf("unexpected purchaser %q", o.Purchaser().FullName())
	}
	if (Order{}).Purchaser().Email != "" {
		t.Fatalf("expected empty purchaser")
	}
	if !PaymentMethodCheck.Valid() || PaymentMethod("cash").Valid() {
		t.Fatalf("unexpected Valid result")
	}
}
