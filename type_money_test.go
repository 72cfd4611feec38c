package quotation

import "testing"

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		m      Money
		str    string
		amount string
		fixed  string
	}{
		{INR(5100), "₹5,100.00", "5,100.00", "5100.00"},
		{INR(0), "₹0.00", "0.00", "0.00"},
		{INR(5110.625), "₹5,110.63", "5,110.63", "5110.63"},
		{INR(1200000), "₹1,200,000.00", "1,200,000.00", "1200000.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.fixed, func(t *testing.T) {
			if got := tc.m.String(); got != tc.str {
				t.Errorf("String() = %q, want %q", got, tc.str)
			}
			if got := tc.m.Amount(); got != tc.amount {
				t.Errorf("Amount() = %q, want %q", got, tc.amount)
			}
			if got := tc.m.Fixed(); got != tc.fixed {
				t.Errorf("Fixed() = %q, want %q", got, tc.fixed)
			}
		})
	}
}

func TestMoney_Add(t *testing.T) {
	// the zero currency is weak.
	got := Money{}.Add(INR(10))
	if got.Currency() != "INR" || !got.Equal(INR(10)) {
		t.Errorf("Money{}.Add(INR(10)) = %v %s, want 10 INR", got.Decimal(), got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("adding EUR to INR should panic")
		}
	}()
	INR(1).Add(M(1, "EUR"))
}

func TestQuantity_Parse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Quantity
		wantErr bool
	}{
		{"10", Q(10), false},
		{" 12.5 ", Q(12.5), false},
		{"1,200", Q(1200), false},
		{"1_000.25", Q(1000.25), false},
		{"12,345,678", Q(12345678), false},
		{".5", Q(0.5), false},
		{"-3", Q(-3), false},
		{"1,2,3", Quantity{}, true},
		{"12,00", Quantity{}, true},
		{"1e3", Quantity{}, true},
		{"NaN", Quantity{}, true},
		{"ten", Quantity{}, true},
		{"", Quantity{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			v, err := parseDecimal(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseDecimal(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && !(Quantity{value: v}).Equal(tc.want) {
				t.Errorf("parseDecimal(%q) = %v, want %v", tc.in, v, tc.want)
			}
		})
	}
}
