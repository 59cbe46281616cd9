package qif

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"150.60", "150.6"},
		{"-150.60", "-150.6"},
		{"1,234.56", "1234.56"},
		{"$-12.00", "-12"},
		{"£1,000", "1000"},
		{"  42  ", "42"},
		{"0.001", "0.001"},
		{"100.00", "100"},
	}
	for _, c := range cases {
		got, err := ParseAmount(c.in)
		if err != nil {
			t.Errorf("ParseAmount(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got.String() != c.want {
			t.Errorf("ParseAmount(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "$", "1.2.3"} {
		if a, err := ParseAmount(in); err == nil {
			t.Errorf("ParseAmount(%q) = %s, want error", in, a)
		}
	}
}

func TestAmountArithmetic(t *testing.T) {
	a, b := A(10.5), A(2)
	if got := a.Add(b); !got.Equal(A(12.5)) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(A(8.5)) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Neg(); !got.Equal(A(-10.5)) {
		t.Errorf("Neg = %s", got)
	}
	if got := a.Neg().Abs(); !got.Equal(a) {
		t.Errorf("Abs = %s", got)
	}
	if got := a.Mul(b); !got.Equal(A(21)) {
		t.Errorf("Mul = %s", got)
	}
	if got := A(1).Div(A(3)).Round(4); !got.Equal(MustParseAmount("0.3333")) {
		t.Errorf("Div+Round = %s", got)
	}
	if !A(3).Equal(A(3)) || A(3).Equal(A(4)) {
		t.Error("Equal misbehaves")
	}
	if A(3).Cmp(A(4)) >= 0 {
		t.Error("Cmp misbehaves")
	}
	if !A(0).IsZero() || A(1).IsZero() {
		t.Error("IsZero misbehaves")
	}
	if !A(-1).IsNegative() || A(1).IsNegative() {
		t.Error("IsNegative misbehaves")
	}
}

func TestAmountDisplay(t *testing.T) {
	cases := []struct {
		value    float64
		currency string
		want     string
	}{
		{1234.56, "USD", "$1,234.56"},
		{1234.56, "GBP", "£1,234.56"},
		{-12.5, "USD", "-$12.50"},
	}
	for _, c := range cases {
		if got := A(c.value).Display(c.currency); got != c.want {
			t.Errorf("A(%v).Display(%q) = %q, want %q", c.value, c.currency, got, c.want)
		}
	}
}

func TestAmountJSON(t *testing.T) {
	a := MustParseAmount("1,234.56")
	data, err := a.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "1234.56" {
		t.Fatalf("MarshalJSON = %s", data)
	}
	var back Amount
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(a) {
		t.Fatalf("round trip: got %s, want %s", back, a)
	}
}
