package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/walletsim/walletsim/internal/apperror"
)

func TestParseRoundsToTwoPlaces(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"99.99", "99.99"},
		{"99.990", "99.99"},
		{"100", "100.00"},
		{"0.005", "0.01"},
		{"0.004", "0.00"},
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
		{" 10.1 ", "10.10"},
	}
	for _, tc := range cases {
		m, err := Parse(tc.in, "clp")
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got := m.StringFixed(); got != tc.want {
			t.Fatalf("parse %q: expected %s, got %s", tc.in, tc.want, got)
		}
		if m.Currency() != "CLP" {
			t.Fatalf("expected upper-cased currency, got %s", m.Currency())
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		amount, currency string
		want             error
	}{
		{"", "CLP", ErrInvalidAmount},
		{"abc", "CLP", ErrInvalidAmount},
		{"10", "CL", ErrInvalidCurrency},
		{"10", "CLPX", ErrInvalidCurrency},
		{"10", "C1P", ErrInvalidCurrency},
		{"10", "", ErrInvalidCurrency},
	}
	for _, tc := range cases {
		_, err := Parse(tc.amount, tc.currency)
		if !errors.Is(err, tc.want) {
			t.Fatalf("parse(%q,%q): expected %v, got %v", tc.amount, tc.currency, tc.want, err)
		}
		if !errors.Is(err, apperror.ErrValidation) {
			t.Fatalf("parse(%q,%q): expected validation kind, got %v", tc.amount, tc.currency, err)
		}
	}
}

func TestAddMatchesRoundedSum(t *testing.T) {
	pairs := [][2]string{
		{"0.10", "0.20"},
		{"99.99", "0.01"},
		{"1.005", "2.004"},
		{"1234567.89", "0.11"},
		{"-5.00", "2.50"},
	}
	for _, p := range pairs {
		a := MustParse(p[0], "CLP")
		b := MustParse(p[1], "CLP")
		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		want := a.Amount().Add(b.Amount()).Round(2)
		if !sum.Amount().Equal(want) {
			t.Fatalf("%s + %s: expected %s, got %s", p[0], p[1], want, sum.Amount())
		}
	}
}

func TestSubAndMul(t *testing.T) {
	a := MustParse("200.00", "CLP")
	b := MustParse("50.00", "CLP")

	diff, err := a.Sub(b)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if diff.StringFixed() != "150.00" {
		t.Fatalf("expected 150.00, got %s", diff.StringFixed())
	}

	neg, err := b.Sub(a)
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if !neg.IsNegative() {
		t.Fatalf("expected negative result, got %s", neg)
	}

	scaled := MustParse("10.00", "USD").Mul(decimal.RequireFromString("0.333"))
	if scaled.StringFixed() != "3.33" || scaled.Currency() != "USD" {
		t.Fatalf("unexpected product %s", scaled)
	}
}

func TestCurrencyMismatchOnEveryBinaryOperation(t *testing.T) {
	clp := MustParse("10", "CLP")
	usd := MustParse("10", "USD")

	ops := map[string]func() error{
		"add": func() error { _, err := clp.Add(usd); return err },
		"sub": func() error { _, err := clp.Sub(usd); return err },
		"gt":  func() error { _, err := clp.GreaterThan(usd); return err },
		"gte": func() error { _, err := clp.GreaterOrEqual(usd); return err },
		"lt":  func() error { _, err := clp.LessThan(usd); return err },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, apperror.ErrCurrencyMismatch) {
			t.Fatalf("%s: expected currency mismatch, got %v", name, err)
		}
	}
}

func TestComparisons(t *testing.T) {
	small := MustParse("1.00", "CLP")
	big := MustParse("2.00", "CLP")

	if gt, _ := big.GreaterThan(small); !gt {
		t.Fatal("expected 2 > 1")
	}
	if gte, _ := small.GreaterOrEqual(MustParse("1", "CLP")); !gte {
		t.Fatal("expected 1 >= 1")
	}
	if lt, _ := small.LessThan(big); !lt {
		t.Fatal("expected 1 < 2")
	}
	if !Zero.IsZero() || Zero.IsPositive() || Zero.IsNegative() {
		t.Fatal("zero sign checks are wrong")
	}
	if Zero.Currency() != DefaultCurrency {
		t.Fatalf("expected default currency, got %s", Zero.Currency())
	}
}

func TestEqualIgnoresTrailingZeros(t *testing.T) {
	a, err := New(decimal.RequireFromString("5.5"), "EUR")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	b := MustParse("5.500", "eur")
	if !a.Equal(b) {
		t.Fatalf("expected %s to equal %s", a, b)
	}
	if a.Equal(MustParse("5.50", "USD")) {
		t.Fatal("different currencies must not be equal")
	}
	if a.String() != "EUR 5.50" {
		t.Fatalf("unexpected string form %q", a.String())
	}
}

func TestFromFloat(t *testing.T) {
	m, err := FromFloat(0.1+0.2, "CLP")
	if err != nil {
		t.Fatalf("from float: %v", err)
	}
	if m.StringFixed() != "0.30" {
		t.Fatalf("expected 0.30, got %s", m.StringFixed())
	}
}
