package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/walletsim/walletsim/internal/apperror"
)

const (
	// DefaultCurrency is used when an account is opened without an explicit currency.
	DefaultCurrency = "CLP"

	scale = 2
)

var (
	// ErrInvalidCurrency is returned for currency codes that are not three letters.
	ErrInvalidCurrency = fmt.Errorf("%w: currency code must be 3 letters", apperror.ErrValidation)
	// ErrInvalidAmount is returned when an amount is missing or not a number.
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a decimal number", apperror.ErrValidation)

	// Zero is the zero amount in DefaultCurrency.
	Zero = Money{amount: round(decimal.Zero), currency: DefaultCurrency}
)

// Money is an immutable amount bound to a currency code. Amounts are always held
// at two decimal places, rounded half away from zero.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New builds Money from a decimal amount and an ISO-4217 style code.
func New(amount decimal.Decimal, currency string) (Money, error) {
	code, err := NormalizeCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: round(amount), currency: code}, nil
}

// Parse builds Money from the textual form of an amount, e.g. "99.990".
func Parse(amount, currency string) (Money, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	return New(d, currency)
}

// FromFloat builds Money from a float64 amount.
func FromFloat(amount float64, currency string) (Money, error) {
	return New(decimal.NewFromFloat(amount), currency)
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(amount, currency string) Money {
	m, err := Parse(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// ZeroOf returns the zero amount in the given currency.
func ZeroOf(currency string) (Money, error) {
	return New(decimal.Zero, currency)
}

// NormalizeCurrency validates a currency code and returns it upper-cased.
func NormalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return code, nil
}

// Amount returns the amount at two decimal places.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the upper-case currency code.
func (m Money) Currency() string { return m.currency }

// Add returns m + other. Both must share a currency.
func (m Money) Add(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: round(m.amount.Add(other.amount)), currency: m.currency}, nil
}

// Sub returns m - other. Both must share a currency. The result may be negative.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.sameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: round(m.amount.Sub(other.amount)), currency: m.currency}, nil
}

// Mul scales m by factor, keeping the currency.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: round(m.amount.Mul(factor)), currency: m.currency}
}

// GreaterThan reports whether m > other.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.cmp(other)
	return c > 0, err
}

// GreaterOrEqual reports whether m >= other.
func (m Money) GreaterOrEqual(other Money) (bool, error) {
	c, err := m.cmp(other)
	return c >= 0, err
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.cmp(other)
	return c < 0, err
}

func (m Money) IsPositive() bool { return m.amount.Sign() > 0 }
func (m Money) IsNegative() bool { return m.amount.Sign() < 0 }
func (m Money) IsZero() bool     { return m.amount.Sign() == 0 }

// Equal reports numeric equality of the amounts and identical currencies.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// StringFixed renders the amount alone, e.g. "100.00".
func (m Money) StringFixed() string {
	return m.amount.StringFixed(scale)
}

// String renders currency and amount, e.g. "CLP 100.00".
func (m Money) String() string {
	return m.currency + " " + m.StringFixed()
}

func (m Money) cmp(other Money) (int, error) {
	if err := m.sameCurrency(other); err != nil {
		return 0, err
	}
	return m.amount.Cmp(other.amount), nil
}

func (m Money) sameCurrency(other Money) error {
	if m.currency != other.currency {
		return apperror.CurrencyMismatch(m.currency, other.currency)
	}
	return nil
}

// round is the only place amounts are brought to scale.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(scale)
}
