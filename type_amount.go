package qif

import (
	"fmt"
	"regexp"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a monetary value read from or written to a QIF file.
//
// It is an exact decimal: QIF amounts are financial sums, and binary floats
// would corrupt them. The representation is canonical (no trailing zero
// digits), so equal amounts compare equal under reflect.DeepEqual too.
type Amount struct {
	value decimal.Decimal
}

// amountJunk matches the characters QIF files sprinkle into amounts:
// thousands separators, currency symbols, stray spaces.
var amountJunk = regexp.MustCompile(`[^\d.\-]`)

// ParseAmount parses a QIF amount field. Thousands separators and currency
// symbols are stripped before parsing, so "1,234.56" and "$-12.00" are valid.
func ParseAmount(s string) (Amount, error) {
	cleaned := amountJunk.ReplaceAllString(s, "")
	if cleaned == "" {
		return Amount{}, fmt.Errorf("invalid amount %q: no digits", s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: canon(d)}, nil
}

// canon reduces a decimal to its minimal-exponent form. "150.60" and
// "150.6" must collapse to one representation for aggregates to be
// comparable field by field.
func canon(d decimal.Decimal) decimal.Decimal {
	c, err := decimal.NewFromString(d.String())
	if err != nil {
		return d
	}
	return c
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// A returns an Amount from any numeric value.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: canon(newDecimal(value))}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

// String returns the canonical text of the amount. Trailing zero digits
// are dropped: "100.00" reads back as "100".
func (a Amount) String() string { return a.value.String() }

// Decimal returns the underlying exact decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) Cmp(b Amount) int    { return a.value.Cmp(b.value) }

func (a Amount) Add(b Amount) Amount { return Amount{value: canon(a.value.Add(b.value))} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: canon(a.value.Sub(b.value))} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount         { return Amount{value: a.value.Abs()} }

// Div returns a/b. b must not be zero.
func (a Amount) Div(b Amount) Amount { return Amount{value: canon(a.value.Div(b.value))} }

// Mul returns a*b.
func (a Amount) Mul(b Amount) Amount { return Amount{value: canon(a.value.Mul(b.value))} }

// Round returns the amount rounded to the given number of fraction digits.
func (a Amount) Round(places int32) Amount { return Amount{value: canon(a.value.Round(places))} }

// Display formats the amount as money in the given ISO currency, e.g.
// Display("GBP") -> "£1,234.56". Used by reports; the QIF encoding itself
// never carries a currency.
func (a Amount) Display(currency string) string {
	// the Money constructor is the only way to get a never-nil currency.
	cur := *money.New(0, currency).Currency()
	shifted := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

// MarshalJSON writes the amount as a JSON number, keeping all digits.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

// UnmarshalJSON reads the amount from a JSON number or string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = canon(d)
	return nil
}
