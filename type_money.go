package quotation

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = "INR"

// CheckCurrency returns ErrUnknownCurrency unless code is an ISO 4217 code,
// in upper case.
func CheckCurrency(code string) error {
	if code != strings.ToUpper(code) || money.GetCurrency(code) == nil {
		return fmt.Errorf("%w %q", ErrUnknownCurrency, code)
	}
	return nil
}

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money in currency.
func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// minor returns the value in minor units, rounded half away from zero.
func (m Money) minor() int64 {
	cur := m.currency()
	return m.value.Shift(int32(cur.Fraction)).Round(0).IntPart()
}

// String returns the value with the currency symbol, e.g. "₹5,100.00".
func (m Money) String() string {
	c := m.currency()
	return c.Formatter().Format(m.minor())
}

// Amount returns the value with thousands separators and the currency
// fraction digits but no symbol, e.g. "5,100.00".
func (m Money) Amount() string {
	c := m.currency()
	f := c.Formatter()
	plain := money.NewFormatter(f.Fraction, f.Decimal, f.Thousand, "", "1")
	return strings.TrimSpace(plain.Format(m.minor()))
}

// Fixed returns the value with exactly the currency fraction digits and no grouping, e.g. "5100.00".
func (m Money) Fixed() string {
	c := m.currency()
	return m.value.StringFixed(int32(c.Fraction))
}

func (m Money) Currency() string         { return m.cur }
func (m Money) Decimal() decimal.Decimal { return m.value }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Mul(q Quantity) Money     { return Money{value: m.value.Mul(q.value), cur: m.cur} }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// MarshalJSON writes the bare decimal amount, the currency is carried by the ledger.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}
