// README: Common money value object used across modules.
package types

import "fmt"

// Money holds an amount in integer cents to keep fee arithmetic exact.
type Money struct {
	Amount   int64
	Currency string
}

func CAD(cents int64) Money {
	return Money{Amount: cents, Currency: "CAD"}
}

// FromDollars converts a dollar figure (e.g. a parsed "179.50") to cents,
// rounding half away from zero.
func FromDollars(d float64) Money {
	if d < 0 {
		return CAD(int64(d*100 - 0.5))
	}
	return CAD(int64(d*100 + 0.5))
}

func (m Money) Dollars() float64 {
	return float64(m.Amount) / 100
}

func (m Money) Add(o Money) Money {
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}
}

// MulHours multiplies an hourly amount by a fractional hour count,
// rounding to the nearest cent.
func (m Money) MulHours(hours float64) Money {
	return Money{Amount: int64(float64(m.Amount)*hours + 0.5), Currency: m.Currency}
}

func (m Money) MulInt(n int64) Money {
	return Money{Amount: m.Amount * n, Currency: m.Currency}
}

func (m Money) IsZero() bool { return m.Amount == 0 }

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Dollars(), m.Currency)
}
