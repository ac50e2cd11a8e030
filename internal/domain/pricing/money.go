package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (paise).
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func Zero() Money { return Money{} }

func (m Money) Cents() int64 { return m.cents }

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) IsPositive() bool { return m.cents > 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// SubFloor subtracts and clamps the result at zero.
func (m Money) SubFloor(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

func (m Money) Times(qty int) Money {
	return Money{cents: m.cents * int64(qty)}
}

// Percent returns pct% of m rounded half away from zero to whole minor units.
func (m Money) Percent(pct decimal.Decimal) Money {
	v := decimal.NewFromInt(m.cents).Mul(pct).Div(decimal.NewFromInt(100)).Round(0)
	return Money{cents: v.IntPart()}
}

func (m Money) GreaterOrEqual(other Money) bool { return m.cents >= other.cents }

func (m Money) LessThan(other Money) bool { return m.cents < other.cents }

func MinMoney(a, b Money) Money {
	if a.cents <= b.cents {
		return a
	}
	return b
}

func MaxMoney(a, b Money) Money {
	if a.cents >= b.cents {
		return a
	}
	return b
}

func (m Money) String() string {
	sign := ""
	c := m.cents
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
