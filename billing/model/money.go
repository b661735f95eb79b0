package model

import (
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Money is a currency amount. It always serializes with two decimal places
// so 150.00 stays "150.00" on the wire.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) String() string {
	return m.StringFixed(moneyPlaces)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}
