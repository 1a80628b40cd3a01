package models

import (
	"github.com/shopspring/decimal"
)

// Money is an exact fixed-point currency amount. It serializes with exactly
// two fractional digits so totals like 150.00 do not collapse to "150".
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
