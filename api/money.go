package api

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is a decimal amount that serializes with a fixed two-decimal scale,
// so a 12.5 price renders as "12.50" on the wire.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(m.StringFixed(2))), nil
}
