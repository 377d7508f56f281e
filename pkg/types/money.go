package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money денежная сумма, которая в JSON выводится числом с двумя знаками после запятой
type Money struct {
	decimal.Decimal
}

// NewMoney оборачивает сумму
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalJSON реализует json.Marshaler: 181720 -> 181720.00
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.StringFixed(2)), nil
}

// UnmarshalJSON принимает число или строку с числом
func (m *Money) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if errStr := json.Unmarshal(data, &s); errStr != nil {
			return err
		}
		n = json.Number(s)
	}

	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}
