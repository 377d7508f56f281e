package pricing

import "errors"

var (
	// ErrInvalidInput нарушено предусловие расчета (например, baseCost <= 0)
	ErrInvalidInput = errors.New("pricing: invalid input")
)
