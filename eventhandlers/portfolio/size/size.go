// Package size decides the quantity of units an entry order trades.
package size

import (
	"github.com/shopspring/decimal"
)

var defaultSize = decimal.NewFromInt(100)

// SizeOrder returns the whole-unit quantity for an entry signal of the
// supplied strength. A result of zero means the order should be suppressed
func (s *Size) SizeOrder(strength decimal.Decimal) (decimal.Decimal, error) {
	if strength.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrNoStrength
	}
	base := s.DefaultSize
	if base.LessThanOrEqual(decimal.Zero) {
		base = defaultSize
	}
	return base.Mul(strength).Floor(), nil
}
