package size

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoStrength returned when a signal carries a zero or negative
	// strength multiplier
	ErrNoStrength = errors.New("signal strength must be positive")
)

// Size is the default fixed-quantity sizer. Entry orders are DefaultSize
// units scaled by the signal's strength and truncated to whole units, there
// is no pyramiding or risk-based sizing
type Size struct {
	DefaultSize decimal.Decimal
}
