package smacross

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies/base"
)

var errPeriodsInverted = errors.New("fast period must be shorter than slow period")

// Strategy is an implementation of the strategies Handler interface
type Strategy struct {
	base.Strategy
	fastPeriod decimal.Decimal
	slowPeriod decimal.Decimal
}
