package rsi

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies/base"
)

// Strategy is an implementation of the strategies Handler interface
type Strategy struct {
	base.Strategy
	rsiPeriod decimal.Decimal
	rsiLow    decimal.Decimal
	rsiHigh   decimal.Decimal
}
