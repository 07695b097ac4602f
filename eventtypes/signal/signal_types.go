package signal

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/order"
)

// Signal is a trading suggestion raised by a strategy for the portfolio
// manager to act upon
type Signal struct {
	event.Base
	StrategyID string
	ClosePrice decimal.Decimal
	// Strength is a sizing multiplier, eg a hedge ratio magnitude. It is
	// not a probability
	Strength  decimal.Decimal
	Direction order.Side
}

// Event handler is used for getting trade signal details
type Event interface {
	common.Event
	common.Directioner

	GetStrategyID() string
	GetClosePrice() decimal.Decimal
	SetPrice(decimal.Decimal)
	GetStrength() decimal.Decimal
	SetStrength(decimal.Decimal)
	IsSignal() bool
}
