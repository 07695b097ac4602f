// Package signal provides the event raised by strategies to suggest a
// direction to the portfolio manager.
package signal

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/order"
)

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// GetStrategyID returns the id of the strategy that raised the signal
func (s *Signal) GetStrategyID() string {
	return s.StrategyID
}

// SetDirection sets the direction
func (s *Signal) SetDirection(st order.Side) {
	s.Direction = st
}

// GetDirection returns the direction
func (s *Signal) GetDirection() order.Side {
	return s.Direction
}

// GetClosePrice returns the price at signal time
func (s *Signal) GetClosePrice() decimal.Decimal {
	return s.ClosePrice
}

// SetPrice sets the price at signal time
func (s *Signal) SetPrice(f decimal.Decimal) {
	s.ClosePrice = f
}

// GetStrength returns the sizing multiplier attached to the signal
func (s *Signal) GetStrength() decimal.Decimal {
	return s.Strength
}

// SetStrength sets the sizing multiplier attached to the signal
func (s *Signal) SetStrength(f decimal.Decimal) {
	s.Strength = f
}
