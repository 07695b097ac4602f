// Package order provides the event raised by the portfolio manager for the
// exchange handler to execute.
package order

import (
	"github.com/shopspring/decimal"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// SetDirection sets the side of the order
func (o *Order) SetDirection(s gbtorder.Side) {
	o.Direction = s
}

// GetDirection returns the side of the order
func (o *Order) GetDirection() gbtorder.Side {
	return o.Direction
}

// SetAmount sets the amount
func (o *Order) SetAmount(i decimal.Decimal) {
	o.Amount = i
}

// GetAmount returns the amount
func (o *Order) GetAmount() decimal.Decimal {
	return o.Amount
}

// GetClosePrice returns the close price at order time
func (o *Order) GetClosePrice() decimal.Decimal {
	return o.ClosePrice
}

// GetStatus returns order status
func (o *Order) GetStatus() gbtorder.Status {
	return o.Status
}

// SetID sets the order id
func (o *Order) SetID(id string) {
	o.ID = id
}

// GetID returns the ID
func (o *Order) GetID() string {
	return o.ID
}

// GetOrderType returns the type of the order
func (o *Order) GetOrderType() gbtorder.Type {
	return o.OrderType
}
