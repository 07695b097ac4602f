// Package fill provides the event raised by the exchange handler once an
// order has been executed.
package fill

import (
	"github.com/shopspring/decimal"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

// IsFill returns whether the event is a fill
func (f *Fill) IsFill() bool {
	return true
}

// GetOrderID returns the id of the order that produced the fill
func (f *Fill) GetOrderID() string {
	return f.OrderID
}

// SetDirection sets the side of the fill
func (f *Fill) SetDirection(s gbtorder.Side) {
	f.Direction = s
}

// GetDirection returns the side of the fill
func (f *Fill) GetDirection() gbtorder.Side {
	return f.Direction
}

// SetAmount sets the filled amount
func (f *Fill) SetAmount(i decimal.Decimal) {
	f.Amount = i
}

// GetAmount returns the filled amount
func (f *Fill) GetAmount() decimal.Decimal {
	return f.Amount
}

// GetClosePrice returns the candle close price at fill time
func (f *Fill) GetClosePrice() decimal.Decimal {
	return f.ClosePrice
}

// GetPurchasePrice returns the price the trade executed at
func (f *Fill) GetPurchasePrice() decimal.Decimal {
	return f.PurchasePrice
}

// GetCommission returns the commission charged on the fill
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}

// SetCommission sets the commission charged on the fill
func (f *Fill) SetCommission(c decimal.Decimal) {
	f.Commission = c
}

// GetTotal returns the total cost of the trade including commission
func (f *Fill) GetTotal() decimal.Decimal {
	return f.Total
}
