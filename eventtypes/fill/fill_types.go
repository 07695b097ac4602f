package fill

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

// Fill is an event that details the result of executing an order
type Fill struct {
	event.Base
	OrderID       string
	Direction     gbtorder.Side
	Amount        decimal.Decimal
	ClosePrice    decimal.Decimal
	PurchasePrice decimal.Decimal
	Commission    decimal.Decimal
	// Total is the notional cost of the trade including the commission
	Total decimal.Decimal
}

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	common.Directioner

	GetOrderID() string
	SetAmount(decimal.Decimal)
	GetAmount() decimal.Decimal
	GetClosePrice() decimal.Decimal
	GetPurchasePrice() decimal.Decimal
	GetCommission() decimal.Decimal
	SetCommission(decimal.Decimal)
	GetTotal() decimal.Decimal
	IsFill() bool
}
