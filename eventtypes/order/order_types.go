package order

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

// Order contains all details for an order event, raised by the portfolio
// manager for the exchange handler to execute
type Order struct {
	event.Base
	ID         string
	Direction  gbtorder.Side
	Status     gbtorder.Status
	ClosePrice decimal.Decimal
	Amount     decimal.Decimal
	OrderType  gbtorder.Type
}

// Event inherits common event interfaces along with extra functions related
// to handling orders
type Event interface {
	common.Event
	common.Directioner

	SetAmount(decimal.Decimal)
	GetAmount() decimal.Decimal
	GetClosePrice() decimal.Decimal
	IsOrder() bool
	GetStatus() gbtorder.Status
	SetID(id string)
	GetID() string
	GetOrderType() gbtorder.Type
}
