package exchange

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
)

var (
	// ErrInvalidOrder returned for degenerate orders, eg a non-positive
	// amount or a side that is not buy or sell. No fill is produced
	ErrInvalidOrder = errors.New("invalid order")
	// ErrNegativeCommissionRate returned on setup with a rate below zero
	ErrNegativeCommissionRate = errors.New("commission rate < 0")
)

// DefaultCommissionRate charges 0.1% of traded notional when a run does
// not configure its own rate
var DefaultCommissionRate = decimal.NewFromFloat(0.001)

// Exchange simulates order execution: full immediate fill at the latest
// revealed close with no slippage
type Exchange struct {
	Name           string
	CommissionRate decimal.Decimal
}

// ExecutionHandler interface dictates what an execution handler is
// expected to do
type ExecutionHandler interface {
	ExecuteOrder(order.Event, data.Holder) (*fill.Fill, error)
	Reset()
}
