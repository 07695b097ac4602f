package common

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/kline"
	"github.com/thrasher-corp/gobacktest/order"
)

const (
	// DoNothing is an explicit signal for the backtester to not perform an
	// action based upon strategy results
	DoNothing order.Side = "DO NOTHING"
	// MissingData is signalled during the strategy phase when data has been
	// identified as missing. No buy or sell events can occur
	MissingData order.Side = "MISSING DATA"
	// CouldNotBuy is flagged when a buy signal is raised in the strategy
	// phase, but the portfolio manager cannot place an order
	CouldNotBuy order.Side = "COULD NOT BUY"
	// CouldNotSell is flagged when a sell signal is raised in the strategy
	// phase, but the portfolio manager cannot place an order
	CouldNotSell order.Side = "COULD NOT SELL"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were
	// passed in when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it
	// shouldn't have
	ErrNilEvent = errors.New("nil event received")
	// ErrInvalidDataType occurs when an event is of an unexpected type
	ErrInvalidDataType = errors.New("invalid data type received")
)

// Event interface implements required GetTime() & GetSymbol() return
type Event interface {
	GetOffset() int64
	SetOffset(int64)
	IsEvent() bool
	GetTime() time.Time
	GetSymbol() string
	GetExchange() string
	GetInterval() kline.Interval
	GetReason() string
	AppendReason(string)
	AppendReasonf(string, ...interface{})
}

// DataEventHandler interface used for loading and interacting with data
type DataEventHandler interface {
	Event
	GetOpenPrice() decimal.Decimal
	GetHighPrice() decimal.Decimal
	GetLowPrice() decimal.Decimal
	GetClosePrice() decimal.Decimal
	GetVolume() decimal.Decimal
}

// Directioner dictates the side of an order or signal
type Directioner interface {
	SetDirection(side order.Side)
	GetDirection() order.Side
}
