package order

import "errors"

var (
	// ErrSideIsInvalid occurs when the order side is invalid
	ErrSideIsInvalid = errors.New("order side is invalid")
	// ErrTypeIsInvalid occurs when the order type is invalid
	ErrTypeIsInvalid = errors.New("order type is invalid")
)

// Side enforces a standard for order sides across the backtester
type Side string

// Order side types
const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
	// Long and Short are signal directions raised by strategies,
	// the portfolio manager converts them into Buy or Sell orders
	Long  Side = "LONG"
	Short Side = "SHORT"
	// ClosePosition signals that an existing position should be flattened
	ClosePosition Side = "CLOSE POSITION"
	UnknownSide   Side = "UNKNOWN"
)

// Type enforces a standard for order types across the backtester
type Type string

// Order types. The simulated exchange only fills market orders
const (
	Market      Type = "MARKET"
	Limit       Type = "LIMIT"
	UnknownType Type = "UNKNOWN"
)

// Status defines order lifecycle states
type Status string

// Order statuses
const (
	New           Status = "NEW"
	Filled        Status = "FILLED"
	Rejected      Status = "REJECTED"
	UnknownStatus Status = "UNKNOWN"
)
