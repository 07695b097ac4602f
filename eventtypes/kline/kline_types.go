package kline

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
)

// Kline holds one revealed candle of a symbol's data stream
type Kline struct {
	event.Base
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Event interface for a candle data event
type Event interface {
	common.DataEventHandler
}
