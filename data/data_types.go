package data

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
)

var (
	// ErrUnknownSymbol returned when a symbol is not tracked by the holder.
	// This is a configuration error, it is not retried
	ErrUnknownSymbol = errors.New("symbol not tracked by data holder")
)

// Base is the underlying handler implementation shared across data loaders.
// It owns the full historical sequence for one symbol and the cursor of
// already revealed candles, look-ahead is never exposed
type Base struct {
	latest common.DataEventHandler
	stream []common.DataEventHandler
	offset int64
}

// Handler interface for loading and streaming one symbol's data
type Handler interface {
	Loader
	Streamer
	Reset()
}

// Loader interface for loading data into a backtest supported format
type Loader interface {
	Load() error
	AppendStream(s ...common.DataEventHandler)
}

// Streamer interface handles reading, progressing and projecting backtest
// data
type Streamer interface {
	Next() (common.DataEventHandler, bool)
	GetStream() []common.DataEventHandler
	History() []common.DataEventHandler
	Latest() common.DataEventHandler
	LatestN(n int) []common.DataEventHandler
	Offset() int64
	IsLastEvent() bool

	StreamOpen() []decimal.Decimal
	StreamHigh() []decimal.Decimal
	StreamLow() []decimal.Decimal
	StreamClose() []decimal.Decimal
	StreamVol() []decimal.Decimal
}

// HandlerHolder stores a data handler per tracked symbol
type HandlerHolder struct {
	data map[string]Handler
}

// Holder interface dictates what a data holder is expected to do
type Holder interface {
	Setup()
	SetDataForSymbol(symbol string, h Handler)
	GetDataForSymbol(symbol string) (Handler, error)
	GetAllData() map[string]Handler
	Reset()
}
