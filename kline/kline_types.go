package kline

import (
	"errors"
	"time"
)

// Consts here define basic time intervals
const (
	OneMin     = Interval(time.Minute)
	FiveMin    = 5 * OneMin
	FifteenMin = 15 * OneMin
	ThirtyMin  = 30 * OneMin
	OneHour    = Interval(time.Hour)
	FourHour   = 4 * OneHour
	OneDay     = 24 * OneHour
	OneWeek    = 7 * OneDay
)

var (
	// ErrNoCandleData returned when a loader produced an item without candles
	ErrNoCandleData = errors.New("no candle data provided")
	// ErrUnsetSymbol returned when an item has no symbol to key data against
	ErrUnsetSymbol = errors.New("symbol unset")
	// ErrUnsetInterval returned when an item interval is zero
	ErrUnsetInterval = errors.New("interval unset")
)

// Interval type for supported candle sizes
type Interval time.Duration

// Item holds all the relevant information for an internal candle series
type Item struct {
	Exchange string
	Symbol   string
	Interval Interval
	Candles  []Candle
}

// Candle holds historic rate information for a symbol at a timestamp
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}
