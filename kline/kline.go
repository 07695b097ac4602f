// Package kline provides the candle containers that data loaders fill and
// the feed handlers stream from.
package kline

import (
	"fmt"
	"sort"
	"time"
)

// Duration returns the interval casted as a time.Duration
func (i Interval) Duration() time.Duration {
	return time.Duration(i)
}

// String implements the stringer interface
func (i Interval) String() string {
	return i.Duration().String()
}

// Validate checks an item is populated enough to be streamed
func (i *Item) Validate() error {
	if i.Symbol == "" {
		return ErrUnsetSymbol
	}
	if i.Interval <= 0 {
		return fmt.Errorf("%w for %v", ErrUnsetInterval, i.Symbol)
	}
	if len(i.Candles) == 0 {
		return fmt.Errorf("%w for %v", ErrNoCandleData, i.Symbol)
	}
	return nil
}

// SortCandlesByTimestamp sorts candles chronologically, oldest first
func (i *Item) SortCandlesByTimestamp() {
	sort.Slice(i.Candles, func(x, y int) bool {
		return i.Candles[x].Time.Before(i.Candles[y].Time)
	})
}
