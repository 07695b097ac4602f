// Package data provides the bar feed for the backtester. Each symbol's
// candles are held in a stream with an explicit cursor of revealed entries,
// strategies can only read up to and including the latest revealed candle.
package data

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
)

// Setup creates the symbol mapping
func (h *HandlerHolder) Setup() {
	if h.data == nil {
		h.data = make(map[string]Handler)
	}
}

// SetDataForSymbol assigns a data handler to the holder keyed by symbol
func (h *HandlerHolder) SetDataForSymbol(symbol string, d Handler) {
	if h.data == nil {
		h.Setup()
	}
	h.data[strings.ToUpper(symbol)] = d
}

// GetDataForSymbol returns the handler for a tracked symbol
func (h *HandlerHolder) GetDataForSymbol(symbol string) (Handler, error) {
	d, ok := h.data[strings.ToUpper(symbol)]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
	return d, nil
}

// GetAllData returns all set data in the holder
func (h *HandlerHolder) GetAllData() map[string]Handler {
	return h.data
}

// Reset returns the holder to defaults
func (h *HandlerHolder) Reset() {
	h.data = nil
}

// Reset loaded data to a blank state
func (b *Base) Reset() {
	b.latest = nil
	b.offset = 0
	b.stream = nil
}

// GetStream will return the entire data stream
func (b *Base) GetStream() []common.DataEventHandler {
	return b.stream
}

// Offset returns the number of revealed candles
func (b *Base) Offset() int64 {
	return b.offset
}

// SetStream sets the data stream for candle analysis
func (b *Base) SetStream(s []common.DataEventHandler) {
	b.stream = s
	for x := range b.stream {
		// offsets are one indexed, an event at offset n is the nth
		// revealed candle
		b.stream[x].SetOffset(int64(x) + 1)
	}
}

// AppendStream appends new data events onto the stream
func (b *Base) AppendStream(s ...common.DataEventHandler) {
	for x := range s {
		if s[x] == nil {
			continue
		}
		s[x].SetOffset(int64(len(b.stream)) + 1)
		b.stream = append(b.stream, s[x])
	}
}

// Next will return the next unrevealed candle and advance the cursor, the
// second return is false once the underlying series is exhausted
func (b *Base) Next() (common.DataEventHandler, bool) {
	if int64(len(b.stream)) <= b.offset {
		return nil, false
	}
	ret := b.stream[b.offset]
	b.offset++
	b.latest = ret
	return ret, true
}

// History will return all previously revealed data events
func (b *Base) History() []common.DataEventHandler {
	return b.stream[:b.offset]
}

// Latest will return the most recently revealed data event
func (b *Base) Latest() common.DataEventHandler {
	return b.latest
}

// LatestN returns up to the n most recently revealed data events, fewer
// when history is shorter. Callers must treat a short result as not enough
// data yet
func (b *Base) LatestN(n int) []common.DataEventHandler {
	if n <= 0 {
		return nil
	}
	h := b.History()
	if n > len(h) {
		n = len(h)
	}
	return h[len(h)-n:]
}

// IsLastEvent returns whether the latest revealed candle is the final entry
// of the underlying series
func (b *Base) IsLastEvent() bool {
	return b.latest != nil && b.offset == int64(len(b.stream))
}

// SortStream sorts the stream by timestamp, oldest first
func (b *Base) SortStream() {
	sort.Slice(b.stream, func(i, j int) bool {
		return b.stream[i].GetTime().Before(b.stream[j].GetTime())
	})
	for x := range b.stream {
		b.stream[x].SetOffset(int64(x) + 1)
	}
}

// StreamOpen returns all revealed open prices
func (b *Base) StreamOpen() []decimal.Decimal {
	ret := make([]decimal.Decimal, b.offset)
	for x := range b.stream[:b.offset] {
		ret[x] = b.stream[x].GetOpenPrice()
	}
	return ret
}

// StreamHigh returns all revealed high prices
func (b *Base) StreamHigh() []decimal.Decimal {
	ret := make([]decimal.Decimal, b.offset)
	for x := range b.stream[:b.offset] {
		ret[x] = b.stream[x].GetHighPrice()
	}
	return ret
}

// StreamLow returns all revealed low prices
func (b *Base) StreamLow() []decimal.Decimal {
	ret := make([]decimal.Decimal, b.offset)
	for x := range b.stream[:b.offset] {
		ret[x] = b.stream[x].GetLowPrice()
	}
	return ret
}

// StreamClose returns all revealed close prices
func (b *Base) StreamClose() []decimal.Decimal {
	ret := make([]decimal.Decimal, b.offset)
	for x := range b.stream[:b.offset] {
		ret[x] = b.stream[x].GetClosePrice()
	}
	return ret
}

// StreamVol returns all revealed volumes
func (b *Base) StreamVol() []decimal.Decimal {
	ret := make([]decimal.Decimal, b.offset)
	for x := range b.stream[:b.offset] {
		ret[x] = b.stream[x].GetVolume()
	}
	return ret
}
