// Package event provides the base shared by every backtester event type.
package event

import (
	"fmt"
	"strings"
	"time"

	"github.com/thrasher-corp/gobacktest/kline"
)

// GetOffset returns the offset in the revealed data stream
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the offset in the revealed data stream
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// IsEvent returns whether the event is an event
func (b *Base) IsEvent() bool {
	return true
}

// GetTime returns the time of the event
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetSymbol returns the symbol the event relates to
func (b *Base) GetSymbol() string {
	return b.Symbol
}

// GetExchange returns the venue the event relates to
func (b *Base) GetExchange() string {
	return b.Exchange
}

// GetInterval returns the candle interval of the event
func (b *Base) GetInterval() kline.Interval {
	return b.Interval
}

// GetReason concatenates the reasons an event's state was chosen
func (b *Base) GetReason() string {
	return strings.Join(b.Reasons, ". ")
}

// AppendReason adds a reason for the event's state, useful for tracking why
// a decision was made
func (b *Base) AppendReason(y string) {
	b.Reasons = append(b.Reasons, y)
}

// AppendReasonf adds a formatted reason for the event's state
func (b *Base) AppendReasonf(y string, addons ...interface{}) {
	b.Reasons = append(b.Reasons, fmt.Sprintf(y, addons...))
}
