package event

import (
	"time"

	"github.com/thrasher-corp/gobacktest/kline"
)

// Base is the underlying event across all backtester actions, it ties an
// event to a point in the revealed data stream
type Base struct {
	Offset   int64
	Exchange string
	Time     time.Time
	Interval kline.Interval
	Symbol   string
	Reasons  []string
}
