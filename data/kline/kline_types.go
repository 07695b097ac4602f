package kline

import (
	"github.com/thrasher-corp/gobacktest/data"
	gbtkline "github.com/thrasher-corp/gobacktest/kline"
)

// DataFromKline is a struct which implements the data.Handler interface,
// it streams a loaded candle item for a single symbol
type DataFromKline struct {
	data.Base
	Item gbtkline.Item
}
