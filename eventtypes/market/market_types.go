package market

import (
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
)

// Market signals that a new synchronised tick of candle data has been
// revealed for every tracked symbol. It carries no payload, the revealed
// candles are read through the data holder
type Market struct {
	event.Base
}

// Event interface for a market tick notification
type Event interface {
	common.Event
	IsMarket() bool
}
