package eventholder

import "github.com/thrasher-corp/gobacktest/common"

// Holder contains the event queue for backtester processing
type Holder struct {
	Queue []common.Event
}

// EventHolder interface details what is expected of an event holder to
// perform
type EventHolder interface {
	Reset()
	AppendEvent(common.Event)
	NextEvent() common.Event
}
