// Package eventholder provides the FIFO event queue which serialises all
// backtester processing. Strict arrival-order processing is what makes a
// run deterministic and replayable.
package eventholder

import "github.com/thrasher-corp/gobacktest/common"

// Reset returns the event holder to its default state
func (e *Holder) Reset() {
	e.Queue = nil
}

// AppendEvent adds and event to the queue. Appending never blocks, the
// queue is unbounded
func (e *Holder) AppendEvent(i common.Event) {
	e.Queue = append(e.Queue, i)
}

// NextEvent removes the current event and returns the next event in the
// queue. A nil response signals the queue has been drained for this tick,
// it is not an error
func (e *Holder) NextEvent() (i common.Event) {
	if len(e.Queue) == 0 {
		return nil
	}

	i = e.Queue[0]
	e.Queue = e.Queue[1:]

	return i
}
