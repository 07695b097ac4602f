// Package base provides a base strategy implementation with shared helpers
// for building signals from the latest revealed data.
package base

import (
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
)

// GetBaseData returns a signal seeded from the latest revealed candle for
// the handler's symbol
func (s *Strategy) GetBaseData(d data.Handler) (signal.Signal, error) {
	if d == nil {
		return signal.Signal{}, common.ErrNilArguments
	}
	latest := d.Latest()
	if latest == nil {
		return signal.Signal{}, common.ErrNilEvent
	}
	return signal.Signal{
		Base: event.Base{
			Offset:   latest.GetOffset(),
			Exchange: latest.GetExchange(),
			Time:     latest.GetTime(),
			Interval: latest.GetInterval(),
			Symbol:   latest.GetSymbol(),
		},
		ClosePrice: latest.GetClosePrice(),
	}, nil
}
