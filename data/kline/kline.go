// Package kline converts candle items into the event stream consumed by the
// backtester bar feed.
package kline

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	klineevent "github.com/thrasher-corp/gobacktest/eventtypes/kline"
	gbtkline "github.com/thrasher-corp/gobacktest/kline"
)

// NewDataFromKline returns a handler loaded from the supplied item
func NewDataFromKline(item *gbtkline.Item) (*DataFromKline, error) {
	if item == nil {
		return nil, common.ErrNilArguments
	}
	d := &DataFromKline{Item: *item}
	if err := d.Load(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load validates the candle item and sets the stream of data events
func (d *DataFromKline) Load() error {
	if err := d.Item.Validate(); err != nil {
		return err
	}

	klineData := make([]common.DataEventHandler, len(d.Item.Candles))
	for i := range d.Item.Candles {
		klineData[i] = &klineevent.Kline{
			Base: event.Base{
				Exchange: d.Item.Exchange,
				Time:     d.Item.Candles[i].Time,
				Interval: d.Item.Interval,
				Symbol:   d.Item.Symbol,
			},
			Open:   decimal.NewFromFloat(d.Item.Candles[i].Open),
			High:   decimal.NewFromFloat(d.Item.Candles[i].High),
			Low:    decimal.NewFromFloat(d.Item.Candles[i].Low),
			Close:  decimal.NewFromFloat(d.Item.Candles[i].Close),
			Volume: decimal.NewFromFloat(d.Item.Candles[i].Volume),
		}
	}
	d.SetStream(klineData)
	d.SortStream()
	return nil
}
