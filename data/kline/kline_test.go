package kline

import (
	"errors"
	"testing"
	"time"

	"github.com/thrasher-corp/gobacktest/common"
	gbtkline "github.com/thrasher-corp/gobacktest/kline"
)

func TestNewDataFromKline(t *testing.T) {
	t.Parallel()
	_, err := NewDataFromKline(nil)
	if !errors.Is(err, common.ErrNilArguments) {
		t.Errorf("received: %v, expected: %v", err, common.ErrNilArguments)
	}

	_, err = NewDataFromKline(&gbtkline.Item{})
	if !errors.Is(err, gbtkline.ErrUnsetSymbol) {
		t.Errorf("received: %v, expected: %v", err, gbtkline.ErrUnsetSymbol)
	}

	tt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	item := &gbtkline.Item{
		Exchange: "test",
		Symbol:   "AAPL",
		Interval: gbtkline.OneDay,
		Candles: []gbtkline.Candle{
			{Time: tt.AddDate(0, 0, 1), Open: 2, High: 2, Low: 2, Close: 2, Volume: 2},
			{Time: tt, Open: 1, High: 1, Low: 1, Close: 1, Volume: 1},
		},
	}
	d, err := NewDataFromKline(item)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	stream := d.GetStream()
	if len(stream) != 2 {
		t.Fatalf("received: %v, expected: %v", len(stream), 2)
	}
	// candles are sorted on load, oldest first
	if !stream[0].GetTime().Equal(tt) {
		t.Errorf("received: %v, expected: %v", stream[0].GetTime(), tt)
	}
	if stream[1].GetClosePrice().IntPart() != 2 {
		t.Errorf("received: %v, expected: %v", stream[1].GetClosePrice(), 2)
	}
}
