package data

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/kline"
)

func makeStream(n int) []common.DataEventHandler {
	tt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	stream := make([]common.DataEventHandler, n)
	for x := 0; x < n; x++ {
		stream[x] = &kline.Kline{
			Base: event.Base{
				Exchange: "test",
				Time:     tt.Add(time.Duration(x) * time.Hour),
				Symbol:   "AAPL",
			},
			Close: decimal.NewFromInt(int64(100 + x)),
		}
	}
	return stream
}

func TestSetStreamOffsets(t *testing.T) {
	t.Parallel()
	b := Base{}
	b.SetStream(makeStream(3))
	stream := b.GetStream()
	for x := range stream {
		if stream[x].GetOffset() != int64(x)+1 {
			t.Errorf("received: %v, expected: %v", stream[x].GetOffset(), x+1)
		}
	}
}

func TestNextAdvancesCursor(t *testing.T) {
	t.Parallel()
	b := Base{}
	b.SetStream(makeStream(2))
	ev, ok := b.Next()
	if !ok {
		t.Fatal("expected an event")
	}
	if ev.GetOffset() != 1 {
		t.Errorf("received: %v, expected: %v", ev.GetOffset(), 1)
	}
	if b.Latest() != ev {
		t.Error("latest should be the most recently revealed event")
	}
	if b.IsLastEvent() {
		t.Error("stream has another candle")
	}
	if _, ok = b.Next(); !ok {
		t.Fatal("expected an event")
	}
	if !b.IsLastEvent() {
		t.Error("stream should be exhausted")
	}
	if _, ok = b.Next(); ok {
		t.Error("expected exhaustion")
	}
}

func TestNoLookAhead(t *testing.T) {
	t.Parallel()
	b := Base{}
	b.SetStream(makeStream(5))
	b.Next()
	b.Next()
	if history := b.History(); len(history) != 2 {
		t.Errorf("received: %v, expected: %v", len(history), 2)
	}
	if closes := b.StreamClose(); len(closes) != 2 {
		t.Errorf("received: %v, expected: %v", len(closes), 2)
	}
}

func TestLatestNShortHistory(t *testing.T) {
	t.Parallel()
	b := Base{}
	b.SetStream(makeStream(10))
	for x := 0; x < 10; x++ {
		b.Next()
	}
	// requesting more bars than revealed returns what exists, callers
	// treat a short result as not enough data yet
	if got := b.LatestN(100); len(got) != 10 {
		t.Errorf("received: %v, expected: %v", len(got), 10)
	}
	if got := b.LatestN(3); len(got) != 3 {
		t.Errorf("received: %v, expected: %v", len(got), 3)
	}
	got := b.LatestN(1)
	if got[0].GetOffset() != 10 {
		t.Errorf("received: %v, expected: %v", got[0].GetOffset(), 10)
	}
	if got := b.LatestN(0); got != nil {
		t.Errorf("received: %v, expected: %v", got, nil)
	}
}

func TestHandlerHolderUnknownSymbol(t *testing.T) {
	t.Parallel()
	h := HandlerHolder{}
	h.Setup()
	b := &fakeHandler{}
	h.SetDataForSymbol("aapl", b)

	resp, err := h.GetDataForSymbol("AAPL")
	if err != nil {
		t.Errorf("received: %v, expected: %v", err, nil)
	}
	if resp != b {
		t.Error("expected the stored handler")
	}

	_, err = h.GetDataForSymbol("ZZZ")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("received: %v, expected: %v", err, ErrUnknownSymbol)
	}
}

func TestSortStream(t *testing.T) {
	t.Parallel()
	b := Base{}
	stream := makeStream(3)
	b.SetStream([]common.DataEventHandler{stream[2], stream[0], stream[1]})
	b.SortStream()
	sorted := b.GetStream()
	for x := 1; x < len(sorted); x++ {
		if sorted[x].GetTime().Before(sorted[x-1].GetTime()) {
			t.Error("stream is not sorted by timestamp")
		}
		if sorted[x].GetOffset() != int64(x)+1 {
			t.Errorf("received: %v, expected: %v", sorted[x].GetOffset(), x+1)
		}
	}
}

type fakeHandler struct {
	Base
}

func (f *fakeHandler) Load() error { return nil }
