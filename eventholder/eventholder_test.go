package eventholder

import (
	"testing"

	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/market"
)

func TestNextEventEmpty(t *testing.T) {
	t.Parallel()
	e := Holder{}
	if ev := e.NextEvent(); ev != nil {
		t.Errorf("received: %v, expected: %v", ev, nil)
	}
}

func TestFIFOOrdering(t *testing.T) {
	t.Parallel()
	e := Holder{}
	first := &market.Market{Base: event.Base{Offset: 1}}
	second := &market.Market{Base: event.Base{Offset: 2}}
	third := &market.Market{Base: event.Base{Offset: 3}}
	e.AppendEvent(first)
	e.AppendEvent(second)
	e.AppendEvent(third)

	for i, expected := range []int64{1, 2, 3} {
		ev := e.NextEvent()
		if ev == nil {
			t.Fatalf("event %v is nil", i)
		}
		if ev.GetOffset() != expected {
			t.Errorf("received: %v, expected: %v", ev.GetOffset(), expected)
		}
	}
	if ev := e.NextEvent(); ev != nil {
		t.Errorf("received: %v, expected: %v", ev, nil)
	}
}

func TestReset(t *testing.T) {
	t.Parallel()
	e := Holder{}
	e.AppendEvent(&market.Market{})
	e.Reset()
	if ev := e.NextEvent(); ev != nil {
		t.Errorf("received: %v, expected: %v", ev, nil)
	}
}
