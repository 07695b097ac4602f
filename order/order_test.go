package order

import "testing"

func TestSideIsValid(t *testing.T) {
	t.Parallel()
	valid := []Side{Buy, Sell, Long, Short, ClosePosition}
	for x := range valid {
		if !valid[x].IsValid() {
			t.Errorf("received: %v, expected: %v for %v", false, true, valid[x])
		}
	}
	invalid := []Side{UnknownSide, Side(""), Side("HODL")}
	for x := range invalid {
		if invalid[x].IsValid() {
			t.Errorf("received: %v, expected: %v for %v", true, false, invalid[x])
		}
	}
}

func TestStringers(t *testing.T) {
	t.Parallel()
	if Buy.String() != "BUY" {
		t.Errorf("received: %v, expected: %v", Buy.String(), "BUY")
	}
	if Market.String() != "MARKET" {
		t.Errorf("received: %v, expected: %v", Market.String(), "MARKET")
	}
	if New.String() != "NEW" {
		t.Errorf("received: %v, expected: %v", New.String(), "NEW")
	}
}
