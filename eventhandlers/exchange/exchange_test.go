package exchange

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	klineevent "github.com/thrasher-corp/gobacktest/eventtypes/kline"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

type fakeData struct {
	data.Base
}

func (f *fakeData) Load() error { return nil }

func testHolder(t *testing.T, closePrice int64) *data.HandlerHolder {
	t.Helper()
	d := &fakeData{}
	d.AppendStream(&klineevent.Kline{
		Base: event.Base{
			Time:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Symbol: "AAPL",
		},
		Close: decimal.NewFromInt(closePrice),
	})
	if _, ok := d.Next(); !ok {
		t.Fatal("could not reveal candle")
	}
	holder := &data.HandlerHolder{}
	holder.Setup()
	holder.SetDataForSymbol("AAPL", d)
	return holder
}

func testOrder(direction gbtorder.Side, amount int64) *order.Order {
	return &order.Order{
		Base: event.Base{
			Offset: 1,
			Time:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Symbol: "AAPL",
		},
		Direction:  direction,
		Status:     gbtorder.New,
		ClosePrice: decimal.NewFromInt(10),
		Amount:     decimal.NewFromInt(amount),
		OrderType:  gbtorder.Market,
	}
}

func TestSetup(t *testing.T) {
	t.Parallel()
	_, err := Setup("test", decimal.NewFromInt(-1))
	if !errors.Is(err, ErrNegativeCommissionRate) {
		t.Errorf("received: %v, expected: %v", err, ErrNegativeCommissionRate)
	}
	e, err := Setup("test", decimal.Zero)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	if !e.CommissionRate.IsZero() {
		t.Errorf("received: %v, expected: %v", e.CommissionRate, 0)
	}
}

func TestExecuteOrder(t *testing.T) {
	t.Parallel()
	e, err := Setup("test", DefaultCommissionRate)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	holder := testHolder(t, 10)

	f, err := e.ExecuteOrder(testOrder(gbtorder.Buy, 100), holder)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	if !f.GetPurchasePrice().Equal(decimal.NewFromInt(10)) {
		t.Errorf("received: %v, expected: %v", f.GetPurchasePrice(), 10)
	}
	if !f.GetAmount().Equal(decimal.NewFromInt(100)) {
		t.Errorf("received: %v, expected: %v", f.GetAmount(), 100)
	}
	// commission is rate multiplied by traded notional
	expectedCommission := decimal.NewFromInt(1)
	if !f.GetCommission().Equal(expectedCommission) {
		t.Errorf("received: %v, expected: %v", f.GetCommission(), expectedCommission)
	}
	expectedTotal := decimal.NewFromInt(1001)
	if !f.GetTotal().Equal(expectedTotal) {
		t.Errorf("received: %v, expected: %v", f.GetTotal(), expectedTotal)
	}
	if f.GetOrderID() == "" {
		t.Error("expected an assigned order id")
	}
}

func TestExecuteOrderSellCommission(t *testing.T) {
	t.Parallel()
	e, err := Setup("test", DefaultCommissionRate)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	f, err := e.ExecuteOrder(testOrder(gbtorder.Sell, 100), testHolder(t, 10))
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	if !f.GetTotal().Equal(decimal.NewFromInt(999)) {
		t.Errorf("received: %v, expected: %v", f.GetTotal(), 999)
	}
}

func TestExecuteOrderInvalid(t *testing.T) {
	t.Parallel()
	e, err := Setup("test", decimal.Zero)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	holder := testHolder(t, 10)

	tests := []struct {
		name string
		o    *order.Order
	}{
		{"zero amount", testOrder(gbtorder.Buy, 0)},
		{"negative amount", testOrder(gbtorder.Sell, -5)},
		{"signal side", testOrder(gbtorder.Long, 100)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := e.ExecuteOrder(tt.o, holder)
			if !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("received: %v, expected: %v", err, ErrInvalidOrder)
			}
			if f != nil {
				t.Errorf("received: %v, expected: %v", f, nil)
			}
		})
	}

	limit := testOrder(gbtorder.Buy, 100)
	limit.OrderType = gbtorder.Limit
	_, err = e.ExecuteOrder(limit, holder)
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("received: %v, expected: %v", err, ErrInvalidOrder)
	}
	if !errors.Is(err, gbtorder.ErrTypeIsInvalid) {
		t.Errorf("received: %v, expected: %v", err, gbtorder.ErrTypeIsInvalid)
	}

	unknown := testOrder(gbtorder.UnknownSide, 100)
	_, err = e.ExecuteOrder(unknown, holder)
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("received: %v, expected: %v", err, ErrInvalidOrder)
	}
	if !errors.Is(err, gbtorder.ErrSideIsInvalid) {
		t.Errorf("received: %v, expected: %v", err, gbtorder.ErrSideIsInvalid)
	}

	if _, err = e.ExecuteOrder(nil, holder); !errors.Is(err, common.ErrNilEvent) {
		t.Errorf("received: %v, expected: %v", err, common.ErrNilEvent)
	}
	if _, err = e.ExecuteOrder(testOrder(gbtorder.Buy, 100), nil); !errors.Is(err, common.ErrNilArguments) {
		t.Errorf("received: %v, expected: %v", err, common.ErrNilArguments)
	}
}

func TestExecuteOrderUnknownSymbol(t *testing.T) {
	t.Parallel()
	e, err := Setup("test", decimal.Zero)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	o := testOrder(gbtorder.Buy, 100)
	o.Symbol = "ZZZ"
	if _, err = e.ExecuteOrder(o, testHolder(t, 10)); !errors.Is(err, data.ErrUnknownSymbol) {
		t.Errorf("received: %v, expected: %v", err, data.ErrUnknownSymbol)
	}
}
