// Package exchange simulates order execution for the backtester. Orders
// fill in full at the latest revealed close, immediately and without
// slippage, a live implementation would await broker acknowledgement
// instead.
package exchange

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
	"github.com/thrasher-corp/gobacktest/log"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

// Setup returns a simulated exchange with the supplied commission rate.
// A zero rate is valid and charges nothing
func Setup(name string, commissionRate decimal.Decimal) (*Exchange, error) {
	if commissionRate.IsNegative() {
		return nil, fmt.Errorf("%w: %v", ErrNegativeCommissionRate, commissionRate)
	}
	return &Exchange{
		Name:           name,
		CommissionRate: commissionRate,
	}, nil
}

// Reset is a no-op, the exchange carries configuration but no run state
func (e *Exchange) Reset() {}

// ExecuteOrder fills the order at the latest revealed close and returns
// the resulting fill event. Degenerate orders are rejected with
// ErrInvalidOrder and produce no fill
func (e *Exchange) ExecuteOrder(o order.Event, d data.Holder) (*fill.Fill, error) {
	if o == nil {
		return nil, common.ErrNilEvent
	}
	if d == nil {
		return nil, common.ErrNilArguments
	}
	if err := e.validate(o); err != nil {
		return nil, err
	}

	handler, err := d.GetDataForSymbol(o.GetSymbol())
	if err != nil {
		return nil, err
	}
	latest := handler.Latest()
	if latest == nil {
		return nil, fmt.Errorf("%w for %v", common.ErrNilEvent, o.GetSymbol())
	}
	price := latest.GetClosePrice()

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	o.SetID(id.String())

	notional := o.GetAmount().Mul(price)
	commission := e.CommissionRate.Mul(notional)
	total := notional.Add(commission)
	if o.GetDirection() == gbtorder.Sell {
		total = notional.Sub(commission)
	}

	f := &fill.Fill{
		Base: event.Base{
			Offset:   o.GetOffset(),
			Exchange: e.Name,
			Time:     o.GetTime(),
			Interval: o.GetInterval(),
			Symbol:   o.GetSymbol(),
		},
		OrderID:       o.GetID(),
		Direction:     o.GetDirection(),
		Amount:        o.GetAmount(),
		ClosePrice:    o.GetClosePrice(),
		PurchasePrice: price,
		Commission:    commission,
		Total:         total,
	}
	log.Debugf(log.Exchange, "filled %v %v %v @ %v commission %v",
		f.Direction, f.Amount, f.Symbol, price, commission)
	return f, nil
}

func (e *Exchange) validate(o order.Event) error {
	if o.GetAmount().LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount %v", ErrInvalidOrder, o.GetAmount())
	}
	if o.GetOrderType() != gbtorder.Market {
		return fmt.Errorf("%w: %w %v, only market orders are supported", ErrInvalidOrder, gbtorder.ErrTypeIsInvalid, o.GetOrderType())
	}
	direction := o.GetDirection()
	if !direction.IsValid() {
		return fmt.Errorf("%w: %w %v", ErrInvalidOrder, gbtorder.ErrSideIsInvalid, direction)
	}
	if direction != gbtorder.Buy && direction != gbtorder.Sell {
		return fmt.Errorf("%w: side %v cannot be executed", ErrInvalidOrder, direction)
	}
	return nil
}
