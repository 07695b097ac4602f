// Package portfolio manages the account state machine of a backtest. It
// turns strategy signals into orders, applies fills to positions and cash,
// and appends one mark-to-market snapshot to its ledgers per tick.
package portfolio

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

// Setup creates a portfolio tracking the supplied symbols. The symbol set
// is fixed for the lifetime of the run, it is never grown or shrunk
func Setup(symbols []string, sizeManager SizeHandler, initialFunds decimal.Decimal) (*Portfolio, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if sizeManager == nil {
		return nil, ErrSizeManagerUnset
	}
	if initialFunds.LessThan(decimal.Zero) {
		return nil, ErrNegativeInitialFunds
	}
	p := &Portfolio{
		initialFunds:     initialFunds,
		cash:             initialFunds,
		sizeManager:      sizeManager,
		currentPositions: make(map[string]decimal.Decimal, len(symbols)),
	}
	for x := range symbols {
		p.currentPositions[strings.ToUpper(symbols[x])] = decimal.Zero
	}
	return p, nil
}

// Reset returns the portfolio to its initial state, keeping the symbol set
// and size manager
func (p *Portfolio) Reset() {
	p.cash = p.initialFunds
	p.commission = decimal.Zero
	p.allPositions = nil
	p.allHoldings = nil
	for symbol := range p.currentPositions {
		p.currentPositions[symbol] = decimal.Zero
	}
}

// OnSignal applies the signal transition table and returns the resulting
// order, nil when the signal is a no-op. Long or Short while flat opens a
// fixed-size position, ClosePosition flattens an open one, every other
// combination does nothing
func (p *Portfolio) OnSignal(ev signal.Event, _ data.Holder) (*order.Order, error) {
	if ev == nil {
		return nil, common.ErrNilEvent
	}
	if p.sizeManager == nil {
		return nil, ErrSizeManagerUnset
	}
	quantity, err := p.GetPositionForSymbol(ev.GetSymbol())
	if err != nil {
		return nil, err
	}

	var direction gbtorder.Side
	var amount decimal.Decimal
	switch ev.GetDirection() {
	case gbtorder.Long:
		if !quantity.IsZero() {
			ev.AppendReasonf("already holding %v units, not entering long", quantity)
			return nil, nil
		}
		direction = gbtorder.Buy
		amount, err = p.sizeManager.SizeOrder(ev.GetStrength())
		if err != nil {
			return nil, err
		}
	case gbtorder.Short:
		if !quantity.IsZero() {
			ev.AppendReasonf("already holding %v units, not entering short", quantity)
			return nil, nil
		}
		direction = gbtorder.Sell
		amount, err = p.sizeManager.SizeOrder(ev.GetStrength())
		if err != nil {
			return nil, err
		}
	case gbtorder.ClosePosition:
		if quantity.IsZero() {
			ev.AppendReason("no position to close")
			return nil, nil
		}
		if quantity.IsPositive() {
			direction = gbtorder.Sell
		} else {
			direction = gbtorder.Buy
		}
		amount = quantity.Abs()
	default:
		// DoNothing, MissingData and friends raise no order
		return nil, nil
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		ev.AppendReason("sized amount is zero, order suppressed")
		return nil, nil
	}

	o := &order.Order{
		Base: event.Base{
			Offset:   ev.GetOffset(),
			Exchange: ev.GetExchange(),
			Time:     ev.GetTime(),
			Interval: ev.GetInterval(),
			Symbol:   ev.GetSymbol(),
		},
		Direction:  direction,
		Status:     gbtorder.New,
		ClosePrice: ev.GetClosePrice(),
		Amount:     amount,
		OrderType:  gbtorder.Market,
	}
	o.AppendReasonf("signal %v from %v sized to %v units", ev.GetDirection(), ev.GetStrategyID(), amount)
	return o, nil
}

// OnFill updates positions and cash from an executed order. Fills are the
// only writer of position state
func (p *Portfolio) OnFill(ev fill.Event) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	symbol := strings.ToUpper(ev.GetSymbol())
	quantity, ok := p.currentPositions[symbol]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}

	signedAmount := ev.GetAmount()
	switch ev.GetDirection() {
	case gbtorder.Buy:
	case gbtorder.Sell:
		signedAmount = signedAmount.Neg()
	default:
		return fmt.Errorf("%w: %v", gbtorder.ErrSideIsInvalid, ev.GetDirection())
	}

	p.currentPositions[symbol] = quantity.Add(signedAmount)
	p.cash = p.cash.Sub(signedAmount.Mul(ev.GetPurchasePrice())).Sub(ev.GetCommission())
	p.commission = p.commission.Add(ev.GetCommission())
	return nil
}

// UpdateHoldings appends one snapshot to the position and holdings ledgers
// using the latest revealed close per symbol. It must run once per market
// event, whether any trading occurred or not
func (p *Portfolio) UpdateHoldings(ev common.Event, d data.Holder) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	if d == nil {
		return common.ErrNilArguments
	}

	marketValues := make(map[string]decimal.Decimal, len(p.currentPositions))
	positions := make(map[string]decimal.Decimal, len(p.currentPositions))
	for symbol, quantity := range p.currentPositions {
		handler, err := d.GetDataForSymbol(symbol)
		if err != nil {
			return err
		}
		latest := handler.Latest()
		if latest == nil {
			return fmt.Errorf("%w for %v at %v", common.ErrNilEvent, symbol, ev.GetTime())
		}
		marketValues[symbol] = quantity.Mul(latest.GetClosePrice())
		positions[symbol] = quantity
	}

	h, err := holdings.Create(ev.GetOffset(), ev.GetTime(), p.initialFunds, p.cash, p.commission, marketValues)
	if err != nil {
		return err
	}
	p.allHoldings = append(p.allHoldings, h)
	p.allPositions = append(p.allPositions, PositionSnapshot{
		Offset:    ev.GetOffset(),
		Timestamp: ev.GetTime(),
		Positions: positions,
	})
	return nil
}

// GetPositionForSymbol returns the signed unit count for a tracked symbol
func (p *Portfolio) GetPositionForSymbol(symbol string) (decimal.Decimal, error) {
	quantity, ok := p.currentPositions[strings.ToUpper(symbol)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrUnknownSymbol, symbol)
	}
	return quantity, nil
}

// IsLong returns whether a positive position is held for the symbol
func (p *Portfolio) IsLong(symbol string) (bool, error) {
	quantity, err := p.GetPositionForSymbol(symbol)
	if err != nil {
		return false, err
	}
	return quantity.IsPositive(), nil
}

// IsShort returns whether a negative position is held for the symbol
func (p *Portfolio) IsShort(symbol string) (bool, error) {
	quantity, err := p.GetPositionForSymbol(symbol)
	if err != nil {
		return false, err
	}
	return quantity.IsNegative(), nil
}

// IsInvested returns whether any position is held for the symbol
func (p *Portfolio) IsInvested(symbol string) (bool, error) {
	quantity, err := p.GetPositionForSymbol(symbol)
	if err != nil {
		return false, err
	}
	return !quantity.IsZero(), nil
}

// GetInitialFunds returns the funds the portfolio started the run with
func (p *Portfolio) GetInitialFunds() decimal.Decimal {
	return p.initialFunds
}

// GetCash returns current uncommitted funds
func (p *Portfolio) GetCash() decimal.Decimal {
	return p.cash
}

// GetCommission returns cumulative commission paid across the run
func (p *Portfolio) GetCommission() decimal.Decimal {
	return p.commission
}

// GetLatestHoldings returns the most recently appended snapshot
func (p *Portfolio) GetLatestHoldings() (holdings.Holding, error) {
	if len(p.allHoldings) == 0 {
		return holdings.Holding{}, ErrNoHoldings
	}
	return p.allHoldings[len(p.allHoldings)-1], nil
}

// HoldingsLedger returns the append-only holdings snapshots in tick order
func (p *Portfolio) HoldingsLedger() []holdings.Holding {
	return p.allHoldings
}

// PositionsLedger returns the append-only position snapshots in tick order
func (p *Portfolio) PositionsLedger() []PositionSnapshot {
	return p.allPositions
}

// EquityCurve derives period returns and a cumulative equity index from
// the holdings ledger totals. It is a pure read of the ledger and returns
// the same result however often it is called
func (p *Portfolio) EquityCurve() []EquityPoint {
	curve := make([]EquityPoint, len(p.allHoldings))
	equity := decimal.NewFromInt(1)
	for x := range p.allHoldings {
		point := EquityPoint{
			Offset:    p.allHoldings[x].Offset,
			Timestamp: p.allHoldings[x].Timestamp,
			Total:     p.allHoldings[x].Total,
		}
		if x > 0 {
			previous := p.allHoldings[x-1].Total
			if !previous.IsZero() {
				point.Return = point.Total.Sub(previous).Div(previous)
			}
		}
		equity = equity.Mul(decimal.NewFromInt(1).Add(point.Return))
		point.Equity = equity
		curve[x] = point
	}
	return curve
}
