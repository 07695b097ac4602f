// Package smacross implements a simple moving average crossover strategy.
// A fast average crossing above the slow average opens a long position,
// crossing below opens a short, an opposite cross while invested flattens
// the position first.
package smacross

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gct-ta/indicators"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies/base"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
	"github.com/thrasher-corp/gobacktest/order"
)

const (
	// Name is the strategy name
	Name          = "smacross"
	fastPeriodKey = "fast-period"
	slowPeriodKey = "slow-period"
	description   = `A moving average crossover strategy. Signals long when the fast simple moving average of closes crosses above the slow one and short when it crosses below`
)

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnSignal handles a market tick for one symbol and returns what action
// the strategy believes should occur
func (s *Strategy) OnSignal(d data.Handler, p portfolio.Handler) (signal.Event, error) {
	if d == nil {
		return nil, common.ErrNilArguments
	}
	es, err := s.GetBaseData(d)
	if err != nil {
		return nil, err
	}
	es.StrategyID = Name
	es.SetStrength(decimal.NewFromInt(1))

	latest := d.Latest()
	if offset := latest.GetOffset(); offset <= s.slowPeriod.IntPart() {
		es.SetDirection(common.DoNothing)
		es.AppendReasonf("not enough data for signal generation, have %v candles, need %v", offset, s.slowPeriod.Add(decimal.NewFromInt(1)))
		return &es, nil
	}

	closes := streamToFloat(d.StreamClose())
	fast := indicators.SMA(closes, int(s.fastPeriod.IntPart()))
	slow := indicators.SMA(closes, int(s.slowPeriod.IntPart()))
	latestFast := decimal.NewFromFloat(fast[len(fast)-1])
	latestSlow := decimal.NewFromFloat(slow[len(slow)-1])

	switch {
	case latestFast.GreaterThan(latestSlow):
		if short, _ := s.isShort(p, es.GetSymbol()); short {
			es.SetDirection(order.ClosePosition)
			es.AppendReason("fast average crossed above slow, closing short")
			break
		}
		if long, _ := s.isLong(p, es.GetSymbol()); long {
			es.SetDirection(common.DoNothing)
			es.AppendReason("already long")
			break
		}
		es.SetDirection(order.Long)
	case latestFast.LessThan(latestSlow):
		if long, _ := s.isLong(p, es.GetSymbol()); long {
			es.SetDirection(order.ClosePosition)
			es.AppendReason("fast average crossed below slow, closing long")
			break
		}
		if short, _ := s.isShort(p, es.GetSymbol()); short {
			es.SetDirection(common.DoNothing)
			es.AppendReason("already short")
			break
		}
		es.SetDirection(order.Short)
	default:
		es.SetDirection(common.DoNothing)
	}
	es.AppendReasonf("fast SMA %v slow SMA %v", latestFast, latestSlow)

	return &es, nil
}

// OnSimultaneousSignals analyses all symbols for the tick in one pass
func (s *Strategy) OnSimultaneousSignals(d []data.Handler, p portfolio.Handler) ([]signal.Event, error) {
	if len(d) == 0 {
		return nil, common.ErrNilArguments
	}
	resp := make([]signal.Event, 0, len(d))
	for i := range d {
		sig, err := s.OnSignal(d[i], p)
		if err != nil {
			return nil, fmt.Errorf("%v %w", Name, err)
		}
		resp = append(resp, sig)
	}
	return resp, nil
}

// SetCustomSettings allows a user to modify the SMA periods in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]interface{}) error {
	for k, v := range customSettings {
		switch k {
		case fastPeriodKey:
			fastPeriod, ok := v.(float64)
			if !ok || fastPeriod <= 0 {
				return fmt.Errorf("%w provided fast-period value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.fastPeriod = decimal.NewFromFloat(fastPeriod)
		case slowPeriodKey:
			slowPeriod, ok := v.(float64)
			if !ok || slowPeriod <= 0 {
				return fmt.Errorf("%w provided slow-period value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.slowPeriod = decimal.NewFromFloat(slowPeriod)
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}
	if s.fastPeriod.GreaterThanOrEqual(s.slowPeriod) {
		return fmt.Errorf("%w: fast %v slow %v", errPeriodsInverted, s.fastPeriod, s.slowPeriod)
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.fastPeriod = decimal.NewFromInt(10)
	s.slowPeriod = decimal.NewFromInt(30)
}

func (s *Strategy) isLong(p portfolio.Handler, symbol string) (bool, error) {
	if p == nil {
		return false, nil
	}
	return p.IsLong(symbol)
}

func (s *Strategy) isShort(p portfolio.Handler, symbol string) (bool, error) {
	if p == nil {
		return false, nil
	}
	return p.IsShort(symbol)
}

func streamToFloat(d []decimal.Decimal) []float64 {
	resp := make([]float64, len(d))
	for x := range d {
		resp[x] = d[x].InexactFloat64()
	}
	return resp
}
