// Package rsi implements a relative strength index threshold strategy.
package rsi

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
	Name         = "rsi"
	rsiPeriodKey = "rsi-period"
	rsiLowKey    = "rsi-low"
	rsiHighKey   = "rsi-high"
	description  = `The relative strength index is a technical indicator charting the current and historical strength or weakness of an instrument from the closing prices of a recent trading period`
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
// the strategy believes should occur. An overbought reading signals short
// entry or long exit, an oversold reading the reverse
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
	if offset := latest.GetOffset(); offset <= s.rsiPeriod.IntPart() {
		es.SetDirection(common.DoNothing)
		es.AppendReason("not enough data for signal generation")
		return &es, nil
	}

	closes := d.StreamClose()
	floats := make([]float64, len(closes))
	for x := range closes {
		if closes[x].IsZero() {
			es.SetDirection(common.MissingData)
			es.AppendReasonf("missing close at stream position %v, cannot calculate RSI", x)
			return &es, nil
		}
		floats[x] = closes[x].InexactFloat64()
	}
	rsi := indicators.RSI(floats, int(s.rsiPeriod.IntPart()))
	latestRSIValue := decimal.NewFromFloat(rsi[len(rsi)-1])

	switch {
	case latestRSIValue.GreaterThanOrEqual(s.rsiHigh):
		if long, _ := s.isLong(p, es.GetSymbol()); long {
			es.SetDirection(order.ClosePosition)
			break
		}
		es.SetDirection(order.Short)
	case latestRSIValue.LessThanOrEqual(s.rsiLow):
		if short, _ := s.isShort(p, es.GetSymbol()); short {
			es.SetDirection(order.ClosePosition)
			break
		}
		es.SetDirection(order.Long)
	default:
		es.SetDirection(common.DoNothing)
	}
	es.AppendReasonf("RSI at %v", latestRSIValue)

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

// SetCustomSettings allows a user to modify the RSI limits in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]interface{}) error {
	for k, v := range customSettings {
		switch k {
		case rsiHighKey:
			rsiHigh, ok := v.(float64)
			if !ok || rsiHigh <= 0 {
				return fmt.Errorf("%w provided rsi-high value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiHigh = decimal.NewFromFloat(rsiHigh)
		case rsiLowKey:
			rsiLow, ok := v.(float64)
			if !ok || rsiLow <= 0 {
				return fmt.Errorf("%w provided rsi-low value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiLow = decimal.NewFromFloat(rsiLow)
		case rsiPeriodKey:
			rsiPeriod, ok := v.(float64)
			if !ok || rsiPeriod <= 0 {
				return fmt.Errorf("%w provided rsi-period value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiPeriod = decimal.NewFromFloat(rsiPeriod)
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}
	return nil
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.rsiHigh = decimal.NewFromInt(70)
	s.rsiLow = decimal.NewFromInt(30)
	s.rsiPeriod = decimal.NewFromInt(14)
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
