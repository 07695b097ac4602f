// Package statistics tracks events across a run and summarises the outcome
// once the feed is exhausted.
package statistics

import (
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	gctmath "github.com/thrasher-corp/gobacktest/common/math"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	"github.com/thrasher-corp/gobacktest/eventtypes/market"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
	"github.com/thrasher-corp/gobacktest/log"
)

var oneHundred = decimal.NewFromInt(100)

// Reset returns the statistic handler to a default state
func (s *Statistic) Reset() {
	s.MarketEvents = 0
	s.SignalEvents = 0
	s.OrderEvents = 0
	s.FillEvents = 0
	s.transactions = nil
}

// TrackEvent increments the counter matching the event's kind
func (s *Statistic) TrackEvent(ev common.Event) {
	switch ev.(type) {
	case market.Event:
		s.MarketEvents++
	case signal.Event:
		s.SignalEvents++
	case order.Event:
		s.OrderEvents++
	case fill.Event:
		s.FillEvents++
	}
}

// TrackTransaction records a completed fill
func (s *Statistic) TrackTransaction(ev fill.Event) {
	if ev == nil {
		return
	}
	s.transactions = append(s.transactions, ev)
}

// CalculateAllResults summarises the run from the portfolio's ledgers and
// the revealed data streams
func (s *Statistic) CalculateAllResults(p portfolio.Handler, d data.Holder) (*Results, error) {
	if p == nil || d == nil {
		return nil, common.ErrNilArguments
	}
	curve := p.EquityCurve()
	if len(curve) == 0 {
		return nil, ErrNoDataToProcess
	}

	results := &Results{
		StrategyName:    s.StrategyName,
		StartTime:       curve[0].Timestamp,
		EndTime:         curve[len(curve)-1].Timestamp,
		MarketEvents:    s.MarketEvents,
		SignalEvents:    s.SignalEvents,
		OrderEvents:     s.OrderEvents,
		FillEvents:      s.FillEvents,
		Transactions:    int64(len(s.transactions)),
		InitialFunds:    p.GetInitialFunds(),
		FinalCash:       p.GetCash(),
		FinalTotal:      curve[len(curve)-1].Total,
		TotalCommission: p.GetCommission(),
	}

	if !results.InitialFunds.IsZero() {
		results.TotalReturnPercent = results.FinalTotal.
			Sub(results.InitialFunds).
			Div(results.InitialFunds).
			Mul(oneHundred)
	}
	results.MaxDrawdownPercent = calculateMaxDrawdown(curve)

	returns := make([]decimal.Decimal, 0, len(curve)-1)
	for x := 1; x < len(curve); x++ {
		returns = append(returns, curve[x].Return)
	}
	if avg, err := gctmath.DecimalArithmeticMean(returns); err == nil {
		sharpe, err := gctmath.DecimalSharpeRatio(returns, s.RiskFreeRate, avg)
		if err != nil {
			log.Warnf(log.Statistics, "could not calculate sharpe ratio %v", err)
		} else {
			results.SharpeRatio = sharpe
		}
	}

	results.BuyAndHoldReturnPercent = calculateBuyAndHold(d)
	return results, nil
}

// PrintResults logs a summary of the run
func (s *Statistic) PrintResults(r *Results) {
	if r == nil {
		return
	}
	log.Info(log.Statistics, "------------------Strategy-----------------------------------")
	log.Infof(log.Statistics, "Strategy: %v", r.StrategyName)
	log.Infof(log.Statistics, "Period: %v - %v", r.StartTime.Format("2006-01-02 15:04:05"), r.EndTime.Format("2006-01-02 15:04:05"))
	log.Info(log.Statistics, "------------------Events-------------------------------------")
	log.Infof(log.Statistics, "Market events: %v", r.MarketEvents)
	log.Infof(log.Statistics, "Signal events: %v", r.SignalEvents)
	log.Infof(log.Statistics, "Order events: %v", r.OrderEvents)
	log.Infof(log.Statistics, "Fill events: %v", r.FillEvents)
	log.Info(log.Statistics, "------------------Results------------------------------------")
	log.Infof(log.Statistics, "Initial funds: %v", r.InitialFunds.Round(8))
	log.Infof(log.Statistics, "Final cash: %v", r.FinalCash.Round(8))
	log.Infof(log.Statistics, "Final total: %v", r.FinalTotal.Round(8))
	log.Infof(log.Statistics, "Commission paid: %v", r.TotalCommission.Round(8))
	log.Infof(log.Statistics, "Total return: %v%%", r.TotalReturnPercent.Round(4))
	log.Infof(log.Statistics, "Buy & hold return: %v%%", r.BuyAndHoldReturnPercent.Round(4))
	log.Infof(log.Statistics, "Max drawdown: %v%%", r.MaxDrawdownPercent.Round(4))
	log.Infof(log.Statistics, "Sharpe ratio: %v", r.SharpeRatio.Round(4))
}

// calculateMaxDrawdown returns the largest peak to trough decline of the
// equity curve as a negative percentage
func calculateMaxDrawdown(curve []portfolio.EquityPoint) decimal.Decimal {
	var maxDrawdown decimal.Decimal
	peak := curve[0].Total
	for x := range curve {
		if curve[x].Total.GreaterThan(peak) {
			peak = curve[x].Total
		}
		if peak.IsZero() {
			continue
		}
		drawdown := curve[x].Total.Sub(peak).Div(peak)
		if drawdown.LessThan(maxDrawdown) {
			maxDrawdown = drawdown
		}
	}
	return maxDrawdown.Mul(oneHundred)
}

// calculateBuyAndHold averages first-to-last revealed close movement across
// all tracked symbols as the benchmark return
func calculateBuyAndHold(d data.Holder) decimal.Decimal {
	var sum decimal.Decimal
	var counted int64
	for _, handler := range d.GetAllData() {
		closes := handler.StreamClose()
		if len(closes) < 2 || closes[0].IsZero() {
			continue
		}
		sum = sum.Add(closes[len(closes)-1].Sub(closes[0]).Div(closes[0]))
		counted++
	}
	if counted == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(counted)).Mul(oneHundred)
}
