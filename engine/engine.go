// Package engine assembles the backtest handlers and owns the run loop
// which advances the bar feed and drains the event queue.
package engine

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/config"
	"github.com/thrasher-corp/gobacktest/data"
	datakline "github.com/thrasher-corp/gobacktest/data/kline"
	datacsv "github.com/thrasher-corp/gobacktest/data/kline/csv"
	datadb "github.com/thrasher-corp/gobacktest/data/kline/database"
	"github.com/thrasher-corp/gobacktest/database"
	"github.com/thrasher-corp/gobacktest/eventhandlers/exchange"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio/size"
	"github.com/thrasher-corp/gobacktest/eventhandlers/statistics"
	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies"
	"github.com/thrasher-corp/gobacktest/eventholder"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	"github.com/thrasher-corp/gobacktest/eventtypes/market"
	orderevent "github.com/thrasher-corp/gobacktest/eventtypes/order"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
	"github.com/thrasher-corp/gobacktest/log"
)

// New returns a new BackTest instance with an empty queue
func New() *BackTest {
	return &BackTest{
		shutdown:   make(chan struct{}),
		EventQueue: &eventholder.Holder{},
	}
}

// NewFromConfig takes a run config and assembles a runnable backtest
func NewFromConfig(cfg *config.Config) (*BackTest, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bt := New()

	strat, err := strategies.LoadStrategyByName(cfg.StrategySettings.Name)
	if err != nil {
		return nil, err
	}
	if len(cfg.StrategySettings.CustomSettings) > 0 {
		if err = strat.SetCustomSettings(cfg.StrategySettings.CustomSettings); err != nil {
			return nil, err
		}
	}
	bt.Strategy = strat

	if err = bt.setupData(cfg); err != nil {
		return nil, err
	}

	p, err := portfolio.Setup(
		cfg.DataSettings.Symbols,
		&size.Size{DefaultSize: cfg.PortfolioSettings.OrderSize},
		cfg.PortfolioSettings.InitialFunds)
	if err != nil {
		return nil, err
	}
	bt.Portfolio = p

	feeRate := exchange.DefaultCommissionRate
	if cfg.PortfolioSettings.FeeRate != nil {
		feeRate = *cfg.PortfolioSettings.FeeRate
	}
	exchangeName := cfg.DataSettings.ExchangeName
	if exchangeName == "" {
		exchangeName = "backtester"
	}
	e, err := exchange.Setup(exchangeName, feeRate)
	if err != nil {
		return nil, err
	}
	bt.Exchange = e

	bt.Statistic = &statistics.Statistic{
		StrategyName: strat.Name(),
		RiskFreeRate: cfg.StatisticSettings.RiskFreeRate,
	}
	bt.Heartbeat = cfg.Heartbeat

	log.Infof(log.Setup, "assembled backtest %v with strategy %v over %v symbols",
		cfg.Nickname, strat.Name(), len(cfg.DataSettings.Symbols))
	return bt, nil
}

func (bt *BackTest) setupData(cfg *config.Config) error {
	holder := &data.HandlerHolder{}
	holder.Setup()

	var db *database.Instance
	if cfg.DataSettings.DatabaseData != nil {
		var err error
		db, err = database.Connect(&cfg.DataSettings.DatabaseData.Config)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := db.CloseConnection(); closeErr != nil {
				log.Errorln(log.Setup, closeErr)
			}
		}()
	}

	for x := range cfg.DataSettings.Symbols {
		symbol := cfg.DataSettings.Symbols[x]
		var handler *datakline.DataFromKline
		var err error
		switch {
		case cfg.DataSettings.CSVData != nil:
			item, loadErr := datacsv.LoadData(
				cfg.DataSettings.CSVData.FullPaths[symbol],
				cfg.DataSettings.ExchangeName,
				symbol,
				cfg.DataSettings.Interval)
			if loadErr != nil {
				return loadErr
			}
			handler, err = datakline.NewDataFromKline(item)
		case cfg.DataSettings.DatabaseData != nil:
			handler, err = datadb.LoadData(
				db,
				cfg.DataSettings.ExchangeName,
				symbol,
				cfg.DataSettings.Interval,
				cfg.DataSettings.DatabaseData.StartDate,
				cfg.DataSettings.DatabaseData.EndDate)
		default:
			return config.ErrNoDataSource
		}
		if err != nil {
			return err
		}
		holder.SetDataForSymbol(symbol, handler)
	}
	bt.Datas = holder
	return nil
}

// Reset returns the backtest to a default state, handlers keep their
// configuration but lose all run state
func (bt *BackTest) Reset() {
	bt.EventQueue.Reset()
	bt.Datas.Reset()
	bt.Portfolio.Reset()
	bt.Statistic.Reset()
	bt.Exchange.Reset()
	bt.shutdown = make(chan struct{})
	bt.shutdownOnce = sync.Once{}
}

// Run replays the feed until it is exhausted. Each successful advance
// queues one market event, the queue is then drained to empty before the
// feed advances again. Handler errors are logged and do not stop the run
func (bt *BackTest) Run() error {
	if bt.Datas == nil || bt.Strategy == nil || bt.Portfolio == nil ||
		bt.Exchange == nil || bt.Statistic == nil || bt.EventQueue == nil {
		return ErrNotSetup
	}
	bt.orderSymbols()
	log.Info(log.BackTester, "running backtester against pre-defined data")
	for {
		select {
		case <-bt.shutdown:
			return nil
		default:
		}
		ev := bt.EventQueue.NextEvent()
		if ev == nil {
			// drain complete, advance the feed
			if !bt.advance() {
				log.Info(log.BackTester, "feed exhausted, backtest complete")
				return nil
			}
			if bt.Heartbeat > 0 {
				time.Sleep(bt.Heartbeat)
			}
			continue
		}
		if err := bt.handleEvent(ev); err != nil {
			return err
		}
		bt.Statistic.TrackEvent(ev)
	}
}

// Stop shuts down the backtest loop
func (bt *BackTest) Stop() {
	bt.shutdownOnce.Do(func() {
		close(bt.shutdown)
	})
}

// advance reveals the next candle for every tracked symbol and queues
// exactly one market event. It returns false once any symbol's series is
// exhausted, which ends the run
func (bt *BackTest) advance() bool {
	if len(bt.orderedSymbols) == 0 {
		bt.orderSymbols()
	}
	var latest common.DataEventHandler
	for _, symbol := range bt.orderedSymbols {
		handler, err := bt.Datas.GetDataForSymbol(symbol)
		if err != nil {
			log.Errorln(log.BackTester, err)
			return false
		}
		ev, ok := handler.Next()
		if !ok {
			return false
		}
		// feeds must share a timestamp index for the tick to be meaningful
		if latest != nil && !ev.GetTime().Equal(latest.GetTime()) {
			log.Warnf(log.BackTester, "misaligned feeds, %v candle at %v does not match tick time %v",
				symbol, ev.GetTime(), latest.GetTime())
		}
		latest = ev
	}
	if latest == nil {
		return false
	}
	bt.EventQueue.AppendEvent(&market.Market{
		Base: event.Base{
			Offset:   latest.GetOffset(),
			Exchange: latest.GetExchange(),
			Time:     latest.GetTime(),
			Interval: latest.GetInterval(),
		},
	})
	return true
}

// handleEvent routes an event to the one handler responsible for its kind
func (bt *BackTest) handleEvent(ev common.Event) error {
	switch e := ev.(type) {
	case market.Event:
		bt.processMarketEvent(e)
	case signal.Event:
		bt.processSignalEvent(e)
	case orderevent.Event:
		bt.processOrderEvent(e)
	case fill.Event:
		bt.processFillEvent(e)
	default:
		return fmt.Errorf("%w: %T", common.ErrInvalidDataType, ev)
	}
	return nil
}

// processMarketEvent snapshots the portfolio at the new tick first, the
// strategy then assesses the just-closed candles
func (bt *BackTest) processMarketEvent(ev market.Event) {
	if err := bt.Portfolio.UpdateHoldings(ev, bt.Datas); err != nil {
		log.Errorf(log.BackTester, "UpdateHoldings %v", err)
	}
	handlers := make([]data.Handler, 0, len(bt.orderedSymbols))
	for _, symbol := range bt.orderedSymbols {
		handler, err := bt.Datas.GetDataForSymbol(symbol)
		if err != nil {
			log.Errorf(log.BackTester, "OnSimultaneousSignals %v", err)
			return
		}
		handlers = append(handlers, handler)
	}
	sigs, err := bt.Strategy.OnSimultaneousSignals(handlers, bt.Portfolio)
	if err != nil {
		log.Errorf(log.BackTester, "OnSimultaneousSignals %v", err)
		return
	}
	for x := range sigs {
		if sigs[x] == nil {
			continue
		}
		bt.EventQueue.AppendEvent(sigs[x])
	}
}

func (bt *BackTest) processSignalEvent(ev signal.Event) {
	o, err := bt.Portfolio.OnSignal(ev, bt.Datas)
	if err != nil {
		log.Errorf(log.BackTester, "OnSignal %v", err)
		return
	}
	if o == nil {
		if reason := ev.GetReason(); reason != "" {
			log.Debugf(log.Portfolio, "%v %v: %v", ev.GetTime().Format("2006-01-02 15:04:05"), ev.GetSymbol(), reason)
		}
		return
	}
	bt.EventQueue.AppendEvent(o)
}

func (bt *BackTest) processOrderEvent(ev orderevent.Event) {
	f, err := bt.Exchange.ExecuteOrder(ev, bt.Datas)
	if err != nil {
		log.Errorf(log.BackTester, "ExecuteOrder %v", err)
		return
	}
	bt.EventQueue.AppendEvent(f)
}

func (bt *BackTest) processFillEvent(ev fill.Event) {
	if err := bt.Portfolio.OnFill(ev); err != nil {
		log.Errorf(log.BackTester, "OnFill %v", err)
		return
	}
	bt.Statistic.TrackTransaction(ev)
}

func (bt *BackTest) orderSymbols() {
	all := bt.Datas.GetAllData()
	bt.orderedSymbols = make([]string, 0, len(all))
	for symbol := range all {
		bt.orderedSymbols = append(bt.orderedSymbols, strings.ToUpper(symbol))
	}
	sort.Strings(bt.orderedSymbols)
}
