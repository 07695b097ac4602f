package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/exchange"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventhandlers/statistics"
	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies"
	"github.com/thrasher-corp/gobacktest/eventholder"
)

var (
	// ErrNilConfig returned when a backtest is built without a config
	ErrNilConfig = errors.New("nil config received")
	// ErrNotSetup returned when Run is called on an unassembled backtest
	ErrNotSetup = errors.New("backtest handlers not setup")
)

// BackTest is the driver which ties all backtesting handlers together. It
// owns the only execution context, handlers are never invoked concurrently
type BackTest struct {
	shutdown     chan struct{}
	shutdownOnce sync.Once

	Datas      data.Holder
	Strategy   strategies.Handler
	Portfolio  portfolio.Handler
	Exchange   exchange.ExecutionHandler
	Statistic  statistics.Handler
	EventQueue eventholder.EventHolder

	// Heartbeat throttles replay speed between feed advances, it has no
	// effect on correctness
	Heartbeat time.Duration

	orderedSymbols []string
}
