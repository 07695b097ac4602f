package strategies

import (
	"errors"

	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
)

// ErrStrategyNotFound used when a strategy specified in the run config
// does not exist
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler contains all functions expected to operate a strategy. The
// engine invokes a strategy exactly once per market tick, implementations
// own their internal state and are never called concurrently
type Handler interface {
	Name() string
	Description() string
	OnSignal(data.Handler, portfolio.Handler) (signal.Event, error)
	OnSimultaneousSignals([]data.Handler, portfolio.Handler) ([]signal.Event, error)
	SetCustomSettings(map[string]interface{}) error
	SetDefaults()
}
