// Package strategies contains the registry of runnable strategies.
package strategies

import (
	"fmt"
	"strings"

	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies/rsi"
	"github.com/thrasher-corp/gobacktest/eventhandlers/strategies/smacross"
)

// LoadStrategyByName returns the strategy registered under the supplied
// name with its defaults applied
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		strats[i].SetDefaults()
		return strats[i], nil
	}
	return nil, fmt.Errorf("%w: %v", ErrStrategyNotFound, name)
}

// GetStrategies returns a new instance of every known strategy
func GetStrategies() []Handler {
	return []Handler{
		new(smacross.Strategy),
		new(rsi.Strategy),
	}
}
