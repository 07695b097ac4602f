package holdings

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInitialFundsZero returned when initial funds are not set
	ErrInitialFundsZero = errors.New("initial funds < 0")
)

// Holding is one mark-to-market snapshot of the account at a tick. Once
// appended to the ledger a holding is never mutated
type Holding struct {
	Offset       int64
	Timestamp    time.Time
	InitialFunds decimal.Decimal
	// Cash is the uncommitted funds remaining after all fills so far
	Cash decimal.Decimal
	// Commission is cumulative across the whole run
	Commission decimal.Decimal
	// MarketValues holds position quantity multiplied by the latest
	// revealed close per symbol
	MarketValues map[string]decimal.Decimal
	// Total is Cash plus the sum of all market values
	Total decimal.Decimal
}
