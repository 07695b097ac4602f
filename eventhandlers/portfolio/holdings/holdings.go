// Package holdings defines the mark-to-market account snapshot which forms
// the holdings ledger, the sole output artifact of a run.
package holdings

import (
	"time"

	"github.com/shopspring/decimal"
)

// Create builds a snapshot for the supplied tick. The market value map is
// copied so later position changes cannot reach back into the ledger
func Create(offset int64, timestamp time.Time, initialFunds, cash, commission decimal.Decimal, marketValues map[string]decimal.Decimal) (Holding, error) {
	if initialFunds.LessThan(decimal.Zero) {
		return Holding{}, ErrInitialFundsZero
	}
	h := Holding{
		Offset:       offset,
		Timestamp:    timestamp,
		InitialFunds: initialFunds,
		Cash:         cash,
		Commission:   commission,
		MarketValues: make(map[string]decimal.Decimal, len(marketValues)),
		Total:        cash,
	}
	for symbol, value := range marketValues {
		h.MarketValues[symbol] = value
		h.Total = h.Total.Add(value)
	}
	return h, nil
}
