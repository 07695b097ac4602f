package portfolio

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio/holdings"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
)

var (
	// ErrNoSymbols returned when Setup receives nothing to track
	ErrNoSymbols = errors.New("no symbols provided to portfolio")
	// ErrUnknownSymbol returned when an event references a symbol the
	// portfolio was not constructed with
	ErrUnknownSymbol = errors.New("symbol not tracked by portfolio")
	// ErrNegativeInitialFunds returned on Setup with funds below zero
	ErrNegativeInitialFunds = errors.New("initial funds < 0")
	// ErrSizeManagerUnset returned when a sizing request has no manager
	ErrSizeManagerUnset = errors.New("size manager unset")
	// ErrNoHoldings returned when a ledger read occurs before any market
	// event has been processed
	ErrNoHoldings = errors.New("no holdings generated")
)

// Portfolio stores the account state of the backtest. Positions are only
// ever changed by fills, the ledgers are only ever appended to, one entry
// per processed market event
type Portfolio struct {
	initialFunds decimal.Decimal
	cash         decimal.Decimal
	commission   decimal.Decimal
	sizeManager  SizeHandler

	currentPositions map[string]decimal.Decimal
	allPositions     []PositionSnapshot
	allHoldings      []holdings.Holding
}

// PositionSnapshot records signed unit counts per symbol at a tick
type PositionSnapshot struct {
	Offset    int64
	Timestamp time.Time
	Positions map[string]decimal.Decimal
}

// EquityPoint is one entry of the derived equity curve
type EquityPoint struct {
	Offset    int64
	Timestamp time.Time
	Total     decimal.Decimal
	// Return is the simple per-period return of Total
	Return decimal.Decimal
	// Equity is the cumulative product of period returns, starting at 1
	Equity decimal.Decimal
}

// Handler contains all functionality expected of a portfolio manager
type Handler interface {
	OnSignal(signal.Event, data.Holder) (*order.Order, error)
	OnFill(fill.Event) error
	UpdateHoldings(common.Event, data.Holder) error

	GetPositionForSymbol(string) (decimal.Decimal, error)
	IsLong(string) (bool, error)
	IsShort(string) (bool, error)
	IsInvested(string) (bool, error)

	GetInitialFunds() decimal.Decimal
	GetCash() decimal.Decimal
	GetCommission() decimal.Decimal
	GetLatestHoldings() (holdings.Holding, error)
	HoldingsLedger() []holdings.Holding
	PositionsLedger() []PositionSnapshot
	EquityCurve() []EquityPoint

	Reset()
}

// SizeHandler sizes entry orders from a signal's strength
type SizeHandler interface {
	SizeOrder(strength decimal.Decimal) (decimal.Decimal, error)
}
