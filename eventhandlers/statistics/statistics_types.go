package statistics

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/common"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
)

var (
	// ErrNoDataToProcess returned when results are calculated before any
	// market event was processed
	ErrNoDataToProcess = errors.New("no data to process")
)

// Statistic tracks activity across a run and derives the final results
type Statistic struct {
	StrategyName string
	RiskFreeRate decimal.Decimal

	MarketEvents int64
	SignalEvents int64
	OrderEvents  int64
	FillEvents   int64

	transactions []fill.Event
}

// Results is the summary output of a completed run
type Results struct {
	StrategyName string
	StartTime    time.Time
	EndTime      time.Time

	MarketEvents int64
	SignalEvents int64
	OrderEvents  int64
	FillEvents   int64
	Transactions int64

	InitialFunds    decimal.Decimal
	FinalCash       decimal.Decimal
	FinalTotal      decimal.Decimal
	TotalCommission decimal.Decimal

	TotalReturnPercent      decimal.Decimal
	MaxDrawdownPercent      decimal.Decimal
	SharpeRatio             decimal.Decimal
	BuyAndHoldReturnPercent decimal.Decimal
}

// Handler contains the functionality to track and summarise a run
type Handler interface {
	TrackEvent(common.Event)
	TrackTransaction(fill.Event)
	CalculateAllResults(portfolio.Handler, data.Holder) (*Results, error)
	PrintResults(*Results)
	Reset()
}
