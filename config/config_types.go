package config

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/database"
	"github.com/thrasher-corp/gobacktest/kline"
)

var (
	// ErrNoStrategy returned when a config does not name a strategy
	ErrNoStrategy = errors.New("no strategy name provided")
	// ErrNoSymbols returned when a config tracks no symbols
	ErrNoSymbols = errors.New("no symbols provided")
	// ErrNoDataSource returned when neither csv nor database data is set
	ErrNoDataSource = errors.New("no data source provided")
	// ErrAmbiguousDataSource returned when more than one data source is set
	ErrAmbiguousDataSource = errors.New("only one data source can be provided")
	// ErrBadInitialFunds returned when initial funds are zero or negative
	ErrBadInitialFunds = errors.New("initial funds must be positive")
	// ErrBadFeeRate returned when the fee rate is negative
	ErrBadFeeRate = errors.New("fee rate cannot be negative")
	// ErrBadDate returned when the database date range is inverted or unset
	ErrBadDate = errors.New("start date must occur before end date")
)

// Config defines what is in an individual run config
type Config struct {
	Nickname          string            `json:"nickname"`
	StrategySettings  StrategySettings  `json:"strategy-settings"`
	DataSettings      DataSettings      `json:"data-settings"`
	PortfolioSettings PortfolioSettings `json:"portfolio-settings"`
	StatisticSettings StatisticSettings `json:"statistic-settings"`
	// Heartbeat throttles replay speed between ticks, default zero
	Heartbeat time.Duration `json:"heartbeat"`
}

// StrategySettings contains what strategy to load along with any custom
// settings to pass to it
type StrategySettings struct {
	Name           string                 `json:"name"`
	CustomSettings map[string]interface{} `json:"custom-settings,omitempty"`
}

// DataSettings defines the data source for the run. Exactly one source
// must be set
type DataSettings struct {
	ExchangeName string         `json:"exchange-name"`
	Interval     kline.Interval `json:"interval"`
	Symbols      []string       `json:"symbols"`
	CSVData      *CSVData       `json:"csv-data,omitempty"`
	DatabaseData *DatabaseData  `json:"database-data,omitempty"`
}

// CSVData defines the files to load candles from, one per symbol
type CSVData struct {
	FullPaths map[string]string `json:"full-paths"`
}

// DatabaseData defines the database settings and date range to load
// candles from
type DatabaseData struct {
	StartDate time.Time       `json:"start-date"`
	EndDate   time.Time       `json:"end-date"`
	Config    database.Config `json:"config"`
}

// PortfolioSettings contains funding and sizing rules
type PortfolioSettings struct {
	InitialFunds decimal.Decimal `json:"initial-funds"`
	// OrderSize is the quantity of units an entry order trades before
	// strength scaling, default 100
	OrderSize decimal.Decimal `json:"order-size"`
	// FeeRate is the commission charged per traded notional, nil applies
	// the exchange default of 0.001
	FeeRate *decimal.Decimal `json:"fee-rate,omitempty"`
}

// StatisticSettings adjusts the result calculations
type StatisticSettings struct {
	RiskFreeRate decimal.Decimal `json:"risk-free-rate"`
}
