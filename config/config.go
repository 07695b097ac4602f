// Package config holds the JSON run configuration for a backtest.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gobacktest/log"
)

// ReadConfigFromFile will take a config from a path
func ReadConfigFromFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%v file not found: %w", path, err)
	}
	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadConfig(fileData)
}

// LoadConfig unmarshals byte data into a config struct and validates it
func LoadConfig(data []byte) (*Config, error) {
	resp := &Config{}
	if err := json.Unmarshal(data, resp); err != nil {
		return nil, err
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Validate ensures the config can produce a runnable backtest
func (c *Config) Validate() error {
	if c.StrategySettings.Name == "" {
		return ErrNoStrategy
	}
	if err := c.validateDataSettings(); err != nil {
		return err
	}
	return c.validatePortfolioSettings()
}

func (c *Config) validateDataSettings() error {
	if len(c.DataSettings.Symbols) == 0 {
		return ErrNoSymbols
	}
	if c.DataSettings.CSVData == nil && c.DataSettings.DatabaseData == nil {
		return ErrNoDataSource
	}
	if c.DataSettings.CSVData != nil && c.DataSettings.DatabaseData != nil {
		return ErrAmbiguousDataSource
	}
	if c.DataSettings.CSVData != nil {
		for x := range c.DataSettings.Symbols {
			if _, ok := c.DataSettings.CSVData.FullPaths[c.DataSettings.Symbols[x]]; !ok {
				return fmt.Errorf("%w: no csv path for %v", ErrNoDataSource, c.DataSettings.Symbols[x])
			}
		}
	}
	if c.DataSettings.DatabaseData != nil {
		if !c.DataSettings.DatabaseData.StartDate.Before(c.DataSettings.DatabaseData.EndDate) {
			return ErrBadDate
		}
	}
	return nil
}

func (c *Config) validatePortfolioSettings() error {
	if c.PortfolioSettings.InitialFunds.LessThanOrEqual(decimal.Zero) {
		return ErrBadInitialFunds
	}
	if c.PortfolioSettings.OrderSize.IsNegative() {
		return fmt.Errorf("%w: order size %v", ErrBadInitialFunds, c.PortfolioSettings.OrderSize)
	}
	if c.PortfolioSettings.FeeRate != nil && c.PortfolioSettings.FeeRate.IsNegative() {
		return ErrBadFeeRate
	}
	return nil
}

// PrintSetting prints relevant settings to the console for easy reading
func (c *Config) PrintSetting() {
	log.Info(log.ConfigMgr, "-------------------------------------------------------------")
	log.Infof(log.ConfigMgr, "Strategy: %v", c.StrategySettings.Name)
	if len(c.StrategySettings.CustomSettings) > 0 {
		log.Info(log.ConfigMgr, "Custom strategy variables:")
		for k, v := range c.StrategySettings.CustomSettings {
			log.Infof(log.ConfigMgr, "%v: %v", k, v)
		}
	}
	log.Infof(log.ConfigMgr, "Symbols: %v", c.DataSettings.Symbols)
	log.Infof(log.ConfigMgr, "Interval: %v", c.DataSettings.Interval)
	switch {
	case c.DataSettings.CSVData != nil:
		log.Info(log.ConfigMgr, "Data source: CSV")
	case c.DataSettings.DatabaseData != nil:
		log.Infof(log.ConfigMgr, "Data source: database %v - %v",
			c.DataSettings.DatabaseData.StartDate, c.DataSettings.DatabaseData.EndDate)
	}
	log.Infof(log.ConfigMgr, "Initial funds: %v", c.PortfolioSettings.InitialFunds)
	log.Info(log.ConfigMgr, "-------------------------------------------------------------")
}
