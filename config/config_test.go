package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobacktest/database"
	"github.com/thrasher-corp/gobacktest/kline"
)

func validConfig() *Config {
	return &Config{
		Nickname: "test run",
		StrategySettings: StrategySettings{
			Name: "smacross",
		},
		DataSettings: DataSettings{
			ExchangeName: "test",
			Interval:     kline.OneDay,
			Symbols:      []string{"AAPL"},
			CSVData: &CSVData{
				FullPaths: map[string]string{"AAPL": "testdata/candles.csv"},
			},
		},
		PortfolioSettings: PortfolioSettings{
			InitialFunds: decimal.NewFromInt(100000),
			OrderSize:    decimal.NewFromInt(100),
		},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.StrategySettings.Name = ""
	assert.ErrorIs(t, c.Validate(), ErrNoStrategy)

	c = validConfig()
	c.DataSettings.Symbols = nil
	assert.ErrorIs(t, c.Validate(), ErrNoSymbols)

	c = validConfig()
	c.DataSettings.CSVData = nil
	assert.ErrorIs(t, c.Validate(), ErrNoDataSource)

	c = validConfig()
	c.DataSettings.DatabaseData = &DatabaseData{}
	assert.ErrorIs(t, c.Validate(), ErrAmbiguousDataSource)

	c = validConfig()
	c.DataSettings.Symbols = []string{"AAPL", "MSFT"}
	assert.ErrorIs(t, c.Validate(), ErrNoDataSource)

	c = validConfig()
	c.PortfolioSettings.InitialFunds = decimal.Zero
	assert.ErrorIs(t, c.Validate(), ErrBadInitialFunds)

	c = validConfig()
	negative := decimal.NewFromInt(-1)
	c.PortfolioSettings.FeeRate = &negative
	assert.ErrorIs(t, c.Validate(), ErrBadFeeRate)

	c = validConfig()
	c.DataSettings.CSVData = nil
	c.DataSettings.DatabaseData = &DatabaseData{
		StartDate: time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Config:    database.Config{Driver: database.DBSQLite, Database: "candles.db"},
	}
	assert.ErrorIs(t, c.Validate(), ErrBadDate)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig([]byte(`{
		"nickname": "sma long only",
		"strategy-settings": {
			"name": "smacross",
			"custom-settings": {
				"fast-period": 5,
				"slow-period": 20
			}
		},
		"data-settings": {
			"exchange-name": "test",
			"interval": 86400000000000,
			"symbols": ["AAPL"],
			"csv-data": {
				"full-paths": {"AAPL": "testdata/candles.csv"}
			}
		},
		"portfolio-settings": {
			"initial-funds": 100000,
			"order-size": 100,
			"fee-rate": 0
		},
		"statistic-settings": {
			"risk-free-rate": 0.03
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "smacross", cfg.StrategySettings.Name)
	assert.Equal(t, kline.OneDay, cfg.DataSettings.Interval)
	require.NotNil(t, cfg.PortfolioSettings.FeeRate)
	assert.True(t, cfg.PortfolioSettings.FeeRate.IsZero())
	assert.True(t, cfg.StatisticSettings.RiskFreeRate.Equal(decimal.NewFromFloat(0.03)))

	_, err = LoadConfig([]byte(`{"strategy-settings"`))
	assert.Error(t, err)
}
