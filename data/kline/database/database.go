// Package database loads candle data from the candle repository for use
// as a backtest data stream.
package database

import (
	"fmt"
	"time"

	datakline "github.com/thrasher-corp/gobacktest/data/kline"
	"github.com/thrasher-corp/gobacktest/database"
	"github.com/thrasher-corp/gobacktest/database/repository/candle"
	"github.com/thrasher-corp/gobacktest/kline"
)

// LoadData retrieves candles from the database for the supplied symbol and
// range and wraps them as an unloaded data stream
func LoadData(db *database.Instance, exchangeName, symbol string, interval kline.Interval, start, end time.Time) (*datakline.DataFromKline, error) {
	if db == nil {
		return nil, database.ErrNilInstance
	}
	item, err := candle.Retrieve(db, exchangeName, symbol, interval, start, end)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve candle data for %v %v: %w", exchangeName, symbol, err)
	}
	return datakline.NewDataFromKline(item)
}
