// Package candle stores and retrieves OHLCV candles so backtests can run
// against previously gathered data instead of CSV exports.
package candle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thrasher-corp/gobacktest/database"
	"github.com/thrasher-corp/gobacktest/kline"
	"github.com/thrasher-corp/gobacktest/log"
)

// ErrNoCandleDataFound returned when a ranged retrieval matches nothing
var ErrNoCandleDataFound = errors.New("no candle data found")

const createTableQuery = `CREATE TABLE IF NOT EXISTS candle (
	exchange TEXT NOT NULL,
	symbol TEXT NOT NULL,
	interval BIGINT NOT NULL,
	timestamp TIMESTAMP NOT NULL,
	open REAL NOT NULL,
	high REAL NOT NULL,
	low REAL NOT NULL,
	close REAL NOT NULL,
	volume REAL NOT NULL,
	PRIMARY KEY (exchange, symbol, interval, timestamp)
)`

// Setup ensures the candle table exists
func Setup(db *database.Instance) error {
	if db == nil {
		return database.ErrNilInstance
	}
	_, err := db.SQL.Exec(createTableQuery)
	return err
}

// Insert stores all candles of an item, one transaction per item
func Insert(db *database.Instance, item *kline.Item) error {
	if db == nil {
		return database.ErrNilInstance
	}
	if err := item.Validate(); err != nil {
		return err
	}
	tx, err := db.SQL.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Errorln(log.DatabaseMg, rollbackErr)
			}
		}
	}()

	insertQuery := rebind(db, `INSERT INTO candle (exchange, symbol, interval, timestamp, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for x := range item.Candles {
		_, err = tx.Exec(insertQuery,
			strings.ToLower(item.Exchange),
			strings.ToUpper(item.Symbol),
			int64(item.Interval),
			item.Candles[x].Time.UTC(),
			item.Candles[x].Open,
			item.Candles[x].High,
			item.Candles[x].Low,
			item.Candles[x].Close,
			item.Candles[x].Volume)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Retrieve returns all stored candles for the symbol and interval within
// the supplied range
func Retrieve(db *database.Instance, exchangeName, symbol string, interval kline.Interval, start, end time.Time) (*kline.Item, error) {
	if db == nil {
		return nil, database.ErrNilInstance
	}
	if symbol == "" {
		return nil, kline.ErrUnsetSymbol
	}
	selectQuery := rebind(db, `SELECT timestamp, open, high, low, close, volume FROM candle
		WHERE exchange = ? AND symbol = ? AND interval = ? AND timestamp >= ? AND timestamp < ?
		ORDER BY timestamp`)
	rows, err := db.SQL.Query(selectQuery,
		strings.ToLower(exchangeName),
		strings.ToUpper(symbol),
		int64(interval),
		start.UTC(),
		end.UTC())
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Errorln(log.DatabaseMg, closeErr)
		}
	}()

	item := &kline.Item{
		Exchange: strings.ToLower(exchangeName),
		Symbol:   strings.ToUpper(symbol),
		Interval: interval,
	}
	for rows.Next() {
		var c kline.Candle
		if err = rows.Scan(&c.Time, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume); err != nil {
			return nil, err
		}
		item.Candles = append(item.Candles, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	if len(item.Candles) == 0 {
		return nil, fmt.Errorf("%w for %v %v between %v and %v",
			ErrNoCandleDataFound, exchangeName, symbol, start, end)
	}
	return item, nil
}

// rebind swaps ? placeholders for postgres positional parameters when
// required by the connected driver
func rebind(db *database.Instance, query string) string {
	cfg := db.GetConfig()
	if cfg == nil || cfg.Driver != database.DBPostgres {
		return query
	}
	var sb strings.Builder
	n := 0
	for x := range query {
		if query[x] == '?' {
			n++
			sb.WriteString(fmt.Sprintf("$%d", n))
			continue
		}
		sb.WriteByte(query[x])
	}
	return sb.String()
}
