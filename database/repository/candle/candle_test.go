package candle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobacktest/database"
	"github.com/thrasher-corp/gobacktest/kline"
)

func setupTestDB(t *testing.T) *database.Instance {
	t.Helper()
	db, err := database.Connect(&database.Config{
		Driver:   database.DBSQLite,
		Database: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, db.CloseConnection())
	})
	require.NoError(t, Setup(db))
	return db
}

func TestInsertAndRetrieve(t *testing.T) {
	db := setupTestDB(t)
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	item := &kline.Item{
		Exchange: "test",
		Symbol:   "AAPL",
		Interval: kline.OneDay,
		Candles: []kline.Candle{
			{Time: start, Open: 100, High: 105, Low: 99, Close: 104, Volume: 1500},
			{Time: start.AddDate(0, 0, 1), Open: 104, High: 108, Low: 103, Close: 107, Volume: 1800},
			{Time: start.AddDate(0, 0, 2), Open: 107, High: 109, Low: 101, Close: 102, Volume: 2100},
		},
	}
	require.NoError(t, Insert(db, item))

	resp, err := Retrieve(db, "test", "aapl", kline.OneDay, start, start.AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, resp.Candles, 3)
	assert.Equal(t, "AAPL", resp.Symbol)
	assert.Equal(t, 104.0, resp.Candles[0].Close)
	assert.True(t, resp.Candles[0].Time.Before(resp.Candles[1].Time))

	// ranged select excludes candles at or after the end bound
	resp, err = Retrieve(db, "test", "AAPL", kline.OneDay, start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, resp.Candles, 1)
}

func TestRetrieveNoData(t *testing.T) {
	db := setupTestDB(t)
	_, err := Retrieve(db, "test", "ZZZ", kline.OneDay,
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, ErrNoCandleDataFound)
}

func TestInsertInvalidItem(t *testing.T) {
	db := setupTestDB(t)
	err := Insert(db, &kline.Item{})
	assert.ErrorIs(t, err, kline.ErrUnsetSymbol)
}

func TestNilInstance(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, Setup(nil), database.ErrNilInstance)
	assert.ErrorIs(t, Insert(nil, &kline.Item{}), database.ErrNilInstance)
	_, err := Retrieve(nil, "test", "AAPL", kline.OneDay, time.Time{}, time.Time{})
	assert.ErrorIs(t, err, database.ErrNilInstance)
}
