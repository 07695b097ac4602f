// Package csv loads candle data from disk so runs can be replayed from
// simple OHLCV exports.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/thrasher-corp/gobacktest/kline"
	"github.com/thrasher-corp/gobacktest/log"
)

// ErrMalformedFeed returned when a file violates the data contract, this is
// fatal at load time, the backtest will not partially run
var ErrMalformedFeed = errors.New("malformed csv feed")

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// LoadData parses a CSV file of candles for one symbol into an item ready
// for streaming. The first row must be a header containing at least
// date, open, high, low, close and volume columns in any order
func LoadData(filePath, exchangeName, symbol string, interval kline.Interval) (*kline.Item, error) {
	if symbol == "" {
		return nil, kline.ErrUnsetSymbol
	}
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("could not read csv file %v %w", filePath, err)
	}
	defer func() {
		if err = f.Close(); err != nil {
			log.Errorln(log.Data, err)
		}
	}()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v missing header row", ErrMalformedFeed, filePath)
	}
	idx, err := mapHeader(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %v %v", ErrMalformedFeed, filePath, err)
	}

	resp := &kline.Item{
		Exchange: exchangeName,
		Symbol:   strings.ToUpper(symbol),
		Interval: interval,
	}
	for row := 2; ; row++ {
		var record []string
		record, err = reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v row %v %v", ErrMalformedFeed, filePath, row, err)
		}
		var candle kline.Candle
		candle, err = parseCandle(record, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v row %v %v", ErrMalformedFeed, filePath, row, err)
		}
		resp.Candles = append(resp.Candles, candle)
	}
	if len(resp.Candles) == 0 {
		return nil, fmt.Errorf("%w: %v", kline.ErrNoCandleData, filePath)
	}
	resp.SortCandlesByTimestamp()
	return resp, nil
}

type columnIndex struct {
	date, open, high, low, close, adjClose, volume int
}

func mapHeader(header []string) (*columnIndex, error) {
	idx := &columnIndex{date: -1, open: -1, high: -1, low: -1, close: -1, adjClose: -1, volume: -1}
	for x := range header {
		switch strings.ToLower(strings.TrimSpace(header[x])) {
		case "date", "datetime", "time", "timestamp":
			idx.date = x
		case "open":
			idx.open = x
		case "high":
			idx.high = x
		case "low":
			idx.low = x
		case "close":
			idx.close = x
		case "adj close", "adj_close", "adjclose", "adjusted close":
			idx.adjClose = x
		case "volume":
			idx.volume = x
		}
	}
	if idx.date == -1 {
		return nil, errors.New("missing mandatory date column")
	}
	if idx.open == -1 || idx.high == -1 || idx.low == -1 || idx.close == -1 || idx.volume == -1 {
		return nil, errors.New("missing mandatory ohlcv column")
	}
	return idx, nil
}

func parseCandle(record []string, idx *columnIndex) (kline.Candle, error) {
	var c kline.Candle
	var err error
	c.Time, err = parseTime(record[idx.date])
	if err != nil {
		return c, err
	}
	if c.Open, err = strconv.ParseFloat(record[idx.open], 64); err != nil {
		return c, fmt.Errorf("could not parse open %v", err)
	}
	if c.High, err = strconv.ParseFloat(record[idx.high], 64); err != nil {
		return c, fmt.Errorf("could not parse high %v", err)
	}
	if c.Low, err = strconv.ParseFloat(record[idx.low], 64); err != nil {
		return c, fmt.Errorf("could not parse low %v", err)
	}
	// split-adjusted exports price off the adjusted close column
	closeIdx := idx.close
	if idx.adjClose != -1 {
		closeIdx = idx.adjClose
	}
	if c.Close, err = strconv.ParseFloat(record[closeIdx], 64); err != nil {
		return c, fmt.Errorf("could not parse close %v", err)
	}
	if c.Volume, err = strconv.ParseFloat(record[idx.volume], 64); err != nil {
		return c, fmt.Errorf("could not parse volume %v", err)
	}
	return c, nil
}

func parseTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if secs, err := strconv.ParseInt(v, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	for x := range timeFormats {
		if t, err := time.Parse(timeFormats[x], v); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse date %v", v)
}
