package csv

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/thrasher-corp/gobacktest/kline"
)

func TestLoadData(t *testing.T) {
	t.Parallel()
	item, err := LoadData(filepath.Join("testdata", "candles.csv"), "test", "aapl", kline.OneDay)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	if item.Symbol != "AAPL" {
		t.Errorf("received: %v, expected: %v", item.Symbol, "AAPL")
	}
	if len(item.Candles) != 5 {
		t.Fatalf("received: %v, expected: %v", len(item.Candles), 5)
	}
	expectedStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !item.Candles[0].Time.Equal(expectedStart) {
		t.Errorf("received: %v, expected: %v", item.Candles[0].Time, expectedStart)
	}
	if item.Candles[0].Close != 104 {
		t.Errorf("received: %v, expected: %v", item.Candles[0].Close, 104)
	}
}

func TestLoadDataAdjustedClose(t *testing.T) {
	t.Parallel()
	item, err := LoadData(filepath.Join("testdata", "adjusted.csv"), "test", "AAPL", kline.OneDay)
	if err != nil {
		t.Fatalf("received: %v, expected: %v", err, nil)
	}
	if len(item.Candles) != 3 {
		t.Fatalf("received: %v, expected: %v", len(item.Candles), 3)
	}
	if item.Candles[0].Close != 52 {
		t.Errorf("received: %v, expected: %v", item.Candles[0].Close, 52)
	}
}

func TestLoadDataMalformed(t *testing.T) {
	t.Parallel()
	_, err := LoadData(filepath.Join("testdata", "missing-date.csv"), "test", "AAPL", kline.OneDay)
	if !errors.Is(err, ErrMalformedFeed) {
		t.Errorf("received: %v, expected: %v", err, ErrMalformedFeed)
	}

	_, err = LoadData(filepath.Join("testdata", "bad-row.csv"), "test", "AAPL", kline.OneDay)
	if !errors.Is(err, ErrMalformedFeed) {
		t.Errorf("received: %v, expected: %v", err, ErrMalformedFeed)
	}
}

func TestLoadDataNoSymbol(t *testing.T) {
	t.Parallel()
	_, err := LoadData(filepath.Join("testdata", "candles.csv"), "test", "", kline.OneDay)
	if !errors.Is(err, kline.ErrUnsetSymbol) {
		t.Errorf("received: %v, expected: %v", err, kline.ErrUnsetSymbol)
	}
}
