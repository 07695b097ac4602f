// Package kline provides the candle data event revealed by the bar feed,
// one per symbol per tick.
package kline

import "github.com/shopspring/decimal"

// GetOpenPrice returns the open price of the candle
func (k *Kline) GetOpenPrice() decimal.Decimal {
	return k.Open
}

// GetHighPrice returns the high price of the candle
func (k *Kline) GetHighPrice() decimal.Decimal {
	return k.High
}

// GetLowPrice returns the low price of the candle
func (k *Kline) GetLowPrice() decimal.Decimal {
	return k.Low
}

// GetClosePrice returns the closing price of the candle
func (k *Kline) GetClosePrice() decimal.Decimal {
	return k.Close
}

// GetVolume returns the candle volume
func (k *Kline) GetVolume() decimal.Decimal {
	return k.Volume
}
