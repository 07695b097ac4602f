package statistics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thrasher-corp/gobacktest/data"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio"
	"github.com/thrasher-corp/gobacktest/eventhandlers/portfolio/size"
	"github.com/thrasher-corp/gobacktest/eventtypes/event"
	"github.com/thrasher-corp/gobacktest/eventtypes/fill"
	klineevent "github.com/thrasher-corp/gobacktest/eventtypes/kline"
	"github.com/thrasher-corp/gobacktest/eventtypes/market"
	"github.com/thrasher-corp/gobacktest/eventtypes/order"
	"github.com/thrasher-corp/gobacktest/eventtypes/signal"
	gbtorder "github.com/thrasher-corp/gobacktest/order"
)

type fakeData struct {
	data.Base
}

func (f *fakeData) Load() error { return nil }

func TestTrackEvent(t *testing.T) {
	t.Parallel()
	s := Statistic{}
	s.TrackEvent(&market.Market{})
	s.TrackEvent(&market.Market{})
	s.TrackEvent(&signal.Signal{})
	s.TrackEvent(&order.Order{})
	s.TrackEvent(&fill.Fill{})

	assert.EqualValues(t, 2, s.MarketEvents)
	assert.EqualValues(t, 1, s.SignalEvents)
	assert.EqualValues(t, 1, s.OrderEvents)
	assert.EqualValues(t, 1, s.FillEvents)

	s.Reset()
	assert.Zero(t, s.MarketEvents)
}

func TestCalculateAllResults(t *testing.T) {
	t.Parallel()
	p, err := portfolio.Setup([]string{"AAPL"}, &size.Size{}, decimal.NewFromInt(100000))
	require.NoError(t, err)

	d := &fakeData{}
	tt := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	closes := []int64{10, 12, 11, 14}
	for x := range closes {
		d.AppendStream(&klineevent.Kline{
			Base: event.Base{
				Time:   tt.Add(time.Duration(x) * time.Hour),
				Symbol: "AAPL",
			},
			Close: decimal.NewFromInt(closes[x]),
		})
	}
	holder := &data.HandlerHolder{}
	holder.Setup()
	holder.SetDataForSymbol("AAPL", d)

	s := Statistic{StrategyName: "test"}
	for x := int64(1); x <= int64(len(closes)); x++ {
		_, ok := d.Next()
		require.True(t, ok)
		ev := &market.Market{Base: event.Base{Offset: x, Time: tt.Add(time.Duration(x-1) * time.Hour)}}
		s.TrackEvent(ev)
		require.NoError(t, p.UpdateHoldings(ev, holder))
		if x == 1 {
			f := &fill.Fill{
				Base:          event.Base{Offset: x, Time: tt, Symbol: "AAPL"},
				Direction:     gbtorder.Buy,
				Amount:        decimal.NewFromInt(100),
				PurchasePrice: decimal.NewFromInt(10),
			}
			require.NoError(t, p.OnFill(f))
			s.TrackTransaction(f)
		}
	}

	results, err := s.CalculateAllResults(p, holder)
	require.NoError(t, err)
	assert.Equal(t, "test", results.StrategyName)
	assert.EqualValues(t, 4, results.MarketEvents)
	assert.EqualValues(t, 1, results.Transactions)
	assert.True(t, results.InitialFunds.Equal(decimal.NewFromInt(100000)))
	// held 100 units from 10 to 14, total is up 400
	assert.True(t, results.FinalTotal.Equal(decimal.NewFromInt(100400)), "final total %v", results.FinalTotal)
	assert.True(t, results.TotalReturnPercent.Equal(decimal.NewFromFloat(0.4)), "total return %v", results.TotalReturnPercent)
	// buy and hold moved from 10 to 14
	assert.True(t, results.BuyAndHoldReturnPercent.Equal(decimal.NewFromInt(40)), "buy and hold %v", results.BuyAndHoldReturnPercent)
	assert.True(t, results.MaxDrawdownPercent.IsNegative(), "max drawdown %v", results.MaxDrawdownPercent)
}

func TestCalculateAllResultsNoData(t *testing.T) {
	t.Parallel()
	p, err := portfolio.Setup([]string{"AAPL"}, &size.Size{}, decimal.NewFromInt(100000))
	require.NoError(t, err)
	holder := &data.HandlerHolder{}
	holder.Setup()

	s := Statistic{}
	_, err = s.CalculateAllResults(p, holder)
	assert.ErrorIs(t, err, ErrNoDataToProcess)
}
