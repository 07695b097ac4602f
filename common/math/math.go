// Package math provides decimal-based statistics helpers for the backtester
// results calculations.
package math

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoValues returned when a calculation received an empty series
	ErrNoValues = errors.New("no values provided")
	// ErrZeroValue returned when a divisor series has no variance
	ErrZeroValue = errors.New("cannot calculate with zero standard deviation")
)

// DecimalArithmeticMean returns the arithmetic mean of the series
func DecimalArithmeticMean(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, ErrNoValues
	}
	var sum decimal.Decimal
	for x := range values {
		sum = sum.Add(values[x])
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))), nil
}

// DecimalFinancialGeometricMean returns the financial geometric mean of the
// series, the rate which, compounded, links the first value to the last
func DecimalFinancialGeometricMean(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, ErrNoValues
	}
	product := 1.0
	for x := range values {
		v, _ := values[x].Float64()
		if v < -1 {
			// cannot meaningfully compound a loss beyond -100%
			v = -1
		}
		product *= 1 + v
	}
	if product <= 0 {
		return decimal.Zero, nil
	}
	geometricPower := math.Pow(product, 1/float64(len(values)))
	return decimal.NewFromFloat(geometricPower - 1), nil
}

// DecimalPopulationStandardDeviation returns the population standard
// deviation of the series
func DecimalPopulationStandardDeviation(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, ErrNoValues
	}
	mean, err := DecimalArithmeticMean(values)
	if err != nil {
		return decimal.Zero, err
	}
	var sumOfSquares decimal.Decimal
	for x := range values {
		diff := values[x].Sub(mean)
		sumOfSquares = sumOfSquares.Add(diff.Mul(diff))
	}
	variance, _ := sumOfSquares.Div(decimal.NewFromInt(int64(len(values)))).Float64()
	return decimal.NewFromFloat(math.Sqrt(variance)), nil
}

// DecimalSharpeRatio returns sharpe ratio of the return series against the
// risk free rate per interval
func DecimalSharpeRatio(movementPerCandle []decimal.Decimal, riskFreeRate, average decimal.Decimal) (decimal.Decimal, error) {
	if len(movementPerCandle) == 0 {
		return decimal.Zero, ErrNoValues
	}
	excessReturns := make([]decimal.Decimal, len(movementPerCandle))
	for x := range movementPerCandle {
		excessReturns[x] = movementPerCandle[x].Sub(riskFreeRate)
	}
	stdDev, err := DecimalPopulationStandardDeviation(excessReturns)
	if err != nil {
		return decimal.Zero, err
	}
	if stdDev.IsZero() {
		return decimal.Zero, ErrZeroValue
	}
	return average.Sub(riskFreeRate).Div(stdDev), nil
}
