package indicator

import (
	"fmt"
	"math"
)

// SMA computes the simple moving average series over the given period.
// Entries before index period-1 are NaN (insufficient history).
func SMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: sma period must be positive, got %d", ErrInvalidConfig, period)
	}

	out := undefinedSeries(len(values))
	if len(values) < period {
		return out, nil
	}

	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= period {
			sum -= values[i-period]
		}
		if i >= period-1 {
			out[i] = sum / float64(period)
		}
	}
	return out, nil
}

// undefinedSeries returns a series of n NaN entries.
func undefinedSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
