package indicator

import "fmt"

// EMA computes the exponential moving average series over the given period.
// The EMA is seeded with the simple mean of the first period values, then
// follows EMA[t] = value[t]*k + EMA[t-1]*(1-k) with k = 2/(period+1).
// Entries before index period-1 are NaN.
func EMA(values []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: ema period must be positive, got %d", ErrInvalidConfig, period)
	}

	out := undefinedSeries(len(values))
	if len(values) < period {
		return out, nil
	}

	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)
	out[period-1] = seed

	k := 2.0 / float64(period+1)
	prev := seed
	for i := period; i < len(values); i++ {
		prev = values[i]*k + prev*(1-k)
		out[i] = prev
	}
	return out, nil
}
