package indicator

import "fmt"

// RSI computes the Wilder-smoothed Relative Strength Index series.
// The average gain/loss is seeded with the simple mean of the first
// period deltas, then smoothed as (prev*(period-1) + x) / period.
// Entries before index period are NaN. Requires at least period+1 closes.
//
// Edge policy: avgLoss == 0 yields 100; avgGain == avgLoss == 0 (no price
// movement) yields 50 to avoid a 0/0.
func RSI(closes []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: rsi period must be positive, got %d", ErrInvalidConfig, period)
	}
	if len(closes) < period+1 {
		return nil, fmt.Errorf("%w: rsi needs %d closes, got %d", ErrInsufficientData, period+1, len(closes))
	}

	out := undefinedSeries(len(closes))

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	out[period] = rsiValue(avgGain, avgLoss)

	p := float64(period)
	for i := period + 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*(p-1) + gain) / p
		avgLoss = (avgLoss*(p-1) + loss) / p
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out, nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return 50.0 // flat market, neutral
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
