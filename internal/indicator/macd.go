package indicator

import (
	"fmt"
	"math"
)

// MACD computes the MACD line, signal line, and histogram series.
//
// The MACD line is EMA(fast) - EMA(slow), defined from index slow-1 onward
// (both EMAs run over the full history so the fast EMA is properly warmed
// up by then). The signal line is an EMA of the defined MACD values, seeded
// once signalPeriod of them exist. The histogram is MACD minus signal where
// both are defined. Undefined entries are NaN.
func MACD(closes []float64, fast, slow, signalPeriod int) (macd, signal, hist []float64, err error) {
	if fast <= 0 || slow <= 0 || signalPeriod <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: macd periods must be positive (fast=%d slow=%d signal=%d)",
			ErrInvalidConfig, fast, slow, signalPeriod)
	}
	if fast >= slow {
		return nil, nil, nil, fmt.Errorf("%w: macd fast period %d must be smaller than slow period %d",
			ErrInvalidConfig, fast, slow)
	}
	if len(closes) < slow {
		return nil, nil, nil, fmt.Errorf("%w: macd needs %d closes, got %d", ErrInsufficientData, slow, len(closes))
	}

	emaFast, err := EMA(closes, fast)
	if err != nil {
		return nil, nil, nil, err
	}
	emaSlow, err := EMA(closes, slow)
	if err != nil {
		return nil, nil, nil, err
	}

	n := len(closes)
	macd = undefinedSeries(n)
	for i := slow - 1; i < n; i++ {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	// Signal line: EMA recurrence over the defined MACD region only.
	signal = undefinedSeries(n)
	defined := macd[slow-1:]
	sigEMA, err := EMA(defined, signalPeriod)
	if err != nil {
		return nil, nil, nil, err
	}
	copy(signal[slow-1:], sigEMA)

	hist = undefinedSeries(n)
	for i := range hist {
		if !math.IsNaN(macd[i]) && !math.IsNaN(signal[i]) {
			hist[i] = macd[i] - signal[i]
		}
	}
	return macd, signal, hist, nil
}
