package engine

import (
	"math"

	"SignalScope/internal/model"
)

// crossovers scans for MACD line / signal line crossings. These feed the
// chart markers only; classification never looks at them.
func crossovers(series *model.PriceSeries, macd, signal []float64) []model.Crossover {
	events := make([]model.Crossover, 0)
	for i := 1; i < len(macd); i++ {
		if math.IsNaN(macd[i]) || math.IsNaN(signal[i]) ||
			math.IsNaN(macd[i-1]) || math.IsNaN(signal[i-1]) {
			continue
		}
		prevDiff := macd[i-1] - signal[i-1]
		diff := macd[i] - signal[i]
		switch {
		case prevDiff <= 0 && diff > 0:
			events = append(events, model.Crossover{Time: series.Points[i].Time, Direction: model.CrossBullish})
		case prevDiff >= 0 && diff < 0:
			events = append(events, model.Crossover{Time: series.Points[i].Time, Direction: model.CrossBearish})
		}
	}
	return events
}
