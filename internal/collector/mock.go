package collector

import (
	"math"
	"time"

	"SignalScope/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.Bar
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, start, end time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		out := make([]model.Bar, 0, len(m.Bars))
		for _, b := range m.Bars {
			if !b.Time.Before(start) && !b.Time.After(end) {
				out = append(out, b)
			}
		}
		return out, nil
	}
	return GenerateBars(150.0, start, end), nil
}

// GenerateBars produces deterministic synthetic daily bars for a date range.
func GenerateBars(basePrice float64, start, end time.Time) []model.Bar {
	bars := make([]model.Bar, 0, 64)
	for d, i := start, 0; !d.After(end); d, i = d.AddDate(0, 0, 1), i+1 {
		p := basePrice * (1 + 0.05*math.Sin(float64(i)/7) + 0.0005*float64(i))
		bars = append(bars, model.Bar{
			Time:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1_000_000,
		})
	}
	return bars
}
