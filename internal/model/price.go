package model

import "time"

// Bar represents a single daily candlestick bar as returned by a fetcher.
type Bar struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PricePoint is a single close observation consumed by the engine.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// PriceSeries holds a chronologically ordered close series for one symbol.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

// NewPriceSeries builds a PriceSeries from daily bars, keeping bar order.
func NewPriceSeries(symbol string, bars []Bar) *PriceSeries {
	points := make([]PricePoint, len(bars))
	for i, b := range bars {
		points[i] = PricePoint{Time: b.Time, Close: b.Close}
	}
	return &PriceSeries{Symbol: symbol, Points: points}
}

// Closes returns the close values in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Len returns the number of points in the series.
func (s *PriceSeries) Len() int { return len(s.Points) }
