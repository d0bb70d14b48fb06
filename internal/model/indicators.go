package model

import "time"

// IndicatorPoint holds all computed indicator values for one timestamp.
// Nil means the rolling window has insufficient history; it marshals as
// JSON null so the charting side can gap the series.
type IndicatorPoint struct {
	Time       time.Time `json:"time"`
	RSI        *float64  `json:"rsi"`
	MACD       *float64  `json:"macd"`
	MACDSignal *float64  `json:"macd_signal"`
	MACDHist   *float64  `json:"macd_hist"`
	SMA20      *float64  `json:"sma_20"`
	SMA50      *float64  `json:"sma_50"`
}

// IndicatorSeries is timestamp-aligned with the PriceSeries it was
// computed from: same length, same order.
type IndicatorSeries []IndicatorPoint
