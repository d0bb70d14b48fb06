package model

import "time"

// Signal is the per-timestamp buy/sell/hold classification.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// CrossDirection indicates which way the MACD line crossed its signal line.
type CrossDirection string

const (
	CrossBullish CrossDirection = "BULLISH"
	CrossBearish CrossDirection = "BEARISH"
)

// Crossover is a MACD line / signal line crossing event, used for chart
// markers only. It does not feed classification.
type Crossover struct {
	Time      time.Time      `json:"time"`
	Direction CrossDirection `json:"direction"`
}

// SignalPoint pairs a timestamp with its classification.
type SignalPoint struct {
	Time   time.Time `json:"time"`
	Signal Signal    `json:"signal"`
}

// Analysis is the complete output for one (symbol, range, config) request.
type Analysis struct {
	Symbol     string          `json:"symbol"`
	Bars       []Bar           `json:"bars"`
	Indicators IndicatorSeries `json:"indicators"`
	Signals    []SignalPoint   `json:"signals"`
	Crossovers []Crossover     `json:"crossovers"`
}
