package engine

import (
	"fmt"
	"math"

	"SignalScope/internal/indicator"
	"SignalScope/internal/model"
)

// Chart overlay windows, fixed to match the dashboard's SMA traces.
const (
	smaShortPeriod = 20
	smaLongPeriod  = 50
)

// Analyze runs the full indicator and signal computation for one price
// series. It is a pure function: the same series and config always produce
// the same result, and nothing is cached between invocations.
func Analyze(series *model.PriceSeries, cfg Config) (*model.Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSeries(series); err != nil {
		return nil, err
	}
	if series.Len() < cfg.MinSeriesLen() {
		return nil, fmt.Errorf("%w: need at least %d points, got %d",
			indicator.ErrInsufficientData, cfg.MinSeriesLen(), series.Len())
	}

	closes := series.Closes()

	rsi, err := indicator.RSI(closes, cfg.RSIPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute rsi: %w", err)
	}
	macd, macdSignal, macdHist, err := indicator.MACD(closes, cfg.MACDFast, cfg.MACDSlow, cfg.MACDSignal)
	if err != nil {
		return nil, fmt.Errorf("compute macd: %w", err)
	}
	sma20, err := indicator.SMA(closes, smaShortPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute sma20: %w", err)
	}
	sma50, err := indicator.SMA(closes, smaLongPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute sma50: %w", err)
	}

	indicators := make(model.IndicatorSeries, series.Len())
	signals := make([]model.SignalPoint, series.Len())
	for i, p := range series.Points {
		point := model.IndicatorPoint{
			Time:       p.Time,
			RSI:        defined(rsi[i]),
			MACD:       defined(macd[i]),
			MACDSignal: defined(macdSignal[i]),
			MACDHist:   defined(macdHist[i]),
			SMA20:      defined(sma20[i]),
			SMA50:      defined(sma50[i]),
		}
		indicators[i] = point
		signals[i] = model.SignalPoint{Time: p.Time, Signal: Classify(point, cfg)}
	}

	return &model.Analysis{
		Symbol:     series.Symbol,
		Indicators: indicators,
		Signals:    signals,
		Crossovers: crossovers(series, macd, macdSignal),
	}, nil
}

// validateSeries rejects unordered, duplicate, or non-finite price data
// before it can corrupt the EMA recurrences.
func validateSeries(series *model.PriceSeries) error {
	for i, p := range series.Points {
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) {
			return fmt.Errorf("%w: non-finite close at index %d (%s)",
				indicator.ErrInvalidInput, i, p.Time.Format("2006-01-02"))
		}
		if i > 0 && !series.Points[i-1].Time.Before(p.Time) {
			return fmt.Errorf("%w: timestamps not strictly ascending at index %d",
				indicator.ErrInvalidInput, i)
		}
	}
	return nil
}

// defined converts a NaN (insufficient history) into a nil pointer.
func defined(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
