package indicator

import "errors"

var (
	// ErrInvalidConfig is returned when a period is non-positive or the
	// MACD fast period is not strictly smaller than the slow period.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInsufficientData is returned when the price series is shorter
	// than the longest lookback window plus one.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrInvalidInput is returned for non-finite close values, which would
	// otherwise corrupt the EMA recurrences downstream.
	ErrInvalidInput = errors.New("invalid input")
)
