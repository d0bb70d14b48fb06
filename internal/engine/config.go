package engine

import (
	"fmt"

	"SignalScope/internal/indicator"
)

// Config is the tunable surface of the analytics engine.
type Config struct {
	RSIPeriod        int     `yaml:"rsi_period" json:"rsi_period"`
	MACDFast         int     `yaml:"macd_fast" json:"macd_fast"`
	MACDSlow         int     `yaml:"macd_slow" json:"macd_slow"`
	MACDSignal       int     `yaml:"macd_signal" json:"macd_signal"`
	BuyRSIThreshold  float64 `yaml:"buy_rsi_threshold" json:"buy_rsi_threshold"`
	SellRSIThreshold float64 `yaml:"sell_rsi_threshold" json:"sell_rsi_threshold"`
}

// DefaultConfig returns the standard RSI(14) / MACD(12,26,9) parameters
// with 30/70 thresholds.
func DefaultConfig() Config {
	return Config{
		RSIPeriod:        14,
		MACDFast:         12,
		MACDSlow:         26,
		MACDSignal:       9,
		BuyRSIThreshold:  30,
		SellRSIThreshold: 70,
	}
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.RSIPeriod <= 0 {
		return fmt.Errorf("%w: rsi_period must be positive, got %d", indicator.ErrInvalidConfig, c.RSIPeriod)
	}
	if c.MACDFast <= 0 || c.MACDSlow <= 0 || c.MACDSignal <= 0 {
		return fmt.Errorf("%w: macd periods must be positive (fast=%d slow=%d signal=%d)",
			indicator.ErrInvalidConfig, c.MACDFast, c.MACDSlow, c.MACDSignal)
	}
	if c.MACDFast >= c.MACDSlow {
		return fmt.Errorf("%w: macd_fast %d must be smaller than macd_slow %d",
			indicator.ErrInvalidConfig, c.MACDFast, c.MACDSlow)
	}
	if c.BuyRSIThreshold >= c.SellRSIThreshold {
		return fmt.Errorf("%w: buy threshold %.1f must be below sell threshold %.1f",
			indicator.ErrInvalidConfig, c.BuyRSIThreshold, c.SellRSIThreshold)
	}
	return nil
}

// MinSeriesLen is the shortest price series the engine accepts:
// the longest lookback window plus one delta.
func (c Config) MinSeriesLen() int {
	longest := c.RSIPeriod
	if c.MACDSlow > longest {
		longest = c.MACDSlow
	}
	return longest + 1
}
