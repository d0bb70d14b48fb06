package engine

import "SignalScope/internal/model"

// Classify maps one indicator entry to a Buy/Sell/Hold signal. It is
// memoryless: no lookahead, no lookback, no position state.
//
// Buy requires RSI strictly below the buy threshold AND the MACD line
// strictly above its signal line. Sell requires RSI strictly above the
// sell threshold AND the MACD line strictly below its signal line.
// Everything else, including undefined indicators and an exact MACD
// tie, is Hold. RSI exactly at a threshold does not qualify.
func Classify(p model.IndicatorPoint, cfg Config) model.Signal {
	if p.RSI == nil || p.MACD == nil || p.MACDSignal == nil {
		return model.SignalHold
	}
	switch {
	case *p.RSI < cfg.BuyRSIThreshold && *p.MACD > *p.MACDSignal:
		return model.SignalBuy
	case *p.RSI > cfg.SellRSIThreshold && *p.MACD < *p.MACDSignal:
		return model.SignalSell
	default:
		return model.SignalHold
	}
}
