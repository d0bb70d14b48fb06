package collector

import (
	"time"

	"SignalScope/internal/model"
)

// Fetcher defines the interface for fetching daily market data.
type Fetcher interface {
	FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error)
	Name() string
}

// DefaultSymbols is the curated ticker list offered to the frontend picker.
var DefaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "TSLA",
	"META", "NVDA", "JPM", "JNJ", "V",
	"SPY", "QQQ", "BTC-USD", "ETH-USD",
}
