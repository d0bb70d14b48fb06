package collector

import (
	"fmt"
	"log"
	"time"

	"SignalScope/internal/cache"
	"SignalScope/internal/model"
)

// staleAfter is how far the newest cached bar may trail the requested end
// of range before a refetch; covers weekends and market holidays.
const staleAfter = 4 * 24 * time.Hour

// Collector orchestrates cached data retrieval: cache lookup, network
// fetch with retries, cache fill.
type Collector struct {
	Fetcher    Fetcher
	Store      cache.Store
	MaxRetries int
}

// FetchResult is the outcome of one series retrieval.
type FetchResult struct {
	Series    *model.PriceSeries
	Bars      []model.Bar
	FromCache bool
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, store cache.Store) *Collector {
	return &Collector{Fetcher: fetcher, Store: store, MaxRetries: 3}
}

// FetchSeries returns the daily price series for the symbol and date range,
// serving from the bar cache when it is fresh enough.
func (c *Collector) FetchSeries(symbol string, start, end time.Time) (*FetchResult, error) {
	cached, err := c.Store.GetDailyBars(symbol, start, end)
	if err != nil {
		log.Printf("[WARN] cache lookup failed for %s: %v", symbol, err)
	} else if len(cached) > 0 && c.fresh(cached, start, end) {
		log.Printf("[INFO] cache hit: %s %s..%s (%d bars)",
			symbol, start.Format("2006-01-02"), end.Format("2006-01-02"), len(cached))
		return &FetchResult{
			Series:    model.NewPriceSeries(symbol, cached),
			Bars:      cached,
			FromCache: true,
		}, nil
	}

	bars, err := c.fetchWithRetry(symbol, start, end)
	if err != nil {
		return nil, err
	}

	if err := c.Store.PutDailyBars(symbol, bars); err != nil {
		log.Printf("[WARN] cache fill failed for %s: %v", symbol, err)
	}

	return &FetchResult{
		Series: model.NewPriceSeries(symbol, bars),
		Bars:   bars,
	}, nil
}

// Prefetch warms the cache for a symbol, discarding the result.
func (c *Collector) Prefetch(symbol string, start, end time.Time) error {
	bars, err := c.fetchWithRetry(symbol, start, end)
	if err != nil {
		return err
	}
	return c.Store.PutDailyBars(symbol, bars)
}

// fresh reports whether the cached bars cover the requested range: the
// oldest bar must sit close enough to the requested start and the newest
// close enough to the requested end. Otherwise a request wider than the
// one that warmed the cache would be served a truncated series.
func (c *Collector) fresh(bars []model.Bar, start, end time.Time) bool {
	if now := time.Now(); end.After(now) {
		end = now
	}
	oldest := bars[0].Time
	newest := bars[len(bars)-1].Time
	return oldest.Sub(start) <= staleAfter && end.Sub(newest) <= staleAfter
}

func (c *Collector) fetchWithRetry(symbol string, start, end time.Time) ([]model.Bar, error) {
	var lastErr error
	for i := 0; i <= c.MaxRetries; i++ {
		bars, err := c.Fetcher.FetchDailyBars(symbol, start, end)
		if err == nil {
			return bars, nil
		}
		lastErr = err
		backoff := time.Duration(1<<uint(i)) * time.Second
		log.Printf("[WARN] fetch %s failed (attempt %d/%d): %v, retrying in %v",
			symbol, i+1, c.MaxRetries+1, err, backoff)
		if i < c.MaxRetries {
			time.Sleep(backoff)
		}
	}
	return nil, fmt.Errorf("fetch %s via %s: all %d attempts failed: %w",
		symbol, c.Fetcher.Name(), c.MaxRetries+1, lastErr)
}
