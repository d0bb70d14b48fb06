package cache

import (
	"time"

	"SignalScope/internal/model"
)

// Store caches raw fetched daily bars per symbol. Computed indicators and
// signals are never stored; every analysis recomputes from the price data.
type Store interface {
	GetDailyBars(symbol string, start, end time.Time) ([]model.Bar, error)
	PutDailyBars(symbol string, bars []model.Bar) error
	Close() error
}

// NoopStore is a no-op implementation used when caching is disabled.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) GetDailyBars(_ string, _, _ time.Time) ([]model.Bar, error) { return nil, nil }
func (n *NoopStore) PutDailyBars(_ string, _ []model.Bar) error                 { return nil }
func (n *NoopStore) Close() error                                               { return nil }
