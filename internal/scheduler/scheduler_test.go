package scheduler

import (
	"errors"
	"testing"
	"time"

	"SignalScope/internal/cache"
	"SignalScope/internal/collector"
	"SignalScope/internal/model"
)

type recordingStore struct {
	cache.NoopStore
	puts map[string]int
}

func (r *recordingStore) PutDailyBars(symbol string, bars []model.Bar) error {
	if r.puts == nil {
		r.puts = map[string]int{}
	}
	r.puts[symbol] += len(bars)
	return nil
}

func TestRegister_BadCronExpr(t *testing.T) {
	col := collector.NewCollector(&collector.MockFetcher{}, cache.NewNoopStore())
	s := NewScheduler(col, []string{"SPY"}, 30)

	if err := s.Register("not a cron expr"); err == nil {
		t.Fatal("expected error for malformed cron expression")
	}
	if err := s.Register("0 30 22 * * 1-5"); err != nil {
		t.Fatalf("valid expression rejected: %v", err)
	}
}

func TestRunNow_WarmsCache(t *testing.T) {
	store := &recordingStore{}
	col := collector.NewCollector(&collector.MockFetcher{}, store)
	col.MaxRetries = 0
	s := NewScheduler(col, []string{"AAPL", "SPY"}, 30)

	s.RunNow()

	for _, symbol := range []string{"AAPL", "SPY"} {
		if store.puts[symbol] == 0 {
			t.Errorf("expected cached bars for %s", symbol)
		}
	}
}

func TestRunNow_ContinuesPastFailures(t *testing.T) {
	store := &recordingStore{}
	fetcher := &flakyFetcher{failFor: "AAPL"}
	col := collector.NewCollector(fetcher, store)
	col.MaxRetries = 0
	s := NewScheduler(col, []string{"AAPL", "SPY"}, 30)

	s.RunNow()

	if store.puts["AAPL"] != 0 {
		t.Error("failed symbol should not be cached")
	}
	if store.puts["SPY"] == 0 {
		t.Error("later symbols should still be prefetched")
	}
}

type flakyFetcher struct {
	failFor string
}

func (f *flakyFetcher) Name() string { return "flaky" }

func (f *flakyFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error) {
	if symbol == f.failFor {
		return nil, errors.New("upstream down")
	}
	return collector.GenerateBars(100, start, end), nil
}
