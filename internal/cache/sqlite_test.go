package cache

import (
	"path/filepath"
	"testing"
	"time"

	"SignalScope/internal/model"
)

func testBars(start time.Time, n int) []model.Bar {
	bars := make([]model.Bar, n)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = model.Bar{
			Time:   start.AddDate(0, 0, i),
			Open:   p - 0.5,
			High:   p + 1,
			Low:    p - 1,
			Close:  p,
			Volume: 1000,
		}
	}
	return bars
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "bars.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := testBars(start, 10)
	if err := store.PutDailyBars("AAPL", bars); err != nil {
		t.Fatalf("put bars: %v", err)
	}

	got, err := store.GetDailyBars("AAPL", start, start.AddDate(0, 0, 9))
	if err != nil {
		t.Fatalf("get bars: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected 10 bars, got %d", len(got))
	}
	for i := range got {
		if !got[i].Time.Equal(bars[i].Time) || got[i].Close != bars[i].Close {
			t.Errorf("bar %d mismatch: %+v vs %+v", i, got[i], bars[i])
		}
	}

	// Range query returns the subset in order.
	sub, err := store.GetDailyBars("AAPL", start.AddDate(0, 0, 3), start.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("get subset: %v", err)
	}
	if len(sub) != 3 {
		t.Fatalf("expected 3 bars in subrange, got %d", len(sub))
	}
	if sub[0].Close != 103 || sub[2].Close != 105 {
		t.Errorf("subrange bounds wrong: %+v", sub)
	}

	// Other symbols stay empty.
	other, err := store.GetDailyBars("MSFT", start, start.AddDate(0, 0, 9))
	if err != nil {
		t.Fatalf("get other symbol: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("expected no bars for MSFT, got %d", len(other))
	}
}

func TestSQLiteStore_Upsert(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "bars.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := testBars(start, 5)
	if err := store.PutDailyBars("SPY", bars); err != nil {
		t.Fatalf("put bars: %v", err)
	}

	// Re-put the same days with revised closes; no duplicates may appear.
	for i := range bars {
		bars[i].Close += 10
	}
	if err := store.PutDailyBars("SPY", bars); err != nil {
		t.Fatalf("re-put bars: %v", err)
	}

	got, err := store.GetDailyBars("SPY", start, start.AddDate(0, 0, 4))
	if err != nil {
		t.Fatalf("get bars: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 bars after upsert, got %d", len(got))
	}
	if got[0].Close != 110 {
		t.Errorf("expected revised close 110, got %.1f", got[0].Close)
	}
}
