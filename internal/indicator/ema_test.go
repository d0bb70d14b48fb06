package indicator

import (
	"errors"
	"math"
	"testing"
)

func TestSMA_Values(t *testing.T) {
	values := []float64{11, 12, 13, 14, 20, 16}
	sma, err := SMA(values, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []float64{math.NaN(), math.NaN(), 12, 13, 47.0 / 3.0, 50.0 / 3.0}
	for i := range expected {
		if math.IsNaN(expected[i]) {
			if !math.IsNaN(sma[i]) {
				t.Errorf("index %d: expected NaN, got %.4f", i, sma[i])
			}
			continue
		}
		if math.Abs(sma[i]-expected[i]) > 1e-9 {
			t.Errorf("index %d: expected %.4f, got %.4f", i, expected[i], sma[i])
		}
	}
}

func TestSMA_ShortSeriesAllUndefined(t *testing.T) {
	sma, err := SMA([]float64{1, 2}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range sma {
		if !math.IsNaN(v) {
			t.Errorf("index %d: expected NaN, got %.4f", i, v)
		}
	}
}

func TestEMA_SeedAndRecurrence(t *testing.T) {
	values := []float64{10, 11, 12, 13, 14}
	ema, err := EMA(values, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !math.IsNaN(ema[0]) || !math.IsNaN(ema[1]) {
		t.Error("expected NaN before seed index")
	}
	// Seed is the simple mean of the first 3 values.
	if math.Abs(ema[2]-11) > 1e-9 {
		t.Errorf("seed: expected 11, got %.4f", ema[2])
	}
	// k = 2/(3+1) = 0.5
	if math.Abs(ema[3]-(13*0.5+11*0.5)) > 1e-9 {
		t.Errorf("ema[3]: expected 12, got %.4f", ema[3])
	}
	if math.Abs(ema[4]-(14*0.5+12*0.5)) > 1e-9 {
		t.Errorf("ema[4]: expected 13, got %.4f", ema[4])
	}
}

func TestEMA_Deterministic(t *testing.T) {
	values := []float64{44, 44.25, 44.5, 43.75, 44.65, 45.12, 45.84, 46.08, 45.89, 46.03}
	a, err := EMA(values, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := EMA(values, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range a {
		if math.IsNaN(a[i]) && math.IsNaN(b[i]) {
			continue
		}
		if a[i] != b[i] {
			t.Errorf("index %d: recomputation differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestSMAEMA_InvalidPeriod(t *testing.T) {
	if _, err := SMA([]float64{1, 2, 3}, 0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("sma: expected ErrInvalidConfig, got %v", err)
	}
	if _, err := EMA([]float64{1, 2, 3}, -1); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("ema: expected ErrInvalidConfig, got %v", err)
	}
}
