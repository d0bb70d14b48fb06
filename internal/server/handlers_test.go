package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"SignalScope/internal/cache"
	"SignalScope/internal/collector"
	"SignalScope/internal/config"
	"SignalScope/internal/model"
)

func testServer(t *testing.T, fetcher collector.Fetcher) *Server {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Symbols = []string{"AAPL", "SPY"}

	col := collector.NewCollector(fetcher, cache.NewNoopStore())
	col.MaxRetries = 0
	return NewServer(cfg, col)
}

func doRequest(s *Server, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalysis_OK(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{})

	rec := doRequest(s, "/api/v1/analysis?symbol=AAPL&start=2024-01-01&end=2024-03-31")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var analysis model.Analysis
	if err := json.NewDecoder(rec.Body).Decode(&analysis); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if analysis.Symbol != "AAPL" {
		t.Errorf("symbol: expected AAPL, got %q", analysis.Symbol)
	}
	if len(analysis.Bars) == 0 {
		t.Fatal("expected bars in response")
	}
	if len(analysis.Indicators) != len(analysis.Bars) || len(analysis.Signals) != len(analysis.Bars) {
		t.Errorf("series misaligned: %d bars, %d indicators, %d signals",
			len(analysis.Bars), len(analysis.Indicators), len(analysis.Signals))
	}
	// Warm-up entries must be null, not zero.
	if analysis.Indicators[0].RSI != nil {
		t.Error("leading rsi should be null")
	}
	if analysis.Signals[0].Signal != model.SignalHold {
		t.Errorf("leading signal should be HOLD, got %s", analysis.Signals[0].Signal)
	}
}

func TestHandleAnalysis_ParamErrors(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{})

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"missing symbol", "/api/v1/analysis", http.StatusBadRequest},
		{"bad date", "/api/v1/analysis?symbol=AAPL&start=2024-13-99", http.StatusBadRequest},
		{"inverted range", "/api/v1/analysis?symbol=AAPL&start=2024-06-01&end=2024-01-01", http.StatusBadRequest},
		{"bad rsi period", "/api/v1/analysis?symbol=AAPL&rsi_period=abc", http.StatusBadRequest},
		{"fast above slow", "/api/v1/analysis?symbol=AAPL&start=2024-01-01&end=2024-03-31&macd_fast=30", http.StatusBadRequest},
		{"insufficient data", "/api/v1/analysis?symbol=AAPL&start=2024-01-01&end=2024-01-10", http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		rec := doRequest(s, tc.target)
		if rec.Code != tc.want {
			t.Errorf("%s: expected %d, got %d: %s", tc.name, tc.want, rec.Code, rec.Body.String())
		}
	}
}

func TestHandleAnalysis_FetchFailure(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{Err: errors.New("upstream down")})

	rec := doRequest(s, "/api/v1/analysis?symbol=AAPL&start=2024-01-01&end=2024-03-31")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestHandleSymbols(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{})

	rec := doRequest(s, "/api/v1/symbols")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Symbols []string `json:"symbols"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Symbols) != 2 || body.Symbols[0] != "AAPL" {
		t.Errorf("unexpected symbols: %v", body.Symbols)
	}
}

func TestHandleHealthz(t *testing.T) {
	s := testServer(t, &collector.MockFetcher{})

	rec := doRequest(s, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: %q", ct)
	}
}
