package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"SignalScope/internal/engine"
	"SignalScope/internal/indicator"
)

const defaultLookbackDays = 365

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	symbol := q.Get("symbol")
	if symbol == "" {
		s.Metrics.AnalysisErrors.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}

	start, end, err := parseRange(q)
	if err != nil {
		s.Metrics.AnalysisErrors.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := s.analysisConfig(q)
	if err != nil {
		s.Metrics.AnalysisErrors.WithLabelValues("bad_request").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fetchStart := time.Now()
	res, err := s.Collector.FetchSeries(symbol, start, end)
	s.Metrics.FetchDur.Observe(time.Since(fetchStart).Seconds())
	if err != nil {
		log.Printf("[ERROR] fetch %s: %v", symbol, err)
		s.Metrics.AnalysisErrors.WithLabelValues("fetch").Inc()
		writeError(w, http.StatusBadGateway, "market data fetch failed")
		return
	}
	if res.FromCache {
		s.Metrics.CacheHits.Inc()
	} else {
		s.Metrics.CacheMisses.Inc()
	}

	analyzeStart := time.Now()
	analysis, err := engine.Analyze(res.Series, cfg)
	s.Metrics.AnalyzeDur.Observe(time.Since(analyzeStart).Seconds())
	if err != nil {
		switch {
		case errors.Is(err, indicator.ErrInvalidConfig):
			s.Metrics.AnalysisErrors.WithLabelValues("invalid_config").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, indicator.ErrInvalidInput):
			s.Metrics.AnalysisErrors.WithLabelValues("invalid_input").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, indicator.ErrInsufficientData):
			s.Metrics.AnalysisErrors.WithLabelValues("insufficient_data").Inc()
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("[ERROR] analyze %s: %v", symbol, err)
			s.Metrics.AnalysisErrors.WithLabelValues("internal").Inc()
			writeError(w, http.StatusInternalServerError, "analysis failed")
		}
		return
	}

	analysis.Bars = res.Bars
	s.Metrics.AnalysesTotal.Inc()
	writeJSON(w, http.StatusOK, analysis)
}

// parseRange reads start/end dates, defaulting to the last year.
func parseRange(q url.Values) (start, end time.Time, err error) {
	end = time.Now().UTC()
	if v := q.Get("end"); v != "" {
		end, err = time.Parse("2006-01-02", v)
		if err != nil {
			return start, end, fmt.Errorf("bad end date %q, want YYYY-MM-DD", v)
		}
	}
	start = end.AddDate(0, 0, -defaultLookbackDays)
	if v := q.Get("start"); v != "" {
		start, err = time.Parse("2006-01-02", v)
		if err != nil {
			return start, end, fmt.Errorf("bad start date %q, want YYYY-MM-DD", v)
		}
	}
	if !start.Before(end) {
		return start, end, fmt.Errorf("start %s must be before end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return start, end, nil
}

// analysisConfig overlays per-request parameters on the configured defaults.
func (s *Server) analysisConfig(q url.Values) (engine.Config, error) {
	cfg := s.Cfg.Analysis

	intParams := []struct {
		key string
		dst *int
	}{
		{"rsi_period", &cfg.RSIPeriod},
		{"macd_fast", &cfg.MACDFast},
		{"macd_slow", &cfg.MACDSlow},
		{"macd_signal", &cfg.MACDSignal},
	}
	for _, p := range intParams {
		if v := q.Get(p.key); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return cfg, fmt.Errorf("bad %s %q", p.key, v)
			}
			*p.dst = n
		}
	}

	floatParams := []struct {
		key string
		dst *float64
	}{
		{"buy_threshold", &cfg.BuyRSIThreshold},
		{"sell_threshold", &cfg.SellRSIThreshold},
	}
	for _, p := range floatParams {
		if v := q.Get(p.key); v != "" {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return cfg, fmt.Errorf("bad %s %q", p.key, v)
			}
			*p.dst = f
		}
	}
	return cfg, nil
}
