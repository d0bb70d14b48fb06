package collector

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"SignalScope/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted market-data REST API.
// Prices come over the wire as decimal strings, the usual exchange-API
// convention, and are converted once at the boundary.
type RESTFetcher struct {
	client *resty.Client
}

// NewRESTFetcher creates a fetcher with optional API key and proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetTimeout(30 * time.Second)
	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}
	if proxyURL != "" {
		client.SetProxy(proxyURL)
	}
	return &RESTFetcher{client: client}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restBar is the expected JSON shape from the bars endpoint.
type restBar struct {
	Timestamp int64  `json:"timestamp"`
	Open      string `json:"open"`
	High      string `json:"high"`
	Low       string `json:"low"`
	Close     string `json:"close"`
	Volume    string `json:"volume"`
}

func (f *RESTFetcher) FetchDailyBars(symbol string, start, end time.Time) ([]model.Bar, error) {
	var raw []restBar
	resp, err := f.client.R().
		SetQueryParams(map[string]string{
			"symbol": symbol,
			"from":   start.Format("2006-01-02"),
			"to":     end.Format("2006-01-02"),
		}).
		SetResult(&raw).
		Get("/api/v1/bars/daily")
	if err != nil {
		return nil, fmt.Errorf("rest fetch %s: %w", symbol, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("rest fetch %s: status %d: %s", symbol, resp.StatusCode(), resp.String())
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("rest: no data returned for %s", symbol)
	}

	bars := make([]model.Bar, 0, len(raw))
	for i, rb := range raw {
		bar, err := rb.toBar()
		if err != nil {
			return nil, fmt.Errorf("rest: bad bar at index %d for %s: %w", i, symbol, err)
		}
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}

func (rb restBar) toBar() (model.Bar, error) {
	fields := [5]string{rb.Open, rb.High, rb.Low, rb.Close, rb.Volume}
	var vals [5]float64
	for i, s := range fields {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return model.Bar{}, fmt.Errorf("parse %q: %w", s, err)
		}
		vals[i] = d.InexactFloat64()
	}
	return model.Bar{
		Time:   time.Unix(rb.Timestamp, 0).UTC(),
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}
