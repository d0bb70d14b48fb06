package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"SignalScope/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.DataSource.Provider = "mock"
	cfg.Cache.Enabled = false
	return cfg
}

func TestRunAnalyze_PrintsTable(t *testing.T) {
	var out bytes.Buffer
	err := runAnalyze(&out, testConfig(t), "AAPL", "2024-01-01", "2024-03-31", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "AAPL: 91 bars") {
		t.Errorf("header should report the fetched bar count, got:\n%s", got)
	}
	if !strings.Contains(got, "2024-03-31") {
		t.Errorf("table should include the final bar row, got:\n%s", got)
	}

	// Header line plus 5 trailing data rows.
	var rows int
	for _, line := range strings.Split(got, "\n") {
		if strings.HasPrefix(line, "2024-") {
			rows++
		}
	}
	if rows != 5 {
		t.Errorf("expected 5 data rows, got %d:\n%s", rows, got)
	}
}

func TestRunAnalyze_BadDates(t *testing.T) {
	var out bytes.Buffer
	if err := runAnalyze(&out, testConfig(t), "AAPL", "2024-13-99", "", 5); err == nil {
		t.Error("malformed start date should error")
	}
	if err := runAnalyze(&out, testConfig(t), "AAPL", "", "not-a-date", 5); err == nil {
		t.Error("malformed end date should error")
	}
}
