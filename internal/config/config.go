package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"SignalScope/internal/engine"
)

// Config holds all application configuration.
type Config struct {
	DataSource struct {
		Provider string `yaml:"provider"` // "yahoo", "rest", or "mock"
		BaseURL  string `yaml:"base_url"`
		APIKey   string `yaml:"api_key"`
	} `yaml:"data_source"`
	Symbols []string `yaml:"symbols"`
	Server  struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Cache struct {
		Enabled    bool   `yaml:"enabled"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"cache"`
	Refresh struct {
		Cron         string `yaml:"cron"`
		LookbackDays int    `yaml:"lookback_days"`
	} `yaml:"refresh"`
	Analysis engine.Config `yaml:"analysis"`
	Proxy    string        `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
//
// The analysis defaults are seeded before the file is parsed, so a key
// present in the file always wins, including explicit zeros (for example
// buy_rsi_threshold: 0 disables buy signals).
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Cache.Enabled = true
	cfg.Analysis = engine.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DATA_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("MARKET_DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("MARKET_DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Cache.SQLitePath = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Refresh.Cron = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	envInt("RSI_PERIOD", &cfg.Analysis.RSIPeriod)
	envInt("MACD_FAST", &cfg.Analysis.MACDFast)
	envInt("MACD_SLOW", &cfg.Analysis.MACDSlow)
	envInt("MACD_SIGNAL", &cfg.Analysis.MACDSignal)
	envFloat("BUY_RSI_THRESHOLD", &cfg.Analysis.BuyRSIThreshold)
	envFloat("SELL_RSI_THRESHOLD", &cfg.Analysis.SellRSIThreshold)

	applyDefaults(cfg)
	return cfg, nil
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = []string{"SPY"}
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Cache.SQLitePath == "" {
		cfg.Cache.SQLitePath = "data/signalscope.db"
	}
	if cfg.Refresh.Cron == "" {
		cfg.Refresh.Cron = "0 30 22 * * 1-5" // after US market close, weekdays
	}
	if cfg.Refresh.LookbackDays == 0 {
		cfg.Refresh.LookbackDays = 365
	}
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "mock":
	case "rest":
		if c.DataSource.BaseURL == "" {
			return fmt.Errorf("data_source.base_url is required for the rest provider")
		}
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	if c.Refresh.LookbackDays <= 0 {
		return fmt.Errorf("refresh.lookback_days must be positive")
	}
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis config: %w", err)
	}
	return nil
}
