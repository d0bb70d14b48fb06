package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"SignalScope/internal/cache"
	"SignalScope/internal/collector"
	"SignalScope/internal/config"
	"SignalScope/internal/engine"
	"SignalScope/internal/scheduler"
	"SignalScope/internal/server"
)

const version = "1.0.0"

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "signalscope",
		Short: "SignalScope - RSI/MACD indicator and signal engine",
		Long: `SignalScope computes Wilder RSI, MACD and moving-average overlays over
daily price history and classifies each bar as BUY, SELL or HOLD.
It can run as a JSON API server or analyze a single symbol from the CLI.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; real deployments use the environment directly.
			_ = godotenv.Load()
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().String("config", "", "config file path (default configs/config.yaml)")

	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the analysis API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze SYMBOL",
		Short: "Run a one-shot analysis for a symbol and print the signals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			start, _ := cmd.Flags().GetString("start")
			end, _ := cmd.Flags().GetString("end")
			tail, _ := cmd.Flags().GetInt("tail")
			return runAnalyze(os.Stdout, cfg, args[0], start, end, tail)
		},
	}
	cmd.Flags().String("start", "", "start date YYYY-MM-DD (default one year back)")
	cmd.Flags().String("end", "", "end date YYYY-MM-DD (default today)")
	cmd.Flags().Int("tail", 10, "number of trailing rows to print")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("SignalScope v%s\n", version)
		},
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = "configs/config.yaml"
		if v := os.Getenv("CONFIG_PATH"); v != "" {
			path = v
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// newCollector builds the fetcher and bar cache described by cfg.
func newCollector(cfg *config.Config) (*collector.Collector, func(), error) {
	var fetcher collector.Fetcher
	switch cfg.DataSource.Provider {
	case "rest":
		fetcher = collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	case "mock":
		fetcher = &collector.MockFetcher{}
	default:
		fetcher = collector.NewYahooFetcher()
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	var store cache.Store = cache.NewNoopStore()
	closeStore := func() {}
	if cfg.Cache.Enabled {
		ss, err := cache.NewSQLiteStore(cfg.Cache.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite bar cache failed, caching disabled: %v", err)
		} else {
			store = ss
			closeStore = func() { ss.Close() }
		}
	}

	return collector.NewCollector(fetcher, store), closeStore, nil
}

func runServe(cfg *config.Config) error {
	log.Println("[INFO] SignalScope starting...")

	col, closeStore, err := newCollector(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	sched := scheduler.NewScheduler(col, cfg.Symbols, cfg.Refresh.LookbackDays)
	if err := sched.Register(cfg.Refresh.Cron); err != nil {
		return fmt.Errorf("register cron tasks: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, warming bar cache now")
		go sched.RunNow()
	}

	srv := server.NewServer(cfg, col)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Printf("[INFO] signal %s received, stopping...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Println("[INFO] SignalScope stopped")
	return nil
}

func runAnalyze(out io.Writer, cfg *config.Config, symbol, startStr, endStr string, tail int) error {
	end := time.Now().UTC()
	if endStr != "" {
		var err error
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			return fmt.Errorf("bad end date %q, want YYYY-MM-DD", endStr)
		}
	}
	start := end.AddDate(0, 0, -cfg.Refresh.LookbackDays)
	if startStr != "" {
		var err error
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return fmt.Errorf("bad start date %q, want YYYY-MM-DD", startStr)
		}
	}

	col, closeStore, err := newCollector(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	res, err := col.FetchSeries(symbol, start, end)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", symbol, err)
	}

	analysis, err := engine.Analyze(res.Series, cfg.Analysis)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", symbol, err)
	}
	analysis.Bars = res.Bars

	printAnalysis(out, analysis, tail)
	return nil
}
