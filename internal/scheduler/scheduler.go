package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"SignalScope/internal/collector"
)

// Scheduler refreshes the bar cache for the configured symbols on a cron
// schedule, so interactive requests mostly hit warm data.
type Scheduler struct {
	Cron         *cron.Cron
	Collector    *collector.Collector
	Symbols      []string
	LookbackDays int
}

// NewScheduler creates a new Scheduler.
func NewScheduler(col *collector.Collector, symbols []string, lookbackDays int) *Scheduler {
	return &Scheduler{
		Cron:         cron.New(cron.WithSeconds()),
		Collector:    col,
		Symbols:      symbols,
		LookbackDays: lookbackDays,
	}
}

// Register schedules the refresh task.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] refresh scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] refresh scheduler stopped")
}

// RunNow executes the refresh task immediately (warm-up on startup).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -s.LookbackDays)
	log.Printf("[INFO] refreshing bar cache for %d symbols", len(s.Symbols))

	for _, symbol := range s.Symbols {
		if err := s.Collector.Prefetch(symbol, start, end); err != nil {
			log.Printf("[ERROR] prefetch %s: %v", symbol, err)
			continue
		}
		log.Printf("[INFO] prefetched %s (%d day lookback)", symbol, s.LookbackDays)
	}
}
