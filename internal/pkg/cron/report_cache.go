package cron

import (
	"context"
	"log/slog"
	"time"
)

type sweeper interface {
	Sweep(ctx context.Context) int
}

// ReportCacheJobs evicts tardiness reports nobody exported before they expired.
type ReportCacheJobs struct {
	cache  sweeper
	logger *slog.Logger
}

func NewReportCacheJobs(cache sweeper, logger *slog.Logger) *ReportCacheJobs {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportCacheJobs{cache: cache, logger: logger}
}

func (j *ReportCacheJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("sweep_report_cache", interval, j.SweepExpiredReports)
}

func (j *ReportCacheJobs) SweepExpiredReports(ctx context.Context) error {
	if removed := j.cache.Sweep(ctx); removed > 0 {
		j.logger.Info("Cron: Evicted expired reports", "count", removed)
	}
	return nil
}
