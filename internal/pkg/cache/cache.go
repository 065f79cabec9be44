package cache

import (
	"context"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
)

// ReportCache keeps the last tardiness report of each requester until it is
// exported. A new report for the same requester replaces the old one.
type ReportCache interface {
	Put(ctx context.Context, requesterID int64, r report.TardinessReport) error

	// Take returns and removes the cached report, or report.ErrReportNotFound
	Take(ctx context.Context, requesterID int64) (report.TardinessReport, error)
}
