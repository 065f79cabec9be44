package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/cache"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/export"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

type ReportServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	tardinessRepo tardiness.TardinessRepository
	cache         cache.ReportCache
	metrics       *metrics.Metrics
	loc           *time.Location
	now           func() time.Time
	sf            *singleflight.Group
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	tardinessRepo tardiness.TardinessRepository,
	reportCache cache.ReportCache,
	m *metrics.Metrics,
	loc *time.Location,
) report.ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportServiceImpl{
		employeeRepo:  employeeRepo,
		tardinessRepo: tardinessRepo,
		cache:         reportCache,
		metrics:       m,
		loc:           loc,
		now:           time.Now,
		sf:            &singleflight.Group{},
	}
}

// GenerateTardinessReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateTardinessReport(ctx context.Context, req report.TardinessReportRequest) (report.TardinessReport, error) {
	if err := req.Validate(); err != nil {
		return report.TardinessReport{}, err
	}

	now := s.now().In(s.loc)
	w := NewWindow(now, s.loc, req.WindowDays)

	// identical windows requested at the same time share one aggregation
	key := fmt.Sprintf("tardiness:%s:%s", w.From, w.To)
	v, err, shared := s.sf.Do(key, func() (interface{}, error) {
		return s.aggregate(ctx, w)
	})
	if err != nil {
		return report.TardinessReport{}, err
	}

	rows := v.([]report.ReportRow)
	if shared {
		rows = append([]report.ReportRow(nil), rows...)
	}

	r := report.TardinessReport{
		WindowDays:  req.WindowDays,
		PeriodStart: w.From,
		PeriodEnd:   w.To,
		GeneratedAt: now.Format(time.RFC3339),
		Rows:        rows,
	}

	if err := s.cache.Put(ctx, req.RequesterID, r); err != nil {
		return report.TardinessReport{}, fmt.Errorf("failed to cache report: %w", err)
	}

	s.metrics.IncrementReports()
	slog.Info("tardiness report generated",
		"requester_id", req.RequesterID,
		"window_days", req.WindowDays,
		"rows", len(rows),
	)

	return r, nil
}

func (s *ReportServiceImpl) aggregate(ctx context.Context, w Window) ([]report.ReportRow, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	from, err := time.ParseInLocation(dateLayout, w.From, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}
	to, err := time.ParseInLocation(dateLayout, w.To, s.loc)
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}

	events, err := s.tardinessRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list tardiness events: %w", err)
	}

	return Aggregate(employees, events, w), nil
}

// ExportTardinessReport implements report.ReportService.
func (s *ReportServiceImpl) ExportTardinessReport(ctx context.Context, requesterID int64) (string, []byte, error) {
	r, err := s.cache.Take(ctx, requesterID)
	if err != nil {
		return "", nil, err
	}

	content, err := export.TardinessWorkbook(r)
	if err != nil {
		return "", nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	return export.TardinessFilename(r), content, nil
}
