package report

import (
	"fmt"

	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/validator"
)

// MaxWindowDays bounds how far back a report may look.
const MaxWindowDays = 366

type TardinessReportRequest struct {
	RequesterID int64 `json:"-"`
	WindowDays  int   `json:"days"`
}

func (r *TardinessReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WindowDays < 0 || r.WindowDays > MaxWindowDays {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: fmt.Sprintf("days must be between 0 and %d", MaxWindowDays),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportRow is the per-employee line of a tardiness report.
// MeanDelayMinutes is nil when the employee has no late events in the window.
type ReportRow struct {
	UserID           int64  `json:"user_id"`
	EmployeeName     string `json:"employee_name"`
	LateCount        int    `json:"late_count"`
	MeanDelayMinutes *int   `json:"mean_delay_minutes"`
}

type TardinessReport struct {
	WindowDays  int         `json:"window_days"`
	PeriodStart string      `json:"period_start"`
	PeriodEnd   string      `json:"period_end"`
	GeneratedAt string      `json:"generated_at"`
	Rows        []ReportRow `json:"rows"`
}
