package tardiness

import "time"

// TardinessEvent is written once per late arrival and never changed.
type TardinessEvent struct {
	ID           string
	UserID       int64
	AttendanceID string
	Date         time.Time
	TimeIn       time.Time
	DelayMinutes int
	CreatedAt    time.Time
}
