package attendance

import (
	"context"
	"time"
)

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

// AttendanceRepository is the append/update ledger of daily attendance rows.
type AttendanceRepository interface {
	// Create inserts a new open record. It returns ErrAlreadyCheckedIn when
	// the user already has an open record for the same date.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetOpen returns ErrNoOpenArrival when the user has no open record on date
	GetOpen(ctx context.Context, userID int64, date time.Time) (Attendance, error)

	// Close sets the departure fields of an open record
	Close(ctx context.Context, id string, timeOut time.Time, lat, lon float64) (Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
}
