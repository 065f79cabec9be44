package attendance

import (
	"time"
)

type Attendance struct {
	ID        string
	UserID    int64
	Username  string
	Date      time.Time
	TimeIn    time.Time
	TimeOut   *time.Time
	LatIn     float64
	LonIn     float64
	LatOut    *float64
	LonOut    *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen reports whether the departure has not been recorded yet.
func (a Attendance) IsOpen() bool {
	return a.TimeOut == nil
}
