package tardiness

import (
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
)

// Evaluator decides whether an arrival is late. Expected start and arrival
// are both placed in one configured zone before they are compared.
type Evaluator struct {
	loc              *time.Location
	thresholdMinutes int
	defaultStart     string
}

func NewEvaluator(loc *time.Location, thresholdMinutes int, defaultStart string) *Evaluator {
	if loc == nil {
		loc = time.UTC
	}
	if _, err := time.Parse("15:04", defaultStart); err != nil {
		defaultStart = employee.DefaultExpectedStartTime
	}
	return &Evaluator{
		loc:              loc,
		thresholdMinutes: thresholdMinutes,
		defaultStart:     defaultStart,
	}
}

// ExpectedStart returns the instant raw ("HH:MM") falls on for the calendar
// date of day. A malformed raw value falls back to the default start.
func (e *Evaluator) ExpectedStart(raw string, day time.Time) time.Time {
	clock, err := time.Parse("15:04", raw)
	if err != nil {
		clock, _ = time.Parse("15:04", e.defaultStart)
	}

	local := day.In(e.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), clock.Hour(), clock.Minute(), 0, 0, e.loc)
}

// Delay is the whole number of minutes between the expected start and the
// arrival, truncated toward zero. Early arrivals give a negative delay.
func (e *Evaluator) Delay(raw string, arrival time.Time) int {
	return int(arrival.Sub(e.ExpectedStart(raw, arrival)) / time.Minute)
}

// Evaluate returns the delay and whether it exceeds the late threshold
func (e *Evaluator) Evaluate(expectedStart string, arrival time.Time) (int, bool) {
	delay := e.Delay(expectedStart, arrival)
	return delay, delay > e.thresholdMinutes
}

// Location is the zone dates and delays are computed in
func (e *Evaluator) Location() *time.Location {
	return e.loc
}
