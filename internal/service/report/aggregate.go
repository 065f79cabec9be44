package report

import (
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
)

const dateLayout = "2006-01-02"

// Window is the inclusive range of calendar dates a report covers.
// Days == 0 covers today only.
type Window struct {
	Days int
	From string
	To   string
}

// NewWindow ends the window on the calendar date of now in loc.
func NewWindow(now time.Time, loc *time.Location, days int) Window {
	today := now.In(loc)
	return Window{
		Days: days,
		From: today.AddDate(0, 0, -days).Format(dateLayout),
		To:   today.Format(dateLayout),
	}
}

// Contains compares calendar dates, so the zone of date only matters for
// which day it names.
func (w Window) Contains(date time.Time) bool {
	d := date.Format(dateLayout)
	return d >= w.From && d <= w.To
}

// Aggregate builds one row per employee, in the order given, from the events
// that fall inside w. Employees without events get a zero count and no mean.
func Aggregate(employees []employee.Employee, events []tardiness.TardinessEvent, w Window) []report.ReportRow {
	type tally struct {
		count int
		total int
	}
	tallies := make(map[int64]*tally)
	for _, e := range events {
		if !w.Contains(e.Date) {
			continue
		}
		t, ok := tallies[e.UserID]
		if !ok {
			t = &tally{}
			tallies[e.UserID] = t
		}
		t.count++
		t.total += e.DelayMinutes
	}

	rows := make([]report.ReportRow, 0, len(employees))
	for _, emp := range employees {
		row := report.ReportRow{
			UserID:       emp.UserID,
			EmployeeName: emp.Name,
		}
		if t, ok := tallies[emp.UserID]; ok && t.count > 0 {
			mean := t.total / t.count
			row.LateCount = t.count
			row.MeanDelayMinutes = &mean
		}
		rows = append(rows, row)
	}
	return rows
}
