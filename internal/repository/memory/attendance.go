package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type attendanceRepository struct {
	store *Store
	now   func() time.Time
}

func NewAttendanceRepository(s *Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: s, now: time.Now}
}

func sameDate(a, b time.Time) bool {
	return a.Format(dateLayout) == b.Format(dateLayout)
}

func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.attendances {
		if existing.UserID == att.UserID && existing.IsOpen() && sameDate(existing.Date, att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}

	if att.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return attendance.Attendance{}, fmt.Errorf("failed to generate attendance id: %w", err)
		}
		att.ID = id.String()
	}
	now := r.now()
	att.TimeOut, att.LatOut, att.LonOut = nil, nil, nil
	att.CreatedAt = now
	att.UpdatedAt = now

	keep(ctx, r.store.attendances, att.ID)
	keep(ctx, r.store.recordAt, att.ID)
	r.store.attendances[att.ID] = att
	r.store.recordAt[att.ID] = r.store.next()
	return att, nil
}

func (r *attendanceRepository) GetOpen(ctx context.Context, userID int64, date time.Time) (attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, att := range r.store.attendances {
		if att.UserID == userID && att.IsOpen() && sameDate(att.Date, date) {
			return att, nil
		}
	}
	return attendance.Attendance{}, attendance.ErrNoOpenArrival
}

func (r *attendanceRepository) Close(ctx context.Context, id string, timeOut time.Time, lat, lon float64) (attendance.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	att, ok := r.store.attendances[id]
	if !ok || !att.IsOpen() {
		return attendance.Attendance{}, attendance.ErrNoOpenArrival
	}
	att.TimeOut = &timeOut
	att.LatOut = &lat
	att.LonOut = &lon
	att.UpdatedAt = r.now()
	keep(ctx, r.store.attendances, id)
	r.store.attendances[id] = att
	return att, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []attendance.Attendance
	for _, att := range r.store.attendances {
		if filter.UserID != nil && att.UserID != *filter.UserID {
			continue
		}
		if filter.Date != nil && *filter.Date != "" && att.Date.Format(dateLayout) != *filter.Date {
			continue
		}
		records = append(records, att)
	}

	// newest first, like the SQL ORDER BY date DESC, time_in DESC
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].TimeIn.After(records[j].TimeIn)
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

type tardinessRepository struct {
	store *Store
	now   func() time.Time
}

func NewTardinessRepository(s *Store) tardiness.TardinessRepository {
	return &tardinessRepository{store: s, now: time.Now}
}

func (r *tardinessRepository) Create(ctx context.Context, event tardiness.TardinessEvent) (tardiness.TardinessEvent, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if event.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return tardiness.TardinessEvent{}, fmt.Errorf("failed to generate tardiness id: %w", err)
		}
		event.ID = id.String()
	}
	event.CreatedAt = r.now()

	keep(ctx, r.store.tardiness, event.ID)
	keep(ctx, r.store.recordAt, event.ID)
	r.store.tardiness[event.ID] = event
	r.store.recordAt[event.ID] = r.store.next()
	return event, nil
}

func (r *tardinessRepository) ListBetween(ctx context.Context, from, to time.Time) ([]tardiness.TardinessEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	lo, hi := from.Format(dateLayout), to.Format(dateLayout)
	var events []tardiness.TardinessEvent
	for _, e := range r.store.tardiness {
		d := e.Date.Format(dateLayout)
		if d >= lo && d <= hi {
			events = append(events, e)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return r.store.recordAt[events[i].ID] < r.store.recordAt[events[j].ID]
	})
	return events, nil
}
