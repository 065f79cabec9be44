package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/action"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/tardiness"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/database"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/geo"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/keylock"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/metrics"
	tardinessservice "github.com/cmlabs-hris/presence-bot-go/internal/service/tardiness"
)

// MessageSendLocation is the reply to a declared action.
const MessageSendLocation = "Отправь свою геопозицию."

type AttendanceServiceImpl struct {
	tx             database.Transactor
	actionRepo     action.PendingActionRepository
	attendanceRepo attendance.AttendanceRepository
	tardinessRepo  tardiness.TardinessRepository
	employeeRepo   employee.EmployeeRepository
	fence          geo.Fence
	evaluator      *tardinessservice.Evaluator
	locks          *keylock.KeyLock
	metrics        *metrics.Metrics
	now            func() time.Time
}

func NewAttendanceService(
	tx database.Transactor,
	actionRepo action.PendingActionRepository,
	attendanceRepo attendance.AttendanceRepository,
	tardinessRepo tardiness.TardinessRepository,
	employeeRepo employee.EmployeeRepository,
	fence geo.Fence,
	evaluator *tardinessservice.Evaluator,
	m *metrics.Metrics,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:             tx,
		actionRepo:     actionRepo,
		attendanceRepo: attendanceRepo,
		tardinessRepo:  tardinessRepo,
		employeeRepo:   employeeRepo,
		fence:          fence,
		evaluator:      evaluator,
		locks:          keylock.New(),
		metrics:        m,
		now:            time.Now,
	}
}

// DeclareAction implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeclareAction(ctx context.Context, req attendance.DeclareActionRequest) (attendance.DeclareActionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.DeclareActionResponse{}, err
	}

	a, err := action.Parse(req.Action)
	if err != nil {
		return attendance.DeclareActionResponse{}, err
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	if _, err := s.employeeRepo.GetByUserID(ctx, req.UserID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.DeclareActionResponse{}, employee.ErrEmployeeNotFound
		}
		return attendance.DeclareActionResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if err := s.actionRepo.Declare(ctx, req.UserID, a); err != nil {
		return attendance.DeclareActionResponse{}, fmt.Errorf("failed to declare action: %w", err)
	}

	s.metrics.ObserveDeclared(string(a))

	return attendance.DeclareActionResponse{
		Action:  a,
		Message: MessageSendLocation,
	}, nil
}

// ReportLocation implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ReportLocation(ctx context.Context, req attendance.LocationReport) (attendance.Outcome, error) {
	if err := req.Validate(); err != nil {
		return attendance.Outcome{}, err
	}

	unlock := s.locks.Lock(req.UserID)
	defer unlock()

	var outcome attendance.Outcome
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		a, ok, err := s.actionRepo.Consume(ctx, req.UserID)
		if err != nil {
			return fmt.Errorf("failed to consume pending action: %w", err)
		}
		if !ok {
			outcome = attendance.Outcome{Kind: attendance.OutcomeNoPendingAction}
			return nil
		}

		emp, err := s.employeeRepo.GetByUserID(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to get employee: %w", err)
		}

		at := req.Timestamp
		if at.IsZero() {
			at = s.now()
		}
		at = at.In(s.evaluator.Location())

		switch a {
		case action.Arrive:
			outcome, err = s.arrive(ctx, emp, req, at)
		case action.Leave:
			outcome, err = s.leave(ctx, req, at)
		default:
			return fmt.Errorf("pending action %q: %w", a, action.ErrUnknownAction)
		}
		return err
	})
	if err != nil {
		return attendance.Outcome{}, err
	}

	s.observe(outcome)
	slog.Debug("location processed",
		"user_id", req.UserID,
		"outcome", outcome.Kind,
		"distance_meters", int(outcome.DistanceMeters),
	)

	return outcome, nil
}

func (s *AttendanceServiceImpl) arrive(ctx context.Context, emp employee.Employee, req attendance.LocationReport, at time.Time) (attendance.Outcome, error) {
	distance, ok := s.fence.Contains(geo.Point{Latitude: req.Latitude, Longitude: req.Longitude})
	if !ok {
		return attendance.Outcome{Kind: attendance.OutcomeArrivalRejected, DistanceMeters: distance}, nil
	}

	username := req.Username
	if username == "" {
		username = emp.Name
	}

	att, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		UserID:   req.UserID,
		Username: username,
		Date:     localDate(at),
		TimeIn:   at,
		LatIn:    req.Latitude,
		LonIn:    req.Longitude,
	})
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.Outcome{Kind: attendance.OutcomeArrivalDuplicate, DistanceMeters: distance}, nil
		}
		return attendance.Outcome{}, fmt.Errorf("failed to record arrival: %w", err)
	}

	delay, late := s.evaluator.Evaluate(emp.ExpectedStartTime, at)
	if !late {
		return attendance.Outcome{
			Kind:           attendance.OutcomeArrivalAccepted,
			DistanceMeters: distance,
			Attendance:     &att,
		}, nil
	}

	if _, err := s.tardinessRepo.Create(ctx, tardiness.TardinessEvent{
		UserID:       req.UserID,
		AttendanceID: att.ID,
		Date:         localDate(at),
		TimeIn:       at,
		DelayMinutes: delay,
	}); err != nil {
		return attendance.Outcome{}, fmt.Errorf("failed to record tardiness: %w", err)
	}

	return attendance.Outcome{
		Kind:           attendance.OutcomeArrivalLate,
		DistanceMeters: distance,
		DelayMinutes:   delay,
		Attendance:     &att,
	}, nil
}

func (s *AttendanceServiceImpl) leave(ctx context.Context, req attendance.LocationReport, at time.Time) (attendance.Outcome, error) {
	// departures are not gated on distance; it is only reported
	distance, _ := s.fence.Contains(geo.Point{Latitude: req.Latitude, Longitude: req.Longitude})

	open, err := s.attendanceRepo.GetOpen(ctx, req.UserID, localDate(at))
	if err != nil {
		if errors.Is(err, attendance.ErrNoOpenArrival) {
			return attendance.Outcome{
				Kind:           attendance.OutcomeDepartureRejected,
				DistanceMeters: distance,
				Reason:         attendance.ReasonNoOpenArrival,
			}, nil
		}
		return attendance.Outcome{}, fmt.Errorf("failed to get open arrival: %w", err)
	}

	closed, err := s.attendanceRepo.Close(ctx, open.ID, at, req.Latitude, req.Longitude)
	if err != nil {
		return attendance.Outcome{}, fmt.Errorf("failed to record departure: %w", err)
	}

	return attendance.Outcome{
		Kind:           attendance.OutcomeDepartureAccepted,
		DistanceMeters: distance,
		Attendance:     &closed,
	}, nil
}

func (s *AttendanceServiceImpl) observe(o attendance.Outcome) {
	s.metrics.ObserveOutcome(string(o.Kind))
	switch o.Kind {
	case attendance.OutcomeArrivalAccepted, attendance.OutcomeArrivalLate, attendance.OutcomeArrivalRejected:
		s.metrics.ObserveArrivalDistance(o.DistanceMeters)
	}
	if o.Kind == attendance.OutcomeArrivalLate {
		s.metrics.ObserveDelay(o.DelayMinutes)
	}
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, ToAttendanceResponse(att, s.evaluator.Location()))
	}
	return responses, nil
}

// ToAttendanceResponse renders times in loc.
func ToAttendanceResponse(att attendance.Attendance, loc *time.Location) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:       att.ID,
		UserID:   att.UserID,
		Username: att.Username,
		Date:     att.Date.Format("2006-01-02"),
		TimeIn:   att.TimeIn.In(loc).Format(time.RFC3339),
		TimeOut:  timePtrToString(att.TimeOut, loc),
		LatIn:    att.LatIn,
		LonIn:    att.LonIn,
		LatOut:   att.LatOut,
		LonOut:   att.LonOut,
	}
}

// ToOutcomeResponse converts an outcome into its JSON shape.
func ToOutcomeResponse(o attendance.Outcome, loc *time.Location) attendance.OutcomeResponse {
	resp := attendance.OutcomeResponse{
		Kind:           o.Kind,
		Message:        o.Message(),
		DistanceMeters: int(o.DistanceMeters),
		Reason:         o.Reason,
	}
	if o.Kind == attendance.OutcomeArrivalLate {
		delay := o.DelayMinutes
		resp.DelayMinutes = &delay
	}
	if o.Attendance != nil {
		att := ToAttendanceResponse(*o.Attendance, loc)
		resp.Attendance = &att
	}
	return resp
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time, loc *time.Location) *string {
	if t == nil {
		return nil
	}
	format := t.In(loc).Format(time.RFC3339)
	return &format
}

// localDate truncates t to midnight of its calendar date in t's own zone.
func localDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
