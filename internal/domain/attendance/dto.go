package attendance

import (
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/action"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/validator"
)

type DeclareActionRequest struct {
	UserID int64  `json:"-"`
	Action string `json:"action"`
}

func (r *DeclareActionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Action) {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action is required",
		})
	} else if _, err := action.Parse(r.Action); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: arrive, leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DeclareActionResponse struct {
	Action  action.Action `json:"action"`
	Message string        `json:"message"`
}

// LocationReport is one location message from the chat.
type LocationReport struct {
	UserID    int64     `json:"-"`
	Username  string    `json:"username"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

func (r *LocationReport) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OutcomeResponse struct {
	Kind           OutcomeKind         `json:"kind"`
	Message        string              `json:"message"`
	DistanceMeters int                 `json:"distance_meters"`
	DelayMinutes   *int                `json:"delay_minutes,omitempty"`
	Reason         string              `json:"reason,omitempty"`
	Attendance     *AttendanceResponse `json:"attendance,omitempty"`
}

type AttendanceResponse struct {
	ID       string   `json:"id"`
	UserID   int64    `json:"user_id"`
	Username string   `json:"username"`
	Date     string   `json:"date"`
	TimeIn   string   `json:"time_in"`
	TimeOut  *string  `json:"time_out,omitempty"`
	LatIn    float64  `json:"lat_in"`
	LonIn    float64  `json:"lon_in"`
	LatOut   *float64 `json:"lat_out,omitempty"`
	LonOut   *float64 `json:"lon_out,omitempty"`
}

type AttendanceFilter struct {
	UserID *int64  `json:"user_id,omitempty"`
	Date   *string `json:"date,omitempty"` // YYYY-MM-DD
	Limit  int     `json:"limit"`
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 100
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
