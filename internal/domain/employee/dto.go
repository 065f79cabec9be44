package employee

import (
	"strings"

	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/validator"
)

// MainMenu holds the two action buttons shown once a user is registered.
var MainMenu = []string{"Пришел", "Ушел"}

type StartRequest struct {
	UserID     int64 `json:"-"`
	Reregister bool  `json:"reregister"`
}

type SubmitNameRequest struct {
	UserID int64  `json:"-"`
	Name   string `json:"name"`
}

func (r *SubmitNameRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len([]rune(r.Name)) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ConversationResponse struct {
	State   ConversationState `json:"state"`
	Message string            `json:"message"`
	Menu    []string          `json:"menu,omitempty"`
}

type UpdateExpectedStartRequest struct {
	UserID        int64  `json:"-"`
	ExpectedStart string `json:"expected_start_time"`
}

func (r *UpdateExpectedStartRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.UserID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id must be a positive number",
		})
	}

	if _, ok := validator.IsValidClock(r.ExpectedStart); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expected_start_time",
			Message: "expected_start_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	UserID            int64  `json:"user_id"`
	Name              string `json:"name"`
	ExpectedStartTime string `json:"expected_start_time"`
	RegisteredAt      string `json:"registered_at"`
}
