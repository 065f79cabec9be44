package employee

import "time"

// DefaultExpectedStartTime is assigned to newly registered employees.
const DefaultExpectedStartTime = "10:00"

type Employee struct {
	UserID            int64
	Name              string
	ExpectedStartTime string
	RegisteredAt      time.Time
	UpdatedAt         time.Time
}

// ConversationState tracks where a user is in the registration dialogue.
type ConversationState string

const (
	StateAwaitingName ConversationState = "awaiting_name"
	StateReady        ConversationState = "ready"
)
