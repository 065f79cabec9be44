package employee

import "context"

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

type EmployeeRepository interface {
	// GetByUserID returns ErrEmployeeNotFound when the user never registered
	GetByUserID(ctx context.Context, userID int64) (Employee, error)

	// Upsert creates the employee or overwrites the name of an existing one.
	// The expected start time of an existing employee is preserved.
	Upsert(ctx context.Context, emp Employee) (Employee, error)

	UpdateExpectedStart(ctx context.Context, userID int64, expectedStart string) error

	// List returns every employee in registration order
	List(ctx context.Context) ([]Employee, error)
}

type ConversationRepository interface {
	// GetState returns an empty state for users who never started a conversation
	GetState(ctx context.Context, userID int64) (ConversationState, error)
	SetState(ctx context.Context, userID int64, state ConversationState) error
}
