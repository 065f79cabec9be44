package employee

import "context"

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// EmployeeService drives the registration dialogue that precedes the main menu.
type EmployeeService interface {
	// Start moves the user to the main menu, or asks for a name when unknown
	Start(ctx context.Context, req StartRequest) (ConversationResponse, error)

	// SubmitName registers the user and finishes the dialogue
	SubmitName(ctx context.Context, req SubmitNameRequest) (ConversationResponse, error)

	SetExpectedStart(ctx context.Context, req UpdateExpectedStartRequest) (EmployeeResponse, error)

	List(ctx context.Context) ([]EmployeeResponse, error)
}
