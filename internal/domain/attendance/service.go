package attendance

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

// AttendanceService runs the declare -> location -> ledger flow
type AttendanceService interface {
	// DeclareAction records what the user is about to do
	DeclareAction(ctx context.Context, req DeclareActionRequest) (DeclareActionResponse, error)

	// ReportLocation consumes the pending action and writes the ledger.
	// Recoverable rejections are returned as an Outcome, storage failures as error.
	ReportLocation(ctx context.Context, req LocationReport) (Outcome, error)

	// ListAttendance returns ledger rows for the admin history view
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]AttendanceResponse, error)
}
