package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/auth"
	"github.com/cmlabs-hris/presence-bot-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/presence-bot-go/internal/handler/http/response"
	attendanceservice "github.com/cmlabs-hris/presence-bot-go/internal/service/attendance"
)

type AttendanceHandler interface {
	DeclareAction(w http.ResponseWriter, r *http.Request)
	ReportLocation(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	loc               *time.Location
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, loc *time.Location) AttendanceHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		loc:               loc,
	}
}

// DeclareAction handles POST /bot/actions
func (h *attendanceHandlerImpl) DeclareAction(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req attendance.DeclareActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.DeclareAction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ReportLocation handles POST /bot/locations
func (h *attendanceHandlerImpl) ReportLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req attendance.LocationReport
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode location", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	outcome, err := h.attendanceService.ReportLocation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// rejected outcomes are still a processed report, so they answer 200
	response.Success(w, attendanceservice.ToOutcomeResponse(outcome, h.loc))
}

// List handles GET /admin/attendances
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter attendance.AttendanceFilter
	if v := query.Get("user_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "invalid user_id parameter", nil)
			return
		}
		filter.UserID = &id
	}
	if v := query.Get("date"); v != "" {
		filter.Date = &v
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "invalid limit parameter", nil)
			return
		}
		filter.Limit = limit
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, &response.Meta{
		Limit:      filter.Limit,
		TotalItems: int64(len(result)),
	})
}
