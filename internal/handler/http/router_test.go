package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance"
	attendancemock "github.com/cmlabs-hris/presence-bot-go/internal/domain/attendance/mock"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/employee"
	employeemock "github.com/cmlabs-hris/presence-bot-go/internal/domain/employee/mock"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
	reportmock "github.com/cmlabs-hris/presence-bot-go/internal/domain/report/mock"
	"github.com/cmlabs-hris/presence-bot-go/internal/handler/http/response"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/export"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/jwt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testAdminID = int64(1187398378)
	testUserID  = int64(42)
)

type routerDeps struct {
	handler    http.Handler
	jwt        jwt.Service
	employees  *employeemock.MockEmployeeService
	attendance *attendancemock.MockAttendanceService
	reports    *reportmock.MockReportService
}

func setupRouter(t *testing.T) *routerDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := &routerDeps{
		jwt:        jwt.NewJWTService("test-secret"),
		employees:  employeemock.NewMockEmployeeService(ctrl),
		attendance: attendancemock.NewMockAttendanceService(ctrl),
		reports:    reportmock.NewMockReportService(ctrl),
	}
	deps.handler = NewRouter(
		RouterConfig{Env: "test", AdminUserID: testAdminID, Gatherer: prometheus.NewRegistry()},
		deps.jwt,
		NewEmployeeHandler(deps.employees),
		NewAttendanceHandler(deps.attendance, time.UTC),
		NewReportHandler(deps.reports),
	)
	return deps
}

func (d *routerDeps) do(t *testing.T, method, path string, userID int64, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != 0 {
		token, err := d.jwt.GenerateToken(userID, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Heartbeat(t *testing.T) {
	d := setupRouter(t)

	rec := d.do(t, http.MethodGet, "/", 0, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Бот работает!", rec.Body.String())

	rec = d.do(t, http.MethodGet, "/metrics", 0, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	d := setupRouter(t)

	rec := d.do(t, http.MethodPost, "/api/v1/bot/actions", 0, map[string]string{"action": "arrive"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := d.jwt.GenerateToken(testUserID, -time.Hour)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bot/start", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec = httptest.NewRecorder()
	d.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AdminOnly(t *testing.T) {
	d := setupRouter(t)

	rec := d.do(t, http.MethodGet, "/api/v1/admin/reports/tardiness?days=7", testUserID, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEmployeeHandler_StartAndName(t *testing.T) {
	d := setupRouter(t)

	d.employees.EXPECT().Start(gomock.Any(), employee.StartRequest{UserID: testUserID}).
		Return(employee.ConversationResponse{State: employee.StateAwaitingName, Message: "Привет! Как тебя зовут?"}, nil)

	rec := d.do(t, http.MethodPost, "/api/v1/bot/start", testUserID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)

	d.employees.EXPECT().SubmitName(gomock.Any(), employee.SubmitNameRequest{UserID: testUserID, Name: "Мария"}).
		Return(employee.ConversationResponse{}, employee.ErrNameNotExpected)

	rec = d.do(t, http.MethodPost, "/api/v1/bot/name", testUserID, map[string]string{"name": " Мария "})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = d.do(t, http.MethodPost, "/api/v1/bot/name", testUserID, map[string]string{"name": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAttendanceHandler_DeclareAction(t *testing.T) {
	d := setupRouter(t)

	d.attendance.EXPECT().DeclareAction(gomock.Any(), attendance.DeclareActionRequest{UserID: testUserID, Action: "Пришел"}).
		Return(attendance.DeclareActionResponse{Action: "arrive", Message: "Отправь свою геопозицию."}, nil)

	rec := d.do(t, http.MethodPost, "/api/v1/bot/actions", testUserID, map[string]string{"action": "Пришел"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = d.do(t, http.MethodPost, "/api/v1/bot/actions", testUserID, map[string]string{"action": "jump"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	d.attendance.EXPECT().DeclareAction(gomock.Any(), gomock.Any()).
		Return(attendance.DeclareActionResponse{}, employee.ErrEmployeeNotFound)
	rec = d.do(t, http.MethodPost, "/api/v1/bot/actions", testUserID, map[string]string{"action": "leave"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceHandler_ReportLocation(t *testing.T) {
	d := setupRouter(t)

	at := time.Date(2024, 3, 1, 5, 6, 0, 0, time.UTC)
	d.attendance.EXPECT().ReportLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req attendance.LocationReport) (attendance.Outcome, error) {
			assert.Equal(t, testUserID, req.UserID)
			assert.True(t, req.Timestamp.Equal(at))
			return attendance.Outcome{Kind: attendance.OutcomeArrivalRejected, DistanceMeters: 1234.9}, nil
		})

	rec := d.do(t, http.MethodPost, "/api/v1/bot/locations", testUserID, map[string]interface{}{
		"latitude": 57.14, "longitude": 65.5, "timestamp": at.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data attendance.OutcomeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, attendance.OutcomeArrivalRejected, body.Data.Kind)
	assert.Equal(t, 1234, body.Data.DistanceMeters)
	assert.Equal(t, "❌ Вне офиса. Расстояние: 1234 м.", body.Data.Message)

	rec = d.do(t, http.MethodPost, "/api/v1/bot/locations", testUserID, map[string]interface{}{
		"latitude": 120.0, "longitude": 65.5,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestReportHandler_GenerateAndExport(t *testing.T) {
	d := setupRouter(t)

	d.reports.EXPECT().GenerateTardinessReport(gomock.Any(), report.TardinessReportRequest{RequesterID: testAdminID, WindowDays: 7}).
		Return(report.TardinessReport{WindowDays: 7, Rows: []report.ReportRow{}}, nil)

	rec := d.do(t, http.MethodGet, "/api/v1/admin/reports/tardiness?days=7", testAdminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = d.do(t, http.MethodGet, "/api/v1/admin/reports/tardiness?days=abc", testAdminID, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = d.do(t, http.MethodGet, "/api/v1/admin/reports/tardiness?days=-2", testAdminID, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	d.reports.EXPECT().ExportTardinessReport(gomock.Any(), testAdminID).
		Return("tardiness_2024-03-10.xlsx", []byte("xlsx-bytes"), nil)

	rec = d.do(t, http.MethodGet, "/api/v1/admin/reports/tardiness/export", testAdminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.True(t, strings.Contains(rec.Header().Get("Content-Disposition"), "tardiness_2024-03-10.xlsx"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())

	d.reports.EXPECT().ExportTardinessReport(gomock.Any(), testAdminID).
		Return("", nil, report.ErrReportNotFound)

	rec = d.do(t, http.MethodGet, "/api/v1/admin/reports/tardiness/export", testAdminID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandlers_AttendancesAndEmployees(t *testing.T) {
	d := setupRouter(t)

	uid := int64(9)
	date := "2024-03-01"
	d.attendance.EXPECT().ListAttendance(gomock.Any(), attendance.AttendanceFilter{UserID: &uid, Date: &date, Limit: 100}).
		Return([]attendance.AttendanceResponse{{ID: "a1", UserID: 9, Date: date}}, nil)

	rec := d.do(t, http.MethodGet, "/api/v1/admin/attendances?user_id=9&date=2024-03-01", testAdminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(1), resp.Meta.TotalItems)

	d.employees.EXPECT().SetExpectedStart(gomock.Any(), employee.UpdateExpectedStartRequest{UserID: 9, ExpectedStart: "09:30"}).
		Return(employee.EmployeeResponse{UserID: 9, ExpectedStartTime: "09:30"}, nil)

	rec = d.do(t, http.MethodPut, "/api/v1/admin/employees/9/expected-start", testAdminID,
		map[string]string{"expected_start_time": "09:30"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = d.do(t, http.MethodPut, "/api/v1/admin/employees/abc/expected-start", testAdminID,
		map[string]string{"expected_start_time": "09:30"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	d.employees.EXPECT().List(gomock.Any()).Return([]employee.EmployeeResponse{{UserID: 1}, {UserID: 2}}, nil)
	rec = d.do(t, http.MethodGet, "/api/v1/admin/employees", testAdminID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), decode(t, rec).Meta.TotalItems)
}
