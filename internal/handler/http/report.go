package http

import (
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/auth"
	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
	"github.com/cmlabs-hris/presence-bot-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/presence-bot-go/internal/handler/http/response"
	"github.com/cmlabs-hris/presence-bot-go/internal/pkg/export"
)

type ReportHandler interface {
	// Tardiness report over the last N days, kept for export
	GetTardinessReport(w http.ResponseWriter, r *http.Request)

	// Last generated tardiness report as xlsx
	ExportTardinessReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetTardinessReport handles GET /admin/reports/tardiness?days=N
func (h *reportHandlerImpl) GetTardinessReport(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "invalid days parameter", nil)
			return
		}
		days = n
	}

	req := report.TardinessReportRequest{
		RequesterID: requesterID,
		WindowDays:  days,
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.GenerateTardinessReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportTardinessReport handles GET /admin/reports/tardiness/export
func (h *reportHandlerImpl) ExportTardinessReport(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filename, content, err := h.reportService.ExportTardinessReport(r.Context(), requesterID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, filename, export.ContentTypeXLSX, content)
}
