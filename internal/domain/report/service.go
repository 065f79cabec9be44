package report

import "context"

//go:generate mockgen -source=service.go -destination=mock/service_mock.go -package=mock

type ReportService interface {
	// GenerateTardinessReport aggregates late arrivals and keeps the result
	// for the requester until it is exported
	GenerateTardinessReport(ctx context.Context, req TardinessReportRequest) (TardinessReport, error)

	// ExportTardinessReport consumes the requester's last report as an xlsx workbook
	ExportTardinessReport(ctx context.Context, requesterID int64) (filename string, content []byte, err error)
}
