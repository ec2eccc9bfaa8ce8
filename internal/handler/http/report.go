package http

import (
	"net/http"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/report"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/handler/http/response"
)

// ReportHandler defines the interface for report HTTP handlers
type ReportHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetReport implements ReportHandler.
func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Generate(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
