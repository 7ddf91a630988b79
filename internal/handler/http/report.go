package http

import (
	"net/http"
	"strconv"

	"github.com/shiftwise/attendance-backend-go/internal/domain/report"
	"github.com/shiftwise/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Salary(w http.ResponseWriter, r *http.Request)
	Payroll(w http.ResponseWriter, r *http.Request)
	Analytics(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// Salary implements ReportHandler.
func (h *ReportHandlerImpl) Salary(w http.ResponseWriter, r *http.Request) {
	filter := report.SalaryFilter{}

	if workerID := r.URL.Query().Get("worker_id"); workerID != "" {
		filter.WorkerID = &workerID
	}
	if monthStr := r.URL.Query().Get("month"); monthStr != "" {
		month, err := strconv.Atoi(monthStr)
		if err != nil || month < 1 || month > 12 {
			response.BadRequest(w, "month must be between 1 and 12", nil)
			return
		}
		filter.Month = &month
	}
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		filter.Year = &year
	}

	resp, err := h.reportService.SalarySummary(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Payroll implements ReportHandler.
func (h *ReportHandlerImpl) Payroll(w http.ResponseWriter, r *http.Request) {
	var workerID *string
	if id := r.URL.Query().Get("worker_id"); id != "" {
		workerID = &id
	}

	resp, err := h.reportService.Payroll(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Analytics implements ReportHandler.
func (h *ReportHandlerImpl) Analytics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.reportService.Analytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
