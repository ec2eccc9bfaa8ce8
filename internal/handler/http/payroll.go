package http

import (
	"net/http"

	"github.com/cmlabs-hris/dayflow-hr-go/internal/domain/payroll"
	"github.com/cmlabs-hris/dayflow-hr-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetMyPayroll(w http.ResponseWriter, r *http.Request)
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetMyPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) GetMyPayroll(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.MyPayroll(r.Context(), getEmployeeIDFromContext(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOverview implements PayrollHandler.
func (h *payrollHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := payroll.PayrollFilter{
		Search:     query.Get("search"),
		Department: query.Get("department"),
		Page:       getIntQueryParam(r, "page", 1),
		Limit:      getIntQueryParam(r, "limit", 0),
	}

	result, err := h.payrollService.Overview(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
