package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	SetBaseSalary(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{
		payrollService: payrollService,
	}
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourcePayroll, access.ActionViewOthers, false); !ok {
		return
	}

	result, err := h.payrollService.ListSalaries(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	action, isSelf := viewAction(middleware.Subject(r), employeeID)
	if _, ok := authorize(w, r, access.ResourcePayroll, action, isSelf); !ok {
		return
	}

	result, err := h.payrollService.GetSalary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetBaseSalary implements PayrollHandler.
func (h *PayrollHandlerImpl) SetBaseSalary(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourcePayroll, access.ActionEditSalary, false); !ok {
		return
	}

	var req payroll.SetBaseSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetBaseSalary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "employeeID")

	result, err := h.payrollService.SetBaseSalary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary updated", result)
}

// Payslip implements PayrollHandler.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	action, isSelf := viewAction(middleware.Subject(r), employeeID)
	if _, ok := authorize(w, r, access.ResourcePayroll, action, isSelf); !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.payrollService.WritePayslip(r.Context(), employeeID, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, "application/pdf", "payslip-"+employeeID+".pdf", buf.Bytes())
}
