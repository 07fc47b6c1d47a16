package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	CompleteOnboarding(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.DirectoryService
}

func NewEmployeeHandler(employeeService employee.DirectoryService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourceEmployeeDirectory, access.ActionList, false); !ok {
		return
	}

	filter := employee.SearchFilter{
		Query:      r.URL.Query().Get("q"),
		Department: r.URL.Query().Get("department"),
	}
	result, err := h.employeeService.Search(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	isSelf := middleware.Subject(r).EmployeeID == employeeID
	if _, ok := authorize(w, r, access.ResourceEmployeeProfile, access.ActionView, isSelf); !ok {
		return
	}

	result, err := h.employeeService.Get(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employee.ToResponse(result))
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourceEmployeeDirectory, access.ActionManage, false); !ok {
		return
	}

	var req employee.RegisterEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee registered", result)
}

// Update implements EmployeeHandler. Field-level rules are enforced by the
// directory service against the caller's subject.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	subject := middleware.Subject(r)
	if _, ok := authorize(w, r, access.ResourceEmployeeProfile, access.ActionEdit, subject.EmployeeID == employeeID); !ok {
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update employee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.employeeService.Upsert(r.Context(), subject, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// CompleteOnboarding implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	subject, ok := authorize(w, r, access.ResourceOnboarding, access.ActionComplete, true)
	if !ok {
		return
	}

	var req employee.CompleteOnboardingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CompleteOnboarding decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = subject.EmployeeID

	result, err := h.employeeService.CompleteOnboarding(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding completed", result)
}
