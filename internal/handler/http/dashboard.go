package http

import (
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/dashboard"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	GetAdminDashboard(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetEmployeeDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	subject, ok := authorize(w, r, access.ResourceDashboard, access.ActionViewOwn, true)
	if !ok {
		return
	}

	result, err := h.dashboardService.EmployeeSummary(r.Context(), subject.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdminDashboard implements DashboardHandler.
func (h *DashboardHandlerImpl) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourceDashboard, access.ActionViewAdmin, false); !ok {
		return
	}

	result, err := h.dashboardService.AdminStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
