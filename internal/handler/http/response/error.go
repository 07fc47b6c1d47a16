package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/kv"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Policy decisions carry their own redirect target
	var denied *access.DeniedError
	if errors.As(err, &denied) {
		Denied(w, denied)
		return
	}

	switch {
	// Session errors
	case errors.Is(err, user.ErrUnauthenticated), errors.Is(err, user.ErrInvalidToken), errors.Is(err, user.ErrInvalidRole):
		Redirect(w, http.StatusUnauthorized, codeUnauthorized, "Authentication required", access.LoginPath)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, employee.ErrEmployeeIDExists.Error())
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, employee.ErrEmailExists.Error())
	case errors.Is(err, employee.ErrOnboardingCompleted):
		Redirect(w, http.StatusForbidden, codeForbidden, "Onboarding already completed", access.DashboardPath)
	case errors.Is(err, employee.ErrNothingToUpdate):
		BadRequest(w, "No fields to update", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		ValidationError(w, map[string]string{"time": err.Error()})

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyDecided):
		Conflict(w, "Leave request already decided")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrSalaryNotFound):
		NotFound(w, "Salary not configured")

	// Storage
	case errors.Is(err, kv.ErrCorruptRecord):
		slog.Error("Corrupt stored record", "error", err)
		InternalServerError(w, "Stored data is malformed")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

// Denied writes a policy refusal: 401 towards the login page for a missing
// session, otherwise 403 towards the decision's target.
func Denied(w http.ResponseWriter, denied *access.DeniedError) {
	if denied.Unauthenticated() {
		Redirect(w, http.StatusUnauthorized, codeUnauthorized, "Authentication required", access.LoginPath)
		return
	}

	target := denied.Decision.RedirectTo
	if target == "" {
		target = access.DashboardPath
	}
	Redirect(w, http.StatusForbidden, codeForbidden, "You do not have access to this resource", target)
}
