package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleError(t *testing.T) {
	employeeSubject := access.Subject{Authenticated: true, EmployeeID: "EMP001", Role: user.RoleEmployee}

	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantCode     string
		wantRedirect string
	}{
		{"validation", validator.Single("date", "bad"), http.StatusUnprocessableEntity, "VALIDATION_ERROR", ""},
		{"wrapped validation", fmt.Errorf("submit: %w", validator.Single("date", "bad")), http.StatusUnprocessableEntity, "VALIDATION_ERROR", ""},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND", ""},
		{"duplicate id", employee.ErrEmployeeIDExists, http.StatusConflict, "CONFLICT", ""},
		{"duplicate email", employee.ErrEmailExists, http.StatusConflict, "CONFLICT", ""},
		{"already decided", leave.ErrLeaveRequestAlreadyDecided, http.StatusConflict, "CONFLICT", ""},
		{"unauthenticated", access.Authorize(access.Subject{}, access.ResourceDashboard, access.ActionViewOwn, false), http.StatusUnauthorized, "UNAUTHORIZED", "/login"},
		{"denied", access.Authorize(employeeSubject, access.ResourceLeaveRequest, access.ActionDecide, false), http.StatusForbidden, "FORBIDDEN", "/dashboard"},
		{"onboarding done", employee.ErrOnboardingCompleted, http.StatusForbidden, "FORBIDDEN", "/dashboard"},
		{"corrupt", fmt.Errorf("%w: salaryData", kv.ErrCorruptRecord), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
			if tt.wantRedirect != "" {
				assert.Equal(t, tt.wantRedirect, resp.Error.Details["redirect"])
				assert.Equal(t, tt.wantRedirect, rec.Header().Get("Location"))
			}
		})
	}
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "application/pdf", "payslip.pdf", []byte("%PDF-1.3"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="payslip.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "8", rec.Header().Get("Content-Length"))
}
