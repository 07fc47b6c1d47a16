package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/config"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/user"
	"github.com/dayflow-hris/workforce-backend-go/internal/fixtures"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/kvstore"
	"github.com/dayflow-hris/workforce-backend-go/internal/repository/kv"
	attendanceservice "github.com/dayflow-hris/workforce-backend-go/internal/service/attendance"
	dashboardservice "github.com/dayflow-hris/workforce-backend-go/internal/service/dashboard"
	employeeservice "github.com/dayflow-hris/workforce-backend-go/internal/service/employee"
	leaveservice "github.com/dayflow-hris/workforce-backend-go/internal/service/leave"
	payrollservice "github.com/dayflow-hris/workforce-backend-go/internal/service/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	johnIdentity    = user.Identity{EmployeeID: "EMP001", Email: "john.doe@dayflow.com", Role: user.RoleEmployee}
	janeIdentity    = user.Identity{EmployeeID: "EMP002", Email: "jane.smith@dayflow.com", Role: user.RoleAdmin}
	newHireIdentity = user.Identity{EmployeeID: "EMP003", Email: "new.employee@dayflow.com", Role: user.RoleEmployee, NeedsOnboarding: true}
)

type testServer struct {
	handler http.Handler
	jwt     jwt.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", LogLevel: slog.LevelError},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	store := kvstore.NewMemory()
	clk := clock.Fixed(time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC))

	directory := employeeservice.NewEmployeeService(fixtures.SeedEmployees(), kv.NewRegisteredEmployeeRepository(store), kv.NewProfileRepository(store), clk)
	attendanceService := attendanceservice.NewAttendanceService(kv.NewAttendanceRepository(store), directory, clk, time.Sunday)
	leaveService := leaveservice.NewLeaveService(kv.NewLeaveRequestRepository(store), directory, clk)
	payrollService := payrollservice.NewPayrollService(kv.NewSalaryRepository(store), directory, clk)
	dashboardService := dashboardservice.NewDashboardService(directory, attendanceService, leaveService, payrollService, clk)

	require.NoError(t, payrollService.SeedDefaults(context.Background(), fixtures.DefaultSalaries()))

	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", time.Hour)
	router := NewRouter(
		cfg,
		logger,
		jwtService,
		NewDashboardHandler(dashboardService),
		NewAttendanceHandler(attendanceService, clk),
		NewLeaveHandler(leaveService),
		NewEmployeeHandler(directory),
		NewPayrollHandler(payrollService),
	)
	return &testServer{handler: router, jwt: jwtService}
}

func (s *testServer) do(t *testing.T, identity *user.Identity, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if identity != nil {
		token, _, err := s.jwt.GenerateAccessToken(*identity)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// envelope decodes the response envelope with data left raw.
type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Data    json.RawMessage       `json:"data"`
	Error   *response.ErrorDetail `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestRouter_HeartbeatAndRequestID(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, nil, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_Unauthenticated(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, nil, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	env := decodeEnvelope(t, rec, nil)
	require.NotNil(t, env.Error)
	assert.Equal(t, "/login", env.Error.Details["redirect"])
}

func TestRouter_AdminOnlyRoutesRedirectEmployees(t *testing.T) {
	srv := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/dashboard/admin"},
		{http.MethodGet, "/api/v1/employees"},
		{http.MethodGet, "/api/v1/leave-requests"},
		{http.MethodGet, "/api/v1/leave-requests/pending"},
		{http.MethodGet, "/api/v1/payroll"},
		{http.MethodGet, "/api/v1/payroll/EMP004"},
		{http.MethodGet, "/api/v1/attendance/roll"},
		{http.MethodGet, "/api/v1/attendance/employees/EMP004"},
	}
	for _, p := range paths {
		t.Run(p.path, func(t *testing.T) {
			rec := srv.do(t, &johnIdentity, p.method, p.path, nil)
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
		})
	}
}

func TestRouter_AttendanceFlow(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/attendance/check-in", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/attendance/check-out", map[string]string{"time": "17:15"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var today struct {
		Date     string  `json:"date"`
		CheckIn  *string `json:"check_in"`
		CheckOut *string `json:"check_out"`
		Status   string  `json:"status"`
	}
	rec = srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/attendance/today", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &today)
	assert.Equal(t, "2026-03-10", today.Date)
	assert.Equal(t, "Present", today.Status)
	assert.Equal(t, "09:15:00", *today.CheckIn)
	assert.Equal(t, "17:15", *today.CheckOut)

	rec = srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/attendance/check-in", map[string]string{"time": "25:00"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodGet, "/api/v1/attendance/employees/EMP001?from=2026-03-01&to=2026-03-31", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodGet, "/api/v1/attendance/employees/EMP999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodGet, "/api/v1/attendance/roll/export?date=2026-03-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attendance-2026-03-10.xlsx")
}

func TestRouter_LeaveFlow(t *testing.T) {
	srv := newTestServer(t)

	var submitted struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	rec := srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/leave-requests", map[string]string{
		"type":       "Paid Leave",
		"start_date": "2026-03-20",
		"end_date":   "2026-03-21",
		"reason":     "family trip",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &submitted)
	assert.Equal(t, "Pending", submitted.Status)

	rec = srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/leave-requests/"+submitted.ID+"/decision", map[string]string{"decision": "Approved"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodPost, "/api/v1/leave-requests/"+submitted.ID+"/decision", map[string]string{"decision": "Approved", "comment": "enjoy"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, &janeIdentity, http.MethodPost, "/api/v1/leave-requests/"+submitted.ID+"/decision", map[string]string{"decision": "Rejected"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	var mine []struct {
		Status       string  `json:"status"`
		AdminComment *string `json:"admin_comment"`
		ReviewedBy   *string `json:"reviewed_by"`
	}
	rec = srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/leave-requests/my", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, "Approved", mine[0].Status)
	assert.Equal(t, "enjoy", *mine[0].AdminComment)
	assert.Equal(t, "EMP002", *mine[0].ReviewedBy)

	rec = srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/leave-requests", map[string]string{
		"type":       "Paid Leave",
		"start_date": "2026-03-21",
		"end_date":   "2026-03-20",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_EmployeeProfile(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, &johnIdentity, http.MethodPatch, "/api/v1/employees/EMP001", map[string]string{"department": "Sales"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, &johnIdentity, http.MethodPatch, "/api/v1/employees/EMP001", map[string]string{"phone": "+1-555-7777"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/employees/EMP004", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var profile struct {
		Phone *string `json:"phone"`
	}
	rec = srv.do(t, &janeIdentity, http.MethodGet, "/api/v1/employees/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &profile)
	assert.Equal(t, "+1-555-7777", *profile.Phone)

	rec = srv.do(t, &janeIdentity, http.MethodPost, "/api/v1/employees", map[string]string{
		"employee_id": "EMP006",
		"name":        "Dan Brown",
		"email":       "john.doe@dayflow.com",
		"department":  "Finance",
		"password":    "password123",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodPost, "/api/v1/employees", map[string]string{
		"employee_id": "EMP006",
		"name":        "Dan Brown",
		"email":       "dan.brown@dayflow.com",
		"department":  "Finance",
		"password":    "password123",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var listed []struct {
		EmployeeID string `json:"employee_id"`
	}
	rec = srv.do(t, &janeIdentity, http.MethodGet, "/api/v1/employees?department=finance", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, "EMP006", listed[0].EmployeeID)
}

func TestRouter_Onboarding(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, &johnIdentity, http.MethodPost, "/api/v1/onboarding", map[string]string{"phone": "+1-555-0000", "address": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = srv.do(t, &newHireIdentity, http.MethodPost, "/api/v1/onboarding", map[string]string{"phone": "+1-555-0127", "address": "1 Market St"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The token still claims onboarding is pending; the directory knows better.
	rec = srv.do(t, &newHireIdentity, http.MethodPost, "/api/v1/onboarding", map[string]string{"phone": "+1-555-0127", "address": "1 Market St"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestRouter_Payroll(t *testing.T) {
	srv := newTestServer(t)

	var salary struct {
		NetSalary string `json:"net_salary"`
	}
	rec := srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/payroll/EMP001", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &salary)
	assert.Equal(t, "71210", salary.NetSalary)

	rec = srv.do(t, &johnIdentity, http.MethodPut, "/api/v1/payroll/EMP001", map[string]any{"base_salary": 1000000})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodPut, "/api/v1/payroll/EMP001", map[string]any{"base_salary": -5})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = srv.do(t, &janeIdentity, http.MethodPut, "/api/v1/payroll/EMP001", map[string]any{"baseSalary": 90000})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "base_salary is required", env.Error.Details["base_salary"])

	rec = srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/payroll/EMP001", nil)
	decodeEnvelope(t, rec, &salary)
	assert.Equal(t, "71210", salary.NetSalary)

	rec = srv.do(t, &janeIdentity, http.MethodPut, "/api/v1/payroll/EMP001", map[string]any{"base_salary": 90000})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &salary)
	assert.Equal(t, "75340", salary.NetSalary)

	rec = srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/payroll/EMP001/payslip", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestRouter_Dashboards(t *testing.T) {
	srv := newTestServer(t)

	var summary struct {
		EmployeeID string  `json:"employee_id"`
		NetSalary  *string `json:"net_salary"`
	}
	rec := srv.do(t, &johnIdentity, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &summary)
	assert.Equal(t, "EMP001", summary.EmployeeID)
	require.NotNil(t, summary.NetSalary)

	var stats struct {
		TotalEmployees int    `json:"total_employees"`
		TotalPayroll   string `json:"total_payroll"`
	}
	rec = srv.do(t, &janeIdentity, http.MethodGet, "/api/v1/dashboard/admin", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	decodeEnvelope(t, rec, &stats)
	assert.Equal(t, 5, stats.TotalEmployees)
	assert.Equal(t, "389090", stats.TotalPayroll)
}
