package http

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/workforce-backend-go/internal/domain/access"
	"github.com/dayflow-hris/workforce-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/workforce-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/clock"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	Week(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	DailyRoll(w http.ResponseWriter, r *http.Request)
	ExportDailyRoll(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	clock             clock.Clock
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, clk clock.Clock) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		clock:             clk,
	}
}

// checkBody is the optional body of check-in and check-out; omitted fields
// default to the current date and time.
type checkBody struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

func (h *attendanceHandlerImpl) checkRequest(w http.ResponseWriter, r *http.Request, op string) (attendance.CheckRequest, bool) {
	subject, ok := authorize(w, r, access.ResourceAttendance, access.ActionRecord, true)
	if !ok {
		return attendance.CheckRequest{}, false
	}

	var body checkBody
	if err := decodeOptional(r, &body); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return attendance.CheckRequest{}, false
	}

	req := attendance.CheckRequest{EmployeeID: subject.EmployeeID, Date: body.Date, Time: body.Time}
	if req.Date == "" {
		req.Date = clock.Today(h.clock)
	}
	if req.Time == "" {
		req.Time = clock.TimeOfDay(h.clock)
	}
	return req, true
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.checkRequest(w, r, "CheckIn")
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.checkRequest(w, r, "CheckOut")
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	subject, ok := authorize(w, r, access.ResourceAttendance, access.ActionViewOwn, true)
	if !ok {
		return
	}

	result, err := h.attendanceService.Today(r.Context(), subject.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AttendanceHandler.
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	subject, ok := authorize(w, r, access.ResourceAttendance, access.ActionViewOwn, true)
	if !ok {
		return
	}

	result, err := h.attendanceService.History(r.Context(), subject.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Week implements AttendanceHandler.
func (h *attendanceHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	subject, ok := authorize(w, r, access.ResourceAttendance, access.ActionViewOwn, true)
	if !ok {
		return
	}

	result, err := h.attendanceService.Week(r.Context(), subject.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements AttendanceHandler. With from and to it lists the
// range, otherwise it returns the full history.
func (h *attendanceHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	action, isSelf := viewAction(middleware.Subject(r), employeeID)
	if _, ok := authorize(w, r, access.ResourceAttendance, action, isSelf); !ok {
		return
	}

	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" && to == "" {
		result, err := h.attendanceService.History(r.Context(), employeeID)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	result, err := h.attendanceService.ListRange(r.Context(), attendance.RangeFilter{EmployeeID: employeeID, From: from, To: to})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyRoll implements AttendanceHandler.
func (h *attendanceHandlerImpl) DailyRoll(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourceAttendance, access.ActionViewOthers, false); !ok {
		return
	}

	result, err := h.attendanceService.DailyRoll(r.Context(), h.rollDate(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportDailyRoll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ExportDailyRoll(w http.ResponseWriter, r *http.Request) {
	if _, ok := authorize(w, r, access.ResourceAttendance, access.ActionExport, false); !ok {
		return
	}

	date := h.rollDate(r)
	var buf bytes.Buffer
	if err := h.attendanceService.ExportDailyRoll(r.Context(), date, &buf); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, xlsxContentType, "attendance-"+date+".xlsx", buf.Bytes())
}

func (h *attendanceHandlerImpl) rollDate(r *http.Request) string {
	if date := r.URL.Query().Get("date"); date != "" {
		return date
	}
	return clock.Today(h.clock)
}
