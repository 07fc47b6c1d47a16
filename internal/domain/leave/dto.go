package leave

import (
	"strings"
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
)

type SubmitRequest struct {
	EmployeeID string `json:"-"`
	Type       Type   `json:"type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of Paid Leave, Sick Leave, Unpaid Leave, Casual Leave",
		})
	}
	errs = append(errs, validateRange(r.StartDate, r.EndDate, "start_date", "end_date")...)
	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason must be at most 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideRequest struct {
	RequestID  string  `json:"-"`
	ReviewedBy *string `json:"-"`
	Decision   Status  `json:"decision"`
	Comment    *string `json:"comment,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{Field: "request_id", Message: "request_id is required"})
	}
	if !r.Decision.IsTerminal() {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "decision must be Approved or Rejected"})
	}
	if r.Comment != nil {
		trimmed := strings.TrimSpace(*r.Comment)
		r.Comment = &trimmed
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name,omitempty"`
	Department    string    `json:"department,omitempty"`
	Type          Type      `json:"type"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	Reason        string    `json:"reason"`
	Status        Status    `json:"status"`
	SubmittedDate time.Time `json:"submitted_date"`
	AdminComment  *string   `json:"admin_comment"`
	ReviewedBy    *string   `json:"reviewed_by,omitempty"`
}

// GroupedResponse is the reviewer view: one store, two display groups.
type GroupedResponse struct {
	Pending   []LeaveRequestResponse `json:"pending"`
	Processed []LeaveRequestResponse `json:"processed"`
}

func ToResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Type:          r.Type,
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Reason:        r.Reason,
		Status:        r.Status,
		SubmittedDate: r.SubmittedDate,
		AdminComment:  r.AdminComment,
		ReviewedBy:    r.ReviewedBy,
	}
}
