package leave

import (
	"time"

	"github.com/dayflow-hris/workforce-backend-go/internal/pkg/validator"
)

type Type string

const (
	TypePaid   Type = "Paid Leave"
	TypeSick   Type = "Sick Leave"
	TypeUnpaid Type = "Unpaid Leave"
	TypeCasual Type = "Casual Leave"
)

func (t Type) IsValid() bool {
	switch t {
	case TypePaid, TypeSick, TypeUnpaid, TypeCasual:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// IsTerminal reports a status with no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest moves Pending -> Approved | Rejected exactly once. ID and
// SubmittedDate never change after Submit.
type LeaveRequest struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	Type          Type      `json:"type"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Reason        string    `json:"reason"`
	Status        Status    `json:"status"`
	SubmittedDate time.Time `json:"submittedDate"`
	AdminComment  *string   `json:"adminComment,omitempty"`
	// ReviewedBy is the deciding administrator when the caller supplied one.
	ReviewedBy *string `json:"reviewedBy,omitempty"`
}

// Validate checks a request read back from storage.
func (r LeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if !r.Type.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown leave type"})
	}
	if !r.Status.IsValid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	errs = append(errs, validateRange(r.StartDate, r.EndDate, "startDate", "endDate")...)
	if r.SubmittedDate.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "submittedDate", Message: "submittedDate is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Decide applies a terminal decision. It fails with
// ErrLeaveRequestAlreadyDecided unless r is Pending.
func (r LeaveRequest) Decide(decision Status, comment, reviewedBy *string) (LeaveRequest, error) {
	if r.Status != StatusPending {
		return r, ErrLeaveRequestAlreadyDecided
	}
	if !decision.IsTerminal() {
		return r, validator.Single("decision", "decision must be Approved or Rejected")
	}

	r.Status = decision
	r.AdminComment = comment
	r.ReviewedBy = reviewedBy
	return r, nil
}

func validateRange(start, end, startField, endField string) validator.ValidationErrors {
	var errs validator.ValidationErrors

	from, okFrom := validator.IsValidDate(start)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: startField, Message: startField + " must be in YYYY-MM-DD format"})
	}
	to, okTo := validator.IsValidDate(end)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: endField, Message: endField + " must be in YYYY-MM-DD format"})
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{Field: endField, Message: "end date must not be before start date"})
	}
	return errs
}
