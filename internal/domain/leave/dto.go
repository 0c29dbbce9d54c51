package leave

import (
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/pkg/validator"
)

type ApplyLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r ApplyLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "leave type is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideLeaveRequest struct {
	ID       string  `json:"-"`
	Status   string  `json:"status"`
	Comments *string `json:"comments"`
}

func (r DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "invalid leave request id"})
	}
	if r.Comments != nil && len(*r.Comments) > 500 {
		errs = append(errs, validator.ValidationError{Field: "comments", Message: "comments must be at most 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeEmail *string `json:"employee_email,omitempty"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Duration      int     `json:"duration"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	ApprovedBy    *string `json:"approved_by,omitempty"`
	ApproverName  *string `json:"approver_name,omitempty"`
	ApprovedAt    *string `json:"approved_at,omitempty"`
	Comments      *string `json:"comments,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func ToResponse(req LeaveRequest) LeaveResponse {
	var approvedAt *string
	if req.ApprovedAt != nil {
		s := req.ApprovedAt.UTC().Format(time.RFC3339)
		approvedAt = &s
	}

	return LeaveResponse{
		ID:            req.ID,
		EmployeeID:    req.EmployeeID,
		EmployeeName:  req.EmployeeName,
		EmployeeEmail: req.EmployeeEmail,
		LeaveType:     string(req.LeaveType),
		StartDate:     req.StartDate.Format("2006-01-02"),
		EndDate:       req.EndDate.Format("2006-01-02"),
		Duration:      req.Duration(),
		Reason:        req.Reason,
		Status:        string(req.Status),
		ApprovedBy:    req.ApprovedBy,
		ApproverName:  req.ApproverName,
		ApprovedAt:    approvedAt,
		Comments:      req.Comments,
		CreatedAt:     req.CreatedAt.UTC().Format(time.RFC3339),
	}
}
