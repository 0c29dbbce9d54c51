package leave

import (
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/pkg/dateutil"
)

type Type string

const (
	TypeSick      Type = "sick"
	TypeCasual    Type = "casual"
	TypeAnnual    Type = "annual"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeOther     Type = "other"
)

// ValidType reports whether s names a known leave type.
func ValidType(s string) bool {
	switch Type(s) {
	case TypeSick, TypeCasual, TypeAnnual, TypeMaternity, TypePaternity, TypeOther:
		return true
	}
	return false
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest is one employee's request for an inclusive date range.
// StartDate and EndDate are bare calendar days. A request is created pending
// and transitions exactly once to approved or rejected.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	LeaveType  Type
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     Status
	ApprovedBy *string
	ApprovedAt *time.Time
	Comments   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Read-time joins with the directory
	EmployeeName  *string
	EmployeeEmail *string
	ApproverName  *string
}

// IsActive reports whether the request participates in the overlap invariant.
// Rejected requests free their range for resubmission.
func (l LeaveRequest) IsActive() bool {
	return l.Status == StatusPending || l.Status == StatusApproved
}

// OverlapsRange applies the closed-interval intersection test: two inclusive
// ranges overlap iff each range's start is on or before the other's end.
func (l LeaveRequest) OverlapsRange(start, end time.Time) bool {
	return !l.StartDate.After(end) && !start.After(l.EndDate)
}

// Duration is the inclusive day count of the range; 1 for a single day.
func (l LeaveRequest) Duration() int {
	return dateutil.InclusiveDays(l.StartDate, l.EndDate)
}
