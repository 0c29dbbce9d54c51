package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	// Create persists a new pending request after re-checking the overlap
	// invariant atomically against the employee's active requests: the
	// read-test-insert runs as a single unit per employee and returns
	// ErrOverlappingRequest when the range intersects an existing
	// pending/approved request.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// GetActiveByEmployee returns the employee's pending and approved
	// requests, the subset the overlap invariant ranges over.
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// UpdateDecision moves a pending request to its terminal status. The
	// update is conditional on the current status still being pending and
	// returns ErrAlreadyDecided otherwise, so concurrent decisions cannot
	// both commit.
	UpdateDecision(ctx context.Context, id string, status Status, decidedBy string, decidedAt time.Time, comments *string) error

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// List returns all requests with directory fields attached, newest first.
	List(ctx context.Context) ([]LeaveRequest, error)
}
