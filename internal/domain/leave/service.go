package leave

import "context"

// LeaveService defines business logic for the leave-request lifecycle. The
// acting identity is taken from the JWT claims in ctx.
type LeaveService interface {
	// Apply submits a new request for the authenticated employee.
	Apply(ctx context.Context, req ApplyLeaveRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending request as the authenticated
	// admin. Decisions are one-shot and irreversible.
	Decide(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// ListMine returns the authenticated employee's requests, newest first.
	ListMine(ctx context.Context) ([]LeaveResponse, error)

	// List returns every request (admin), newest first.
	List(ctx context.Context) ([]LeaveResponse, error)
}
