package attendance

import "context"

// AttendanceService defines business logic for the check-in/check-out
// lifecycle. The acting employee is taken from the JWT claims in ctx.
type AttendanceService interface {
	// CheckIn opens today's record for the authenticated employee.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's record.
	CheckOut(ctx context.Context) (AttendanceResponse, error)

	// Today reports where today stands for the authenticated employee.
	Today(ctx context.Context) (TodayResponse, error)

	// History returns the authenticated employee's records, newest first.
	History(ctx context.Context) ([]AttendanceResponse, error)

	// List returns every employee's records (admin).
	List(ctx context.Context) ([]AttendanceResponse, error)
}
