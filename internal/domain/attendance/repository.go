package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create persists a new record. The store enforces the one-record-per
	// (employee, day) invariant at commit time and returns
	// ErrAlreadyCheckedIn when a record for the same day already exists, so
	// two concurrent check-ins can never both succeed.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for the day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetCheckOut closes the day's record. Returns ErrAttendanceNotFound
	// when the record vanished between read and write.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) error

	// ListByEmployee returns one employee's records, newest date first.
	ListByEmployee(ctx context.Context, employeeID string) ([]Attendance, error)

	// List returns all records with directory fields attached, newest date
	// first and latest check-in first within a day.
	List(ctx context.Context) ([]Attendance, error)
}
