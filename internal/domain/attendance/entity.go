package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
)

// DayState is the three-valued answer to "where does today stand".
type DayState string

const (
	DayStateNotCheckedIn DayState = "not_checked_in"
	DayStateCheckedIn    DayState = "checked_in"
	DayStateCheckedOut   DayState = "checked_out"
)

// Attendance is one employee's record for one calendar day. Date carries no
// time component; CheckIn and CheckOut are absolute instants. At most one
// record exists per (EmployeeID, Date).
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    time.Time
	CheckOut   *time.Time
	Latitude   *float64
	Longitude  *float64
	Photo      *string
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Read-time join with the directory
	EmployeeName  *string
	EmployeeEmail *string
}
