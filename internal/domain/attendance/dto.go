package attendance

import (
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/pkg/validator"
)

// CheckInRequest carries the optional geolocation and photo proof supplied at
// check-in. Latitude and longitude travel together or not at all.
type CheckInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Photo     *string  `json:"photo"`
	Notes     *string  `json:"notes"`
}

func (r CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{Field: "location", Message: "latitude and longitude must be provided together"})
	}
	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	EmployeeID    string   `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	EmployeeEmail *string  `json:"employee_email,omitempty"`
	Date          string   `json:"date"`
	CheckIn       string   `json:"check_in"`
	CheckOut      *string  `json:"check_out,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Photo         *string  `json:"photo,omitempty"`
	Status        string   `json:"status"`
	Notes         *string  `json:"notes,omitempty"`
}

// TodayResponse answers the three-valued today query; Attendance is nil in
// the not_checked_in state.
type TodayResponse struct {
	Status     DayState            `json:"status"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

func ToResponse(att Attendance) AttendanceResponse {
	var checkOut *string
	if att.CheckOut != nil {
		s := att.CheckOut.UTC().Format(time.RFC3339)
		checkOut = &s
	}

	return AttendanceResponse{
		ID:            att.ID,
		EmployeeID:    att.EmployeeID,
		EmployeeName:  att.EmployeeName,
		EmployeeEmail: att.EmployeeEmail,
		Date:          att.Date.Format("2006-01-02"),
		CheckIn:       att.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:      checkOut,
		Latitude:      att.Latitude,
		Longitude:     att.Longitude,
		Photo:         att.Photo,
		Status:        string(att.Status),
		Notes:         att.Notes,
	}
}
