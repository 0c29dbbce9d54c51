package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/attendance"
	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/clock"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/dateutil"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	clock clock.Clock

	// Organization timezone and late-cutoff policy; the cutoff is minutes
	// after local midnight.
	location          *time.Location
	lateCutoffMinutes int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	location *time.Location,
	lateCutoffMinutes int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		clock:                clk,
		location:             location,
		lateCutoffMinutes:    lateCutoffMinutes,
	}
}

func actorID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	employeeID, err := actorID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := dateutil.DayOf(now, a.location)

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	status := attendance.StatusPresent
	if dateutil.MinutesOfDay(now, a.location) > a.lateCutoffMinutes {
		status = attendance.StatusLate
	}

	data := attendance.Attendance{
		EmployeeID: employeeID,
		Date:       today,
		CheckIn:    now.UTC(),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		Photo:      req.Photo,
		Status:     status,
		Notes:      req.Notes,
	}

	// The repository re-enforces uniqueness at commit, so a concurrent
	// check-in that slipped past the lookup above still loses here.
	created, err := a.AttendanceRepository.Create(ctx, data)
	if err != nil {
		if errors.Is(err, attendance.ErrAlreadyCheckedIn) {
			return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return a.withEmployee(ctx, created)
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context) (attendance.AttendanceResponse, error) {
	employeeID, err := actorID(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	today := dateutil.DayOf(now, a.location)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}
	if now.Before(record.CheckIn) {
		return attendance.AttendanceResponse{}, attendance.ErrCheckOutBeforeCheckIn
	}

	checkOut := now.UTC()
	if err := a.AttendanceRepository.SetCheckOut(ctx, record.ID, checkOut); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to set check-out: %w", err)
	}
	record.CheckOut = &checkOut

	return a.withEmployee(ctx, *record)
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.TodayResponse, error) {
	employeeID, err := actorID(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	today := dateutil.DayOf(a.clock.Now(), a.location)

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	if record == nil {
		return attendance.TodayResponse{Status: attendance.DayStateNotCheckedIn}, nil
	}

	state := attendance.DayStateCheckedIn
	if record.CheckOut != nil {
		state = attendance.DayStateCheckedOut
	}

	resp := attendance.ToResponse(*record)
	return attendance.TodayResponse{Status: state, Attendance: &resp}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	employeeID, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// withEmployee attaches directory display fields to a freshly written record.
// This is a read-time composition, not stored state.
func (a *AttendanceServiceImpl) withEmployee(ctx context.Context, att attendance.Attendance) (attendance.AttendanceResponse, error) {
	emp, err := a.EmployeeRepository.GetByID(ctx, att.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.ToResponse(att), nil
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	att.EmployeeName = &emp.Name
	att.EmployeeEmail = &emp.Email
	return attendance.ToResponse(att), nil
}
