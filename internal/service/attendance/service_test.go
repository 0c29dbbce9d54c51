package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/attendance"
	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/repository/memory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClock returns a fixed instant so late/present outcomes are deterministic.
type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time {
	return c.now
}

const testLateCutoff = 9*60 + 15 // 09:15

var testAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

func contextFor(t *testing.T, userID string, role employee.Role) context.Context {
	t.Helper()
	token, _, err := testAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestEmployee(t *testing.T, repo *memory.EmployeeRepository, email string) employee.Employee {
	t.Helper()
	emp, err := repo.Create(context.Background(), employee.Employee{
		Name:         "Test Employee",
		Email:        email,
		PasswordHash: "hash",
		Role:         employee.RoleEmployee,
		IsActive:     true,
	})
	require.NoError(t, err)
	return emp
}

func newAttendanceFixture(t *testing.T, now time.Time) (attendance.AttendanceService, *memory.EmployeeRepository, *memory.AttendanceRepository) {
	t.Helper()
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	svc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: now}, time.UTC, testLateCutoff)
	return svc, employeeRepo, attendanceRepo
}

func TestAttendanceService_CheckIn_Present(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 30, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "present@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	assert.Equal(t, "present", resp.Status)
	assert.Equal(t, "2024-06-10", resp.Date)
	assert.Equal(t, emp.ID, resp.EmployeeID)
}

func TestAttendanceService_CheckIn_AtCutoffIsPresent(t *testing.T) {
	// Exactly 09:15 is on time; only strictly later is late.
	now := time.Date(2024, 6, 10, 9, 15, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "cutoff@example.com")

	resp, err := svc.CheckIn(contextFor(t, emp.ID, employee.RoleEmployee), attendance.CheckInRequest{})
	require.NoError(t, err)
	assert.Equal(t, "present", resp.Status)
}

func TestAttendanceService_CheckIn_AfterCutoffIsLate(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 16, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "late@example.com")

	resp, err := svc.CheckIn(contextFor(t, emp.ID, employee.RoleEmployee), attendance.CheckInRequest{})
	require.NoError(t, err)
	assert.Equal(t, "late", resp.Status)
}

func TestAttendanceService_CheckIn_Duplicate(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "dup@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestAttendanceService_CheckIn_InvalidCoordinates(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "geo@example.com")

	lat := 95.0
	lng := 10.0
	_, err := svc.CheckIn(contextFor(t, emp.ID, employee.RoleEmployee), attendance.CheckInRequest{
		Latitude:  &lat,
		Longitude: &lng,
	})
	assert.Error(t, err)
}

func TestAttendanceService_CheckOut_WithoutCheckIn(t *testing.T) {
	now := time.Date(2024, 6, 10, 17, 0, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "nocheckin@example.com")

	_, err := svc.CheckOut(contextFor(t, emp.ID, employee.RoleEmployee))
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestAttendanceService_CheckOut_Success(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	emp := newTestEmployee(t, employeeRepo, "checkout@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	checkInSvc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: now}, time.UTC, testLateCutoff)
	_, err := checkInSvc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	later := now.Add(9 * time.Hour)
	checkOutSvc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: later}, time.UTC, testLateCutoff)
	resp, err := checkOutSvc.CheckOut(ctx)
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, later.Format(time.RFC3339), *resp.CheckOut)
}

func TestAttendanceService_CheckOut_BeforeCheckIn(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	emp := newTestEmployee(t, employeeRepo, "clockskew@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	checkInSvc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: now}, time.UTC, testLateCutoff)
	_, err := checkInSvc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	earlier := now.Add(-time.Minute)
	checkOutSvc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: earlier}, time.UTC, testLateCutoff)
	_, err = checkOutSvc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrCheckOutBeforeCheckIn)
}

func TestAttendanceService_CheckOut_Twice(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "twice@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	_, err = svc.CheckOut(ctx)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestAttendanceService_Today_Transitions(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc, employeeRepo, _ := newAttendanceFixture(t, now)
	emp := newTestEmployee(t, employeeRepo, "today@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateNotCheckedIn, today.Status)
	assert.Nil(t, today.Attendance)

	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	today, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateCheckedIn, today.Status)
	require.NotNil(t, today.Attendance)
	assert.Nil(t, today.Attendance.CheckOut)

	_, err = svc.CheckOut(ctx)
	require.NoError(t, err)

	today, err = svc.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.DayStateCheckedOut, today.Status)
	require.NotNil(t, today.Attendance)
	assert.NotNil(t, today.Attendance.CheckOut)
}

func TestAttendanceService_History_NewestFirst(t *testing.T) {
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	emp := newTestEmployee(t, employeeRepo, "history@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	days := []time.Time{
		time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 12, 8, 0, 0, 0, time.UTC),
	}
	for _, day := range days {
		svc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: day}, time.UTC, testLateCutoff)
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{})
		require.NoError(t, err)
	}

	svc := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: days[2]}, time.UTC, testLateCutoff)
	history, err := svc.History(ctx)
	require.NoError(t, err)

	require.Len(t, history, 3)
	assert.Equal(t, "2024-06-12", history[0].Date)
	assert.Equal(t, "2024-06-11", history[1].Date)
	assert.Equal(t, "2024-06-10", history[2].Date)
}

func TestAttendanceService_CheckIn_NextDayAllowed(t *testing.T) {
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	emp := newTestEmployee(t, employeeRepo, "nextday@example.com")
	ctx := contextFor(t, emp.ID, employee.RoleEmployee)

	day1 := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	svc1 := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: day1}, time.UTC, testLateCutoff)
	_, err := svc1.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)

	// A new calendar day starts a fresh record even when the previous day
	// was never checked out.
	day2 := time.Date(2024, 6, 11, 8, 0, 0, 0, time.UTC)
	svc2 := NewAttendanceService(attendanceRepo, employeeRepo, stubClock{now: day2}, time.UTC, testLateCutoff)
	_, err = svc2.CheckIn(ctx, attendance.CheckInRequest{})
	require.NoError(t, err)
}
