package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/jwt"
	"github.com/amit-109/AttendanceApp-backend/internal/repository/memory"
	attendanceService "github.com/amit-109/AttendanceApp-backend/internal/service/attendance"
	authService "github.com/amit-109/AttendanceApp-backend/internal/service/auth"
	employeeService "github.com/amit-109/AttendanceApp-backend/internal/service/employee"
	leaveService "github.com/amit-109/AttendanceApp-backend/internal/service/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestPassword   = "password123"
)

type routerFixture struct {
	router       http.Handler
	jwtService   jwt.Service
	employeeRepo *memory.EmployeeRepository
	now          time.Time
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()
	employeeRepo := memory.NewEmployeeRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	leaveRepo := memory.NewLeaveRequestRepository()

	now := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	clk := fixedClock{now: now}
	jwtService := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, time.UTC, 9*60+15)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, clk, time.UTC, 10, 500)

	router := NewRouter(
		"test",
		jwtService,
		NewAuthHandler(authSvc),
		NewAttendanceHandler(attendanceSvc),
		NewLeaveHandler(leaveSvc),
		NewEmployeeHandler(employeeSvc),
	)

	return &routerFixture{router: router, jwtService: jwtService, employeeRepo: employeeRepo, now: now}
}

func (f *routerFixture) createUser(t *testing.T, email string, role employee.Role) employee.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		Name:         "Test User",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	require.NoError(t, err)
	return emp
}

func (f *routerFixture) tokenFor(t *testing.T, emp employee.Employee) string {
	t.Helper()
	token, _, err := f.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	require.NoError(t, err)
	return token
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success)
	return envelope.Data
}

func TestRouter_Login_And_Me(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "emp@example.com",
		"password": handlerTestPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	accessToken, _ := data["access_token"].(string)
	require.NotEmpty(t, accessToken)

	rec = f.do(t, http.MethodGet, "/api/v1/auth/me", accessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	me := decodeData(t, rec)
	assert.Equal(t, emp.ID, me["id"])
}

func TestRouter_Login_BadPassword(t *testing.T) {
	f := newRouterFixture(t)
	f.createUser(t, "emp@example.com", employee.RoleEmployee)

	rec := f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "emp@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProtectedRoute_NoToken(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/attendance/today", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RefreshTokenRejectedOnProtectedRoute(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)

	refreshToken, _, err := f.jwtService.GenerateRefreshToken(emp.ID)
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/attendance/today", refreshToken, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_CheckIn_Flow(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)
	token := f.tokenFor(t, emp)

	rec := f.do(t, http.MethodGet, "/api/v1/attendance/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	today := decodeData(t, rec)
	assert.Equal(t, "not_checked_in", today["status"])

	rec = f.do(t, http.MethodPost, "/api/v1/attendance/check-in", token, map[string]interface{}{})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = f.do(t, http.MethodPost, "/api/v1/attendance/check-in", token, map[string]interface{}{})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/attendance/check-out", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/attendance/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	today = decodeData(t, rec)
	assert.Equal(t, "checked_out", today["status"])
}

func TestRouter_CheckIn_AdminForbidden(t *testing.T) {
	f := newRouterFixture(t)
	admin := f.createUser(t, "admin@example.com", employee.RoleAdmin)
	token := f.tokenFor(t, admin)

	rec := f.do(t, http.MethodPost, "/api/v1/attendance/check-in", token, map[string]interface{}{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_AttendanceList_EmployeeForbidden(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)
	token := f.tokenFor(t, emp)

	rec := f.do(t, http.MethodGet, "/api/v1/attendance", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Leave_ApplyAndDecide(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)
	admin := f.createUser(t, "admin@example.com", employee.RoleAdmin)
	empToken := f.tokenFor(t, emp)
	adminToken := f.tokenFor(t, admin)

	rec := f.do(t, http.MethodPost, "/api/v1/leaves", empToken, map[string]string{
		"leave_type": "annual",
		"start_date": "2024-06-10",
		"end_date":   "2024-06-12",
		"reason":     "Family vacation out of town",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData(t, rec)
	leaveID, _ := created["id"].(string)
	require.NotEmpty(t, leaveID)

	// Overlapping resubmission conflicts.
	rec = f.do(t, http.MethodPost, "/api/v1/leaves", empToken, map[string]string{
		"leave_type": "annual",
		"start_date": "2024-06-12",
		"end_date":   "2024-06-14",
		"reason":     "Family vacation out of town",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Employees cannot decide.
	rec = f.do(t, http.MethodPut, "/api/v1/leaves/"+leaveID+"/decision", empToken, map[string]string{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/leaves/"+leaveID+"/decision", adminToken, map[string]string{
		"status": "approved",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decided := decodeData(t, rec)
	assert.Equal(t, "approved", decided["status"])

	// A second decision conflicts.
	rec = f.do(t, http.MethodPut, "/api/v1/leaves/"+leaveID+"/decision", adminToken, map[string]string{
		"status": "rejected",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRouter_Leave_ValidationError(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)
	token := f.tokenFor(t, emp)

	rec := f.do(t, http.MethodPost, "/api/v1/leaves", token, map[string]string{
		"leave_type": "unknown",
		"start_date": "ten-six",
		"end_date":   "2024-06-12",
		"reason":     "",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRouter_Employees_AdminCRUD(t *testing.T) {
	f := newRouterFixture(t)
	admin := f.createUser(t, "admin@example.com", employee.RoleAdmin)
	adminToken := f.tokenFor(t, admin)

	rec := f.do(t, http.MethodPost, "/api/v1/employees", adminToken, map[string]string{
		"name":     "John Doe",
		"email":    "john@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeData(t, rec)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)

	rec = f.do(t, http.MethodGet, "/api/v1/employees", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPut, "/api/v1/employees/"+id, adminToken, map[string]string{
		"name": "Johnny Doe",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeData(t, rec)
	assert.Equal(t, "Johnny Doe", updated["name"])

	rec = f.do(t, http.MethodDelete, "/api/v1/employees/"+id, adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Deactivated employees can no longer log in.
	rec = f.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "john@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Employees_EmployeeForbidden(t *testing.T) {
	f := newRouterFixture(t)
	emp := f.createUser(t, "emp@example.com", employee.RoleEmployee)
	token := f.tokenFor(t, emp)

	rec := f.do(t, http.MethodGet, "/api/v1/employees", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
