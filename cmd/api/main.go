package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/amit-109/AttendanceApp-backend/internal/config"
	appHTTP "github.com/amit-109/AttendanceApp-backend/internal/handler/http"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/clock"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/database"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/jwt"
	"github.com/amit-109/AttendanceApp-backend/internal/repository/postgresql"
	attendanceService "github.com/amit-109/AttendanceApp-backend/internal/service/attendance"
	authService "github.com/amit-109/AttendanceApp-backend/internal/service/auth"
	employeeService "github.com/amit-109/AttendanceApp-backend/internal/service/employee"
	leaveService "github.com/amit-109/AttendanceApp-backend/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	location, err := cfg.Attendance.Location()
	if err != nil {
		log.Fatal("Error loading timezone: ", err)
	}
	lateCutoff, err := cfg.Attendance.LateCutoffMinutes()
	if err != nil {
		log.Fatal("Error parsing late cutoff: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.System{}

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, clk, location, lateCutoff)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, clk, location, cfg.Leave.ReasonMinLen, cfg.Leave.ReasonMaxLen)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
