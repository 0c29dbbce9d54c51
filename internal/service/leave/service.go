package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/domain/leave"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/clock"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/dateutil"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
)

type LeaveServiceImpl struct {
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	clock clock.Clock

	location     *time.Location
	reasonMinLen int
	reasonMaxLen int
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
	clk clock.Clock,
	location *time.Location,
	reasonMinLen int,
	reasonMaxLen int,
) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRequestRepository: leaveRepo,
		EmployeeRepository:     employeeRepo,
		clock:                  clk,
		location:               location,
		reasonMinLen:           reasonMinLen,
		reasonMaxLen:           reasonMaxLen,
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

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	if !leave.ValidType(req.LeaveType) {
		return leave.LeaveResponse{}, leave.ErrInvalidLeaveType
	}

	employeeID, err := actorID(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	today := dateutil.DayOf(l.clock.Now(), l.location)
	if startDate.Before(today) || endDate.Before(startDate) {
		return leave.LeaveResponse{}, leave.ErrInvalidDateRange
	}

	if len(req.Reason) < l.reasonMinLen {
		return leave.LeaveResponse{}, leave.ErrReasonTooShort
	}
	if len(req.Reason) > l.reasonMaxLen {
		return leave.LeaveResponse{}, leave.ErrReasonTooLong
	}

	// Early overlap check for a friendly rejection; the repository repeats
	// the test atomically at commit so concurrent applications cannot both
	// slip through.
	active, err := l.LeaveRequestRepository.GetActiveByEmployee(ctx, employeeID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to load active leave requests: %w", err)
	}
	for _, existing := range active {
		if existing.OverlapsRange(startDate, endDate) {
			return leave.LeaveResponse{}, leave.ErrOverlappingRequest
		}
	}

	request := leave.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := l.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		if errors.Is(err, leave.ErrOverlappingRequest) {
			return leave.LeaveResponse{}, leave.ErrOverlappingRequest
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return l.withEmployee(ctx, created)
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if !validator.IsInSlice(req.Status, []string{string(leave.StatusApproved), string(leave.StatusRejected)}) {
		return leave.LeaveResponse{}, leave.ErrInvalidDecision
	}
	newStatus := leave.Status(req.Status)

	adminID, err := actorID(ctx)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := l.LeaveRequestRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if request.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyDecided
	}

	decidedAt := l.clock.Now().UTC()
	// The update is conditional on the request still being pending, so a
	// racing decision surfaces as ErrAlreadyDecided rather than a double
	// transition.
	if err := l.LeaveRequestRepository.UpdateDecision(ctx, request.ID, newStatus, adminID, decidedAt, req.Comments); err != nil {
		if errors.Is(err, leave.ErrAlreadyDecided) {
			return leave.LeaveResponse{}, leave.ErrAlreadyDecided
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	request.Status = newStatus
	request.ApprovedBy = &adminID
	request.ApprovedAt = &decidedAt
	if req.Comments != nil {
		request.Comments = req.Comments
	}

	return l.withEmployee(ctx, request)
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context) ([]leave.LeaveResponse, error) {
	employeeID, err := actorID(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := l.LeaveRequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context) ([]leave.LeaveResponse, error) {
	requests, err := l.LeaveRequestRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

func (l *LeaveServiceImpl) withEmployee(ctx context.Context, req leave.LeaveRequest) (leave.LeaveResponse, error) {
	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.ToResponse(req), nil
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	req.EmployeeName = &emp.Name
	req.EmployeeEmail = &emp.Email

	if req.ApprovedBy != nil {
		if approver, err := l.EmployeeRepository.GetByID(ctx, *req.ApprovedBy); err == nil {
			req.ApproverName = &approver.Name
		}
	}

	return leave.ToResponse(req), nil
}
