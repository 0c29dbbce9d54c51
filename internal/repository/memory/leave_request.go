package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/leave"
	"github.com/google/uuid"
)

type LeaveRequestRepository struct {
	mu       sync.Mutex
	requests map[string]leave.LeaveRequest
}

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: make(map[string]leave.LeaveRequest)}
}

func (r *LeaveRequestRepository) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.requests {
		if existing.EmployeeID == req.EmployeeID && existing.IsActive() &&
			existing.OverlapsRange(req.StartDate, req.EndDate) {
			return leave.LeaveRequest{}, leave.ErrOverlappingRequest
		}
	}

	req.ID = uuid.NewString()
	req.CreatedAt = time.Now().UTC()
	req.UpdatedAt = req.CreatedAt
	r.requests[req.ID] = req
	return req, nil
}

func (r *LeaveRequestRepository) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (r *LeaveRequestRepository) GetActiveByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var requests []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID && req.IsActive() {
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].StartDate.Before(requests[j].StartDate)
	})
	return requests, nil
}

func (r *LeaveRequestRepository) UpdateDecision(_ context.Context, id string, status leave.Status, decidedBy string, decidedAt time.Time, comments *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	if req.Status != leave.StatusPending {
		return leave.ErrAlreadyDecided
	}

	req.Status = status
	req.ApprovedBy = &decidedBy
	req.ApprovedAt = &decidedAt
	if comments != nil {
		req.Comments = comments
	}
	req.UpdatedAt = time.Now().UTC()
	r.requests[id] = req
	return nil
}

func (r *LeaveRequestRepository) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var requests []leave.LeaveRequest
	for _, req := range r.requests {
		if req.EmployeeID == employeeID {
			requests = append(requests, req)
		}
	}
	sortNewestFirst(requests)
	return requests, nil
}

func (r *LeaveRequestRepository) List(_ context.Context) ([]leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]leave.LeaveRequest, 0, len(r.requests))
	for _, req := range r.requests {
		requests = append(requests, req)
	}
	sortNewestFirst(requests)
	return requests, nil
}

func sortNewestFirst(requests []leave.LeaveRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}
