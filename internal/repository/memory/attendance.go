package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/attendance"
	"github.com/google/uuid"
)

type AttendanceRepository struct {
	mu      sync.Mutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.Attendance)}
}

func (r *AttendanceRepository) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.records {
		if existing.EmployeeID == att.EmployeeID && existing.Date.Equal(att.Date) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
	}

	att.ID = uuid.NewString()
	att.CreatedAt = time.Now().UTC()
	att.UpdatedAt = att.CreatedAt
	r.records[att.ID] = att
	return att, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, att := range r.records {
		if att.EmployeeID == employeeID && att.Date.Equal(date) {
			copied := att
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) SetCheckOut(_ context.Context, id string, checkOut time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	att, ok := r.records[id]
	if !ok {
		return attendance.ErrAttendanceNotFound
	}
	if att.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}

	att.CheckOut = &checkOut
	att.UpdatedAt = time.Now().UTC()
	r.records[id] = att
	return nil
}

func (r *AttendanceRepository) ListByEmployee(_ context.Context, employeeID string) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var records []attendance.Attendance
	for _, att := range r.records {
		if att.EmployeeID == employeeID {
			records = append(records, att)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

func (r *AttendanceRepository) List(_ context.Context) ([]attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := make([]attendance.Attendance, 0, len(r.records))
	for _, att := range r.records {
		records = append(records, att)
	}
	sort.Slice(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].CheckIn.After(records[j].CheckIn)
	})
	return records, nil
}
