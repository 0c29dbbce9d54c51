// Package memory provides in-memory repository implementations backing the
// service tests. They enforce the same invariants and return the same
// sentinel errors as the PostgreSQL implementations.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/google/uuid"
)

type EmployeeRepository struct {
	mu        sync.Mutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Email == emp.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}

	emp.ID = uuid.NewString()
	emp.CreatedAt = time.Now().UTC()
	emp.UpdatedAt = emp.CreatedAt
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, emp := range r.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(_ context.Context, role employee.Role) ([]employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var employees []employee.Employee
	for _, emp := range r.employees {
		if emp.Role == role {
			employees = append(employees, emp)
		}
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].CreatedAt.After(employees[j].CreatedAt)
	})
	return employees, nil
}

func (r *EmployeeRepository) Update(_ context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.employees[emp.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	for id, existing := range r.employees {
		if id != emp.ID && existing.Email == emp.Email {
			return employee.ErrEmailExists
		}
	}

	emp.CreatedAt = current.CreatedAt
	emp.UpdatedAt = time.Now().UTC()
	r.employees[emp.ID] = emp
	return nil
}
