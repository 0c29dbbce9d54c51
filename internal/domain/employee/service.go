package employee

import "context"

// EmployeeService defines directory administration operations (admin only).
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Deactivate soft-deletes an employee by clearing the active flag.
	Deactivate(ctx context.Context, id string) error
}
