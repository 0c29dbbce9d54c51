package employee

import "context"

// EmployeeRepository defines data access for the employee directory.
type EmployeeRepository interface {
	// Create persists a new employee; returns ErrEmailExists when the email
	// is already taken.
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// List returns employees with the given role, newest first.
	List(ctx context.Context, role Role) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
}
