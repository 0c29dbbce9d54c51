package auth

import (
	"context"

	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
)

// AuthService defines the authentication boundary consumed by the HTTP layer.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (RefreshResponse, error)

	// Me resolves the authenticated caller from the claims in ctx.
	Me(ctx context.Context) (employee.EmployeeResponse, error)
}
