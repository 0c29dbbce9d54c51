package auth

import (
	"github.com/amit-109/AttendanceApp-backend/internal/domain/employee"
	"github.com/amit-109/AttendanceApp-backend/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "invalid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken           string                    `json:"access_token"`
	AccessTokenExpiresAt  int64                     `json:"access_token_expires_at"`
	RefreshToken          string                    `json:"refresh_token"`
	RefreshTokenExpiresAt int64                     `json:"refresh_token_expires_at"`
	User                  employee.EmployeeResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type RefreshResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresAt int64  `json:"access_token_expires_at"`
}
