package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already in use")
	ErrEmployeeInactive = errors.New("employee account is deactivated")
)
