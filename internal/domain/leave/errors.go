package leave

import "errors"

var (
	ErrInvalidDateRange     = errors.New("invalid leave date range")
	ErrReasonTooShort       = errors.New("leave reason is too short")
	ErrReasonTooLong        = errors.New("leave reason is too long")
	ErrOverlappingRequest   = errors.New("you already have a leave request for these dates")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyDecided       = errors.New("leave request has already been processed")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
	ErrInvalidLeaveType     = errors.New("unknown leave type")
)
