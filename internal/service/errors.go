package service

import "errors"

// Sentinel errors for authorization and flow failures raised by the entity
// services. Data-level sentinels (not found, duplicate email) live in the
// repository package.
var (
	ErrPermissionDenied  = errors.New("you do not have permission for this")
	ErrForbidden         = errors.New("you do not have rights to do this")
	ErrWrongPassword     = errors.New("wrong password")
	ErrInvalidID         = errors.New("invalid identifier")
	ErrResetTokenExpired = errors.New("reset token has expired")
	ErrStudentNotFound   = errors.New("student does not exist")
)
