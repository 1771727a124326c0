package domain

// Code is a stable numeric identifier carried on every application error
// and surfaced to clients in the response envelope.
type Code int

const (
	// Common
	CodeInternal         Code = 1000
	CodeInvalidRequest   Code = 1001
	CodeUnauthorized     Code = 1002
	CodeForbidden        Code = 1003
	CodeResourceNotFound Code = 1004
	CodeUnknown          Code = 9999

	// User
	CodeUserNotFound       Code = 2001
	CodeUserExisted        Code = 2002
	CodeInvalidCredentials Code = 2003
	CodeStaleVersion       Code = 2004

	// Token
	CodeTokenExpired Code = 3001
	CodeTokenInvalid Code = 3002

	// Storage
	CodeDatabase Code = 4001

	// Role
	CodeRoleNotFound Code = 5001
	CodeRoleExisted  Code = 5002

	// Permission
	CodePermissionNotFound Code = 6001
	CodePermissionExisted  Code = 6002
)

// Error is the single application error type. Instances below are used as
// sentinels and compared with errors.Is.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrInternal           = &Error{CodeInternal, "internal server error"}
	ErrInvalidRequest     = &Error{CodeInvalidRequest, "invalid request parameters"}
	ErrUnauthorized       = &Error{CodeUnauthorized, "unauthorized access"}
	ErrForbidden          = &Error{CodeForbidden, "access denied"}
	ErrUserNotFound       = &Error{CodeUserNotFound, "user not found"}
	ErrUserExisted        = &Error{CodeUserExisted, "user already exists"}
	ErrInvalidCredentials = &Error{CodeInvalidCredentials, "invalid username or password"}
	ErrStaleVersion       = &Error{CodeStaleVersion, "user was modified concurrently"}
	ErrTokenExpired       = &Error{CodeTokenExpired, "token expired"}
	ErrTokenInvalid       = &Error{CodeTokenInvalid, "invalid token"}
	ErrDatabase           = &Error{CodeDatabase, "database operation failed"}
	ErrRoleNotFound       = &Error{CodeRoleNotFound, "role not found"}
	ErrRoleExisted        = &Error{CodeRoleExisted, "role already exists"}
	ErrPermissionNotFound = &Error{CodePermissionNotFound, "permission not found"}
	ErrPermissionExisted  = &Error{CodePermissionExisted, "permission already exists"}
)

// ValidationError aggregates per-field violations for a single request.
// The boundary renders Fields in the envelope result instead of failing on
// the first violation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }
