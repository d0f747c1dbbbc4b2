package apperrors

type ErrorCode string

const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Validation
	CodeValidationFailed  ErrorCode = "VALIDATION_FAILED"
	CodeInvalidIdentifier ErrorCode = "INVALID_IDENTIFIER"
	CodeWeakPassword      ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole   ErrorCode = "INVALID_USER_ROLE"

	// Resources
	CodeNotFound ErrorCode = "NOT_FOUND"
	CodeConflict ErrorCode = "CONFLICT"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
