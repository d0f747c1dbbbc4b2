package apperrors

import "net/http"

// Factories and predefined errors for the domain taxonomy. The user
// endpoints answer duplicate emails with 400 rather than 409, matching
// the public API contract.

// ErrNotFound converts a repository miss into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrConflict reports a duplicate unique key.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusBadRequest)
}

// ErrInvalidIdentifier rejects a malformed id before any lookup.
func ErrInvalidIdentifier(domain string) *AppError {
	return New(CodeInvalidIdentifier, domain, "Invalid ID format", http.StatusBadRequest)
}

var ErrEmailAlreadyExists = New(
	CodeConflict,
	"user",
	"User already exists",
	http.StatusBadRequest,
)

var ErrWeakPassword = New(
	CodeWeakPassword,
	"validation",
	"Password must be at least 6 characters long",
	http.StatusBadRequest,
)

var ErrInvalidUserRole = New(
	CodeInvalidUserRole,
	"validation",
	"Invalid user role",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
