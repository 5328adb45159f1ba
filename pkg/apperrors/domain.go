package apperrors

import "net/http"

// Factories and predefined variables for the common business errors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
// Owner-scoped lookups funnel through this too: an existing record outside the
// caller's scope renders exactly like a missing one.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidUserRole is returned when an operation is not available for the
// caller's role.
var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

// ErrProfileIncomplete gates the main application until the profile is filled in.
var ErrProfileIncomplete = New(
	CodeProfileIncomplete,
	"profile",
	"Please complete your profile to continue",
	http.StatusForbidden,
)
