package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Academic year errors
var (
	ErrYearNotFound      = NewCustomError(ErrResourceNotFound, "academic year not found")
	ErrYearAlreadyExists = NewCustomError(ErrConflict, "academic year with this name already exists")
)

// Department errors
var (
	ErrDepartmentNotFound      = NewCustomError(ErrResourceNotFound, "department not found")
	ErrDepartmentAlreadyExists = NewCustomError(ErrConflict, "department with this name already exists")
	ErrLinkNotFound            = NewCustomError(ErrResourceNotFound, "department is not linked to this year")
	ErrLinkAlreadyExists       = NewCustomError(ErrConflict, "department is already linked to this year")
)

// Student and ledger errors
var (
	ErrStudentNotFound     = NewCustomError(ErrResourceNotFound, "student not found")
	ErrTransactionNotFound = NewCustomError(ErrResourceNotFound, "transaction not found")
	ErrAdminNotFound       = NewCustomError(ErrResourceNotFound, "admin account not found")
	ErrUsernameTaken       = NewCustomError(ErrConflict, "username already taken")
	ErrSettingNotFound     = NewCustomError(ErrResourceNotFound, "setting not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// Message returns the most specific human readable message carried by err
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}
