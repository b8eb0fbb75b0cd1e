package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrDependencyFailure wraps failures from the document store, the auth
	// service or object storage that have no more specific meaning to callers.
	ErrDependencyFailure = errors.New("dependency failure")
)

// College errors
var (
	ErrCollegeNotFound = errors.New("college not found")
)

// Programme errors
var (
	ErrProgrammeNotFound = errors.New("programme not found")
)

// User and identity errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrIdentityCreation   = errors.New("failed to create authentication identity")
)

// Announcement errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// Upload errors
var (
	ErrNoFilesProvided = errors.New("no files provided")
	ErrNotAnImage      = errors.New("file is not an image")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds diagnostic details to the error
func (e *CustomError) WithDetails(details string) *CustomError {
	e.Details = details
	return e
}

// NewNotAnImageError creates the validation error returned when an upload
// batch contains a file without an image MIME type.
func NewNotAnImageError(filename string) error {
	return &CustomError{
		Err:     ErrNotAnImage,
		Message: "File " + filename + " is not an image",
	}
}
