package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("resource already exists")
	ErrStorage         = errors.New("storage failure")
	ErrCatalog         = errors.New("catalog failure")
	ErrFolderNoContent = errors.New("folder has no content")
	ErrJobFailed       = errors.New("job failed")
)

// Custom error type with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Err: ErrUnauthorized}
}

func Validation(msg string) *AppError {
	return &AppError{Code: "VALIDATION", Message: msg, Err: ErrValidation}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func Storage(msg string, err error) *AppError {
	return &AppError{Code: "STORAGE", Message: msg, Err: errors.Join(ErrStorage, err)}
}

func Catalog(msg string, err error) *AppError {
	return &AppError{Code: "CATALOG", Message: msg, Err: errors.Join(ErrCatalog, err)}
}

func FolderNoContent() *AppError {
	return &AppError{Code: "FOLDER_NO_CONTENT", Message: "A folder doesn't have content", Err: ErrFolderNoContent}
}

func JobFailed(msg string, err error) *AppError {
	return &AppError{Code: "JOB_FAILED", Message: msg, Err: errors.Join(ErrJobFailed, err)}
}
