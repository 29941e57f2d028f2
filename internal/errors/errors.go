package errors

import (
	"errors"
	"fmt"
	"syscall"
)

// Error types for whereami
type ErrorType string

const (
	// Command line errors
	ErrorTypeUsage ErrorType = "usage"

	// File errors
	ErrorTypeFileNotFound ErrorType = "file_not_found"
	ErrorTypePermission   ErrorType = "permission"
	ErrorTypeIO           ErrorType = "io"

	// Limits
	ErrorTypeCapacity ErrorType = "capacity"
)

// Exit codes returned by the CLI
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// UsageError represents a malformed command line
type UsageError struct {
	Type       ErrorType
	Message    string
	Underlying error
}

// NewUsageError creates a new usage error
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{
		Type:    ErrorTypeUsage,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithCause attaches the error that made the command line unusable
func (e *UsageError) WithCause(err error) *UsageError {
	e.Underlying = err
	return e
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As
func (e *UsageError) Unwrap() error {
	return e.Underlying
}

// FileError represents a failed operation on the source file
type FileError struct {
	Type       ErrorType
	Path       string
	Operation  string
	Underlying error
}

// NewFileError creates a new file error
func NewFileError(op, path string, err error) *FileError {
	errorType := ErrorTypeIO
	switch {
	case errors.Is(err, syscall.ENOENT):
		errorType = ErrorTypeFileNotFound
	case isPermissionError(err):
		errorType = ErrorTypePermission
	}

	return &FileError{
		Type:       errorType,
		Path:       path,
		Operation:  op,
		Underlying: err,
	}
}

// isPermissionError checks if the error is a permission error
func isPermissionError(err error) bool {
	return errors.Is(err, syscall.EACCES) || errors.Is(err, syscall.EPERM)
}

// Error implements the error interface. The platform error code is
// included when the underlying error carries one.
func (e *FileError) Error() string {
	var errno syscall.Errno
	if errors.As(e.Underlying, &errno) {
		return fmt.Sprintf("could not %s file '%s': (%d) %s", e.Operation, e.Path, int(errno), errno.Error())
	}
	return fmt.Sprintf("could not %s file '%s': %v", e.Operation, e.Path, e.Underlying)
}

// Unwrap returns the underlying error
func (e *FileError) Unwrap() error {
	return e.Underlying
}

// CapacityError reports input that exceeds a representable limit
type CapacityError struct {
	Type  ErrorType
	What  string
	Value uint64
	Limit uint64
}

// NewCapacityError creates a new capacity error
func NewCapacityError(what string, value, limit uint64) *CapacityError {
	return &CapacityError{
		Type:  ErrorTypeCapacity,
		What:  what,
		Value: value,
		Limit: limit,
	}
}

// Error implements the error interface
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s %d exceeds the supported maximum of %d", e.What, e.Value, e.Limit)
}

// LineDiagnostic is a non-fatal finding tied to a source line.
type LineDiagnostic struct {
	Path string
	Line int
	Byte byte
}

// Error implements the error interface
func (d *LineDiagnostic) Error() string {
	return fmt.Sprintf("%s:%d: warning: unexpected non-printable character 0x%02x encountered", d.Path, d.Line, d.Byte)
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		return ExitUsage
	}
	return ExitFailure
}
