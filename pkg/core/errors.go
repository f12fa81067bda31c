package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly  = errors.New("backend is in read-only mode")
	ErrNotFound  = errors.New("note not found")
	ErrMissingID = errors.New("note ID cannot be empty")
	ErrInvalidID = errors.New("invalid note ID")

	// ErrUnsupported is returned when the backend lacks an optional capability.
	ErrUnsupported = errors.New("operation not supported by backend")

	// ErrRemoteOperationFailed is the single kind every note service failure
	// is reported as. Use errors.As with *RemoteError to learn the operation.
	ErrRemoteOperationFailed = errors.New("remote operation failed")
)

// Op names a note service operation.
type Op string

const (
	OpList       Op = "list"
	OpGet        Op = "get"
	OpSave       Op = "save"
	OpDelete     Op = "delete"
	OpRelated    Op = "related"
	OpCategorize Op = "categorize"
	OpCategories Op = "categories"
)

// RemoteError wraps a backend failure with the operation that produced it.
type RemoteError struct {
	Op  Op
	ID  string
	Err error
}

func (e *RemoteError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
}

// Unwrap exposes both the failure kind and the underlying cause.
func (e *RemoteError) Unwrap() []error {
	return []error{ErrRemoteOperationFailed, e.Err}
}
