package models

import "fmt"

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError regardless of Resource.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if !ok {
		_, ok = target.(*NotFoundError)
	}
	return ok
}

// ConflictError represents a referential-integrity block or a uniqueness
// violation, e.g. deleting a department that still has users.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	if e.Reason == "" {
		return "conflict"
	}
	return e.Reason
}

func (e ConflictError) Is(target error) bool {
	_, ok := target.(ConflictError)
	if !ok {
		_, ok = target.(*ConflictError)
	}
	return ok
}

// ValidationError represents malformed or missing input caught at the
// boundary.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	if e.Reason == "" {
		return "validation failed"
	}
	return e.Reason
}

func (e ValidationError) Is(target error) bool {
	_, ok := target.(ValidationError)
	if !ok {
		_, ok = target.(*ValidationError)
	}
	return ok
}

// ErrInvalidCredentials is deliberately generic: it must not reveal whether
// the username exists.
var ErrInvalidCredentials = fmt.Errorf("invalid username or password")

// Sentinels for errors.Is matching.
var (
	ErrNotFound = NotFoundError{}
	ErrConflict = ConflictError{}
)
