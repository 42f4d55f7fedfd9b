package domain

import (
	"errors"
	"fmt"
	"strconv"
)

// Error categories. Every journal error matches exactly one of these with
// errors.Is, which is what the HTTP layer and the remote client map on.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("unavailable")
)

// NotFoundError names the entry or tag that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}

	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewEntryNotFoundError is the error every lookup by entry id returns.
func NewEntryNotFoundError(id int64) error {
	return NewNotFoundError("entry", strconv.FormatInt(id, 10))
}

// ConflictError reports a store state the operation could not reconcile,
// such as a tag that vanished between insert and read-back.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Entity + " conflict: " + e.Reason
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError is one rejected input. Field uses the JSON path of the
// offending value, e.g. "title" or "entries[2].content".
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "invalid input: " + e.Message
	}

	return "invalid " + e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue also records the rejected value for logs.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// UnavailableError means a dependency (the database or a remote journal)
// could not serve the request.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason == "" {
		return e.Service + " is unavailable"
	}

	return e.Service + " is unavailable: " + e.Reason
}

func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

func IsNotFound(err error) bool    { return errors.Is(err, ErrNotFound) }
func IsConflict(err error) bool    { return errors.Is(err, ErrConflict) }
func IsValidation(err error) bool  { return errors.Is(err, ErrValidation) }
func IsUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
