package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrLoginRequired is returned when a booking is attempted without a session.
	ErrLoginRequired = errors.New("please log in to book a slot")
	// ErrInvalidTransition means the action is not defined for the current view.
	ErrInvalidTransition = errors.New("action not allowed in current view")
	// ErrConfirmationPending means a confirmation must be acknowledged first.
	ErrConfirmationPending = errors.New("booking confirmation is awaiting acknowledgement")
	// ErrTerminated is returned for any action after logout.
	ErrTerminated = errors.New("application has exited")
)

// LookupError represents a failed turf lookup (connectivity or query).
type LookupError struct {
	Category string
	Err      error
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("turf lookup for category %q failed: %v", e.Category, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// NewLookupError wraps err as a lookup failure for category.
func NewLookupError(category string, err error) *LookupError {
	return &LookupError{Category: category, Err: err}
}

// IsLookupError reports whether err came from a turf lookup.
func IsLookupError(err error) bool {
	var lookupErr *LookupError
	return errors.As(err, &lookupErr)
}

// StoreError represents a failure opening, migrating or writing the store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the store operation that produced it.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
