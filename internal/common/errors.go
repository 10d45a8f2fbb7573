// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Source errors.
	ErrSourceNotFound = errors.New("readings file not found")

	// Load errors.
	ErrUnreadable   = errors.New("readings file unreadable")
	ErrEmptyDataset = errors.New("readings file has no data")

	// Aggregation errors.
	ErrInsufficientData = errors.New("insufficient data")

	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRecoverable reports whether err is one of the data-absence conditions the
// dashboard renders instead of aborting.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrSourceNotFound) ||
		errors.Is(err, ErrUnreadable) ||
		errors.Is(err, ErrEmptyDataset) ||
		errors.Is(err, ErrInsufficientData)
}
