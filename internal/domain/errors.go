package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID = errors.New("duplicate ID")
	ErrInvalidDeck = errors.New("invalid deck")
)

// ValidationError represents a deck validation failure with details
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
