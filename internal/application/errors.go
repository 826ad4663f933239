package application

import (
	"errors"

	"slidedeck/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = domain.ErrDuplicateID
	ErrInvalidDeck = domain.ErrInvalidDeck
)

// ValidationError represents a deck validation failure with details
type ValidationError = domain.ValidationError
