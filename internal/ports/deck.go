package ports

import (
	"context"

	"slidedeck/internal/domain"
)

// DeckSource defines the interface for loading a deck into a registry
type DeckSource interface {
	// Load reads and validates the deck. Each call builds a fresh registry.
	Load(ctx context.Context) (*domain.Registry, error)

	// Path returns the backing file, or "" for a built-in deck
	Path() string
}

// DeckWatcher notifies about changes to a deck file
type DeckWatcher interface {
	// Events yields one value per settled change of the watched file
	Events() <-chan struct{}

	// Errors yields watcher failures
	Errors() <-chan error

	Close() error
}

// Clipboard defines the interface for copying text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
