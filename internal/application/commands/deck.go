package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"slidedeck/internal/application"
	"slidedeck/internal/domain"
	"slidedeck/internal/ports"
)

// load reads a deck, reporting a missing file as application.ErrNotFound
func load(ctx context.Context, source ports.DeckSource) (*domain.Registry, error) {
	reg, err := source.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: deck %s", application.ErrNotFound, source.Path())
	}
	return reg, err
}

// LoadDeckCommand loads and validates a deck
type LoadDeckCommand struct {
	source ports.DeckSource
}

// NewLoadDeckCommand creates a new LoadDeckCommand
func NewLoadDeckCommand(source ports.DeckSource) *LoadDeckCommand {
	return &LoadDeckCommand{source: source}
}

// Execute runs the load command
func (c *LoadDeckCommand) Execute(ctx context.Context) (*domain.Registry, error) {
	return load(ctx, c.source)
}

// OutlineEntry is one section of a deck outline
type OutlineEntry struct {
	Index   int // active-section index: hero is 0, sections start at 1
	Section domain.Section
}

// Outline describes the navigable structure of a deck
type Outline struct {
	Hero     domain.Hero
	Sections []OutlineEntry
	CardIDs  []string // flat keyboard traversal order
}

// OutlineCommand builds the outline of a deck
type OutlineCommand struct {
	source ports.DeckSource
}

// NewOutlineCommand creates a new OutlineCommand
func NewOutlineCommand(source ports.DeckSource) *OutlineCommand {
	return &OutlineCommand{source: source}
}

// Execute runs the outline command
func (c *OutlineCommand) Execute(ctx context.Context) (*Outline, error) {
	reg, err := load(ctx, c.source)
	if err != nil {
		return nil, err
	}
	return BuildOutline(reg), nil
}

// BuildOutline derives an outline from a loaded registry
func BuildOutline(reg *domain.Registry) *Outline {
	out := &Outline{
		Hero:    reg.Hero(),
		CardIDs: reg.CardIDs(),
	}
	for i, s := range reg.Sections() {
		out.Sections = append(out.Sections, OutlineEntry{Index: i + 1, Section: s})
	}
	return out
}

// ValidateDeckCommand checks a deck without presenting it
type ValidateDeckCommand struct {
	source ports.DeckSource
}

// NewValidateDeckCommand creates a new ValidateDeckCommand
func NewValidateDeckCommand(source ports.DeckSource) *ValidateDeckCommand {
	return &ValidateDeckCommand{source: source}
}

// ValidationReport summarizes a valid deck
type ValidationReport struct {
	Sections int
	Cards    int
	Empty    []string // sections without cards
}

// Execute runs the validate command
func (c *ValidateDeckCommand) Execute(ctx context.Context) (*ValidationReport, error) {
	reg, err := load(ctx, c.source)
	if err != nil {
		return nil, err
	}

	report := &ValidationReport{
		Sections: reg.SectionCount(),
		Cards:    len(reg.CardIDs()),
	}
	for _, s := range reg.Sections() {
		if len(s.Cards) == 0 {
			report.Empty = append(report.Empty, s.ID)
		}
	}
	return report, nil
}
