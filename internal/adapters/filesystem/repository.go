package filesystem

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"slidedeck/internal/domain"
)

//go:embed decks/default.yaml
var builtinDecks embed.FS

const builtinDeckFile = "decks/default.yaml"

// deckFile is the on-disk YAML layout of a deck
type deckFile struct {
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
	Tagline  string        `yaml:"tagline"`
	Sections []sectionFile `yaml:"sections"`
}

type sectionFile struct {
	ID       string     `yaml:"id"`
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Icon     string     `yaml:"icon"`
	Color    string     `yaml:"color"`
	Cards    []cardFile `yaml:"cards"`
}

type cardFile struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Color string `yaml:"color"`
	Delay int    `yaml:"delay"` // milliseconds
}

// Repository implements ports.DeckSource using a YAML file.
// An empty path serves the built-in deck.
type Repository struct {
	deckPath string
}

// NewRepository creates a new filesystem deck repository
func NewRepository(deckPath string) *Repository {
	return &Repository{deckPath: ExpandHome(deckPath)}
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}

// Path returns the deck file path, or "" for the built-in deck
func (r *Repository) Path() string {
	return r.deckPath
}

// Load reads, parses and validates the deck
func (r *Repository) Load(ctx context.Context) (*domain.Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		err  error
	)
	if r.deckPath == "" {
		data, err = builtinDecks.ReadFile(builtinDeckFile)
	} else {
		data, err = os.ReadFile(r.deckPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML deck data into a validated registry
func Parse(data []byte) (*domain.Registry, error) {
	var df deckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}

	sections := make([]domain.Section, 0, len(df.Sections))
	for i, s := range df.Sections {
		sec := domain.Section{
			ID:       s.ID,
			Title:    s.Title,
			Subtitle: s.Subtitle,
			Icon:     s.Icon,
			Color:    s.Color,
		}
		for j, c := range s.Cards {
			if c.Delay < 0 {
				return nil, &domain.ValidationError{
					Field:   fmt.Sprintf("sections[%d].cards[%d].delay", i, j),
					Message: fmt.Sprintf("card %q has negative delay %d", c.ID, c.Delay),
					Err:     domain.ErrInvalidDeck,
				}
			}
			sec.Cards = append(sec.Cards, domain.Card{
				ID:     c.ID,
				Title:  c.Title,
				Body:   strings.TrimRight(c.Body, "\n"),
				Accent: c.Color,
				Delay:  time.Duration(c.Delay) * time.Millisecond,
			})
		}
		sections = append(sections, sec)
	}

	return domain.NewRegistry(domain.Hero{
		Title:    df.Title,
		Subtitle: df.Subtitle,
		Tagline:  df.Tagline,
	}, sections)
}
