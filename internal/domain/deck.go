package domain

import (
	"fmt"
	"strings"
	"time"
)

// Section is one full-viewport slide of the deck
type Section struct {
	ID       string
	Order    int // 0-based position, assigned by NewRegistry
	Title    string
	Subtitle string
	Icon     string
	Color    string // hex accent, e.g. "#60A5FA"
	Cards    []Card
}

// Card is a focusable block inside a section
type Card struct {
	ID        string
	SectionID string
	Title     string
	Body      string        // markdown
	Accent    string        // hex accent, falls back to the section color
	Delay     time.Duration // entrance animation delay
}

// Hero describes the intro region shown before the first section (index 0)
type Hero struct {
	Title    string
	Subtitle string
	Tagline  string
}

// CardSource supplies the flat, ordered card universe used for keyboard
// navigation. Implementations recompute the list on every call.
type CardSource interface {
	CardIDs() []string
}

// Registry is the immutable, ordered set of sections and cards of a deck
type Registry struct {
	hero     Hero
	sections []Section
	cardIDs  []string
	cards    map[string]Card
}

// NewRegistry validates the sections and freezes them into a Registry.
// Section order follows slice order; card SectionID is filled in from the
// owning section.
func NewRegistry(hero Hero, sections []Section) (*Registry, error) {
	r := &Registry{
		hero:  hero,
		cards: make(map[string]Card),
	}

	seenSections := make(map[string]int, len(sections))
	for i, s := range sections {
		id := strings.TrimSpace(s.ID)
		if id == "" {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("sections[%d].id", i),
				Message: "section ID is required",
				Err:     ErrInvalidDeck,
			}
		}
		if prev, ok := seenSections[id]; ok {
			return nil, &ValidationError{
				Field:   fmt.Sprintf("sections[%d].id", i),
				Message: fmt.Sprintf("duplicate section ID %q (first used by sections[%d])", id, prev),
				Err:     ErrDuplicateID,
			}
		}
		seenSections[id] = i

		sec := s
		sec.ID = id
		sec.Order = i
		sec.Cards = make([]Card, 0, len(s.Cards))
		for j, c := range s.Cards {
			cid := strings.TrimSpace(c.ID)
			if cid == "" {
				return nil, &ValidationError{
					Field:   fmt.Sprintf("sections[%d].cards[%d].id", i, j),
					Message: "card ID is required",
					Err:     ErrInvalidDeck,
				}
			}
			if owner, ok := r.cards[cid]; ok {
				return nil, &ValidationError{
					Field:   fmt.Sprintf("sections[%d].cards[%d].id", i, j),
					Message: fmt.Sprintf("duplicate card ID %q (already in section %q)", cid, owner.SectionID),
					Err:     ErrDuplicateID,
				}
			}
			card := c
			card.ID = cid
			card.SectionID = id
			if card.Accent == "" {
				card.Accent = sec.Color
			}
			sec.Cards = append(sec.Cards, card)
			r.cards[cid] = card
			r.cardIDs = append(r.cardIDs, cid)
		}
		r.sections = append(r.sections, sec)
	}

	return r, nil
}

// Hero returns the intro region metadata
func (r *Registry) Hero() Hero {
	return r.hero
}

// SectionCount returns the number of content sections (the hero is not counted)
func (r *Registry) SectionCount() int {
	if r == nil {
		return 0
	}
	return len(r.sections)
}

// Sections returns a copy of the ordered sections
func (r *Registry) Sections() []Section {
	if r == nil {
		return nil
	}
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Section returns the section at the given 0-based order
func (r *Registry) Section(i int) (Section, bool) {
	if r == nil || i < 0 || i >= len(r.sections) {
		return Section{}, false
	}
	return r.sections[i], true
}

// CardIDs returns the flat card ordering across all sections.
// The slice is freshly allocated on every call.
func (r *Registry) CardIDs() []string {
	if r == nil {
		return nil
	}
	out := make([]string, len(r.cardIDs))
	copy(out, r.cardIDs)
	return out
}

// Card looks up a card by ID
func (r *Registry) Card(id string) (Card, bool) {
	if r == nil {
		return Card{}, false
	}
	c, ok := r.cards[id]
	return c, ok
}

// SectionOf returns the section that owns the card
func (r *Registry) SectionOf(cardID string) (Section, bool) {
	c, ok := r.Card(cardID)
	if !ok {
		return Section{}, false
	}
	for _, s := range r.sections {
		if s.ID == c.SectionID {
			return s, true
		}
	}
	return Section{}, false
}

// ActiveTitle returns the display title for an active section index,
// where 0 is the hero and i>0 is Sections()[i-1].
func (r *Registry) ActiveTitle(index int) string {
	if index <= 0 {
		return r.hero.Title
	}
	if s, ok := r.Section(index - 1); ok {
		return s.Title
	}
	return ""
}
