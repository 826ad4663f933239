package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleSections() []Section {
	return []Section{
		{
			ID:    "intro",
			Title: "Intro",
			Color: "#60A5FA",
			Cards: []Card{
				{ID: "a", Title: "A"},
				{ID: "b", Title: "B", Accent: "#F00"},
			},
		},
		{ID: "empty", Title: "No cards"},
		{
			ID:    "outro",
			Title: "Outro",
			Cards: []Card{{ID: "c", Title: "C"}},
		},
	}
}

func TestNewRegistry_FlatOrdering(t *testing.T) {
	r, err := NewRegistry(Hero{Title: "Deck"}, sampleSections())
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if r.SectionCount() != 3 {
		t.Errorf("SectionCount() = %d, expected 3", r.SectionCount())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, r.CardIDs()); diff != "" {
		t.Errorf("CardIDs mismatch (-want +got):\n%s", diff)
	}

	for i, s := range r.Sections() {
		if s.Order != i {
			t.Errorf("section %s has order %d, expected %d", s.ID, s.Order, i)
		}
	}

	c, ok := r.Card("c")
	if !ok || c.SectionID != "outro" {
		t.Errorf("Card(c) = %+v, %v", c, ok)
	}
	a, _ := r.Card("a")
	if a.Accent != "#60A5FA" {
		t.Errorf("card accent should fall back to section color, got %q", a.Accent)
	}
	b, _ := r.Card("b")
	if b.Accent != "#F00" {
		t.Errorf("explicit accent overwritten, got %q", b.Accent)
	}

	sec, ok := r.SectionOf("b")
	if !ok || sec.ID != "intro" {
		t.Errorf("SectionOf(b) = %s, %v", sec.ID, ok)
	}
}

func TestNewRegistry_CardIDsIsACopy(t *testing.T) {
	r, _ := NewRegistry(Hero{}, sampleSections())
	ids := r.CardIDs()
	ids[0] = "mutated"
	if r.CardIDs()[0] != "a" {
		t.Error("mutating the returned slice changed the registry")
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		target   error
	}{
		{
			name:     "empty section ID",
			sections: []Section{{ID: "  "}},
			target:   ErrInvalidDeck,
		},
		{
			name:     "duplicate section ID",
			sections: []Section{{ID: "x"}, {ID: "x"}},
			target:   ErrDuplicateID,
		},
		{
			name:     "empty card ID",
			sections: []Section{{ID: "x", Cards: []Card{{ID: ""}}}},
			target:   ErrInvalidDeck,
		},
		{
			name: "duplicate card ID across sections",
			sections: []Section{
				{ID: "x", Cards: []Card{{ID: "c"}}},
				{ID: "y", Cards: []Card{{ID: "c"}}},
			},
			target: ErrDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(Hero{}, tt.sections)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("expected errors.Is(%v, %v)", err, tt.target)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("expected *ValidationError, got %T", err)
			}
		})
	}
}

func TestRegistry_EmptyIsValid(t *testing.T) {
	r, err := NewRegistry(Hero{Title: "Empty"}, nil)
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}
	if r.SectionCount() != 0 || len(r.CardIDs()) != 0 {
		t.Error("expected empty registry")
	}

	var nilReg *Registry
	if nilReg.SectionCount() != 0 || nilReg.CardIDs() != nil {
		t.Error("nil registry should behave as empty")
	}
}

func TestRegistry_ActiveTitle(t *testing.T) {
	r, _ := NewRegistry(Hero{Title: "Deck"}, sampleSections())
	tests := []struct {
		index    int
		expected string
	}{
		{0, "Deck"},
		{1, "Intro"},
		{3, "Outro"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := r.ActiveTitle(tt.index); got != tt.expected {
			t.Errorf("ActiveTitle(%d) = %q, expected %q", tt.index, got, tt.expected)
		}
	}
}
