package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"slidedeck/internal/domain"
)

const smallDeck = `
title: Test deck
subtitle: For tests
sections:
  - id: one
    title: One
    color: "#111111"
    cards:
      - id: a
        title: Card A
        delay: 250
        body: |
          **bold**
      - id: b
        title: Card B
        color: "#222222"
  - id: two
    title: Two
    cards:
      - id: c
        title: Card C
`

func writeDeck(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write deck: %v", err)
	}
	return path
}

func TestLoad_FromFile(t *testing.T) {
	repo := NewRepository(writeDeck(t, smallDeck))

	reg, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if reg.Hero().Title != "Test deck" {
		t.Errorf("hero title = %q", reg.Hero().Title)
	}
	if reg.SectionCount() != 2 {
		t.Errorf("SectionCount() = %d, expected 2", reg.SectionCount())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, reg.CardIDs()); diff != "" {
		t.Errorf("CardIDs mismatch (-want +got):\n%s", diff)
	}

	a, _ := reg.Card("a")
	if a.Delay != 250*time.Millisecond {
		t.Errorf("delay = %v, expected 250ms", a.Delay)
	}
	if a.Body != "**bold**" {
		t.Errorf("body = %q, trailing newline should be trimmed", a.Body)
	}
	if a.Accent != "#111111" {
		t.Errorf("accent = %q, expected section color", a.Accent)
	}
	b, _ := reg.Card("b")
	if b.Accent != "#222222" {
		t.Errorf("accent = %q, expected card color", b.Accent)
	}
}

func TestLoad_Builtin(t *testing.T) {
	repo := NewRepository("")
	if repo.Path() != "" {
		t.Errorf("built-in deck should have no path, got %q", repo.Path())
	}

	reg, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if reg.SectionCount() != 4 {
		t.Errorf("SectionCount() = %d, expected 4", reg.SectionCount())
	}
	ids := reg.CardIDs()
	if len(ids) == 0 || ids[0] != "card-tich-tu-tu-ban" {
		t.Errorf("unexpected first card: %v", ids)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
		errMsg  string
	}{
		{
			name:    "malformed yaml",
			content: "sections: [",
			errMsg:  "failed to parse deck",
		},
		{
			name:    "duplicate card",
			content: "sections:\n  - id: s\n    cards:\n      - id: x\n      - id: x\n",
			target:  domain.ErrDuplicateID,
		},
		{
			name:    "negative delay",
			content: "sections:\n  - id: s\n    cards:\n      - id: x\n      - id: y\n        delay: -5\n",
			target:  domain.ErrInvalidDeck,
			errMsg:  "sections[0].cards[1].delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepository(writeDeck(t, tt.content)).Load(context.Background())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected errors.Is(%v, %v)", err, tt.target)
			}
			if tt.errMsg != "" && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error %q does not contain %q", err, tt.errMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := repo.Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewRepository("").Load(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in       string
		expected string
	}{
		{"~/decks/a.yaml", filepath.Join(home, "decks/a.yaml")},
		{"~", home},
		{"/abs/deck.yaml", "/abs/deck.yaml"},
		{"~other/deck.yaml", "~other/deck.yaml"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandHome(tt.in); got != tt.expected {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	path := writeDeck(t, smallDeck)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewWatcher(ctx, path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(smallDeck+"\n# edit\n"), 0644); err != nil {
		t.Fatalf("failed to rewrite deck: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload event")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	path := writeDeck(t, smallDeck)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := NewWatcher(ctx, path, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	sibling := filepath.Join(filepath.Dir(path), "notes.txt")
	if err := os.WriteFile(sibling, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case <-w.Events():
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_BuiltinDeckRejected(t *testing.T) {
	if _, err := NewWatcher(context.Background(), "", 0, nil); err == nil {
		t.Error("expected error watching built-in deck")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(context.Background(), writeDeck(t, smallDeck), 0, nil)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
