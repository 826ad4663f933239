package views

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 10, W: 4, H: 3}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 2, 10, true},
		{"inside", 4, 11, true},
		{"right edge is exclusive", 6, 11, false},
		{"bottom edge is exclusive", 3, 13, false},
		{"above", 3, 9, false},
		{"left of", 1, 11, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestLayout_CardAtPrefersLaterRegion(t *testing.T) {
	l := &Layout{
		cards: []cardRegion{
			{id: "under", rect: Rect{X: 0, Y: 0, W: 10, H: 10}},
			{id: "over", rect: Rect{X: 5, Y: 5, W: 10, H: 10}},
		},
	}

	if id, _ := l.CardAt(6, 6); id != "over" {
		t.Errorf("CardAt(6, 6) = %q, want over", id)
	}
	if id, _ := l.CardAt(1, 1); id != "under" {
		t.Errorf("CardAt(1, 1) = %q, want under", id)
	}
	if _, ok := l.CardAt(20, 20); ok {
		t.Error("expected no card at (20, 20)")
	}
	if diff := cmp.Diff([]string{"under", "over"}, l.CardIDs()); diff != "" {
		t.Errorf("CardIDs mismatch (-want +got):\n%s", diff)
	}
}

func TestLayout_WindowPadsPastEnd(t *testing.T) {
	l := &Layout{lines: []string{"a", "b", "c"}}

	if diff := cmp.Diff([]string{"b", "c", "", ""}, l.Window(1, 4)); diff != "" {
		t.Errorf("Window mismatch (-want +got):\n%s", diff)
	}
	if got := l.MaxOffset(2); got != 1 {
		t.Errorf("MaxOffset(2) = %d, want 1", got)
	}
	if got := l.MaxOffset(10); got != 0 {
		t.Errorf("MaxOffset(10) = %d, want 0", got)
	}
}

func TestLayout_NilIsEmpty(t *testing.T) {
	var l *Layout
	if l.Height() != 0 || len(l.CardIDs()) != 0 {
		t.Error("nil layout should be empty")
	}
	if _, ok := l.Rect("x"); ok {
		t.Error("nil layout should have no rects")
	}
	if got := len(l.Window(0, 3)); got != 3 {
		t.Errorf("Window rows = %d, want 3", got)
	}
}

func TestCenterOffset(t *testing.T) {
	tests := []struct {
		name    string
		rect    Rect
		vh, max int
		want    int
	}{
		{"centers a card", Rect{Y: 50, H: 6}, 20, 100, 43},
		{"clamps at top", Rect{Y: 2, H: 4}, 20, 100, 0},
		{"clamps at bottom", Rect{Y: 118, H: 4}, 20, 100, 100},
		{"negative max", Rect{Y: 5, H: 4}, 20, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CenterOffset(tt.rect, tt.vh, tt.max); got != tt.want {
				t.Errorf("CenterOffset = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLayout_FitToClipsAndPads(t *testing.T) {
	l := &Layout{
		lines: []string{"a", "b", "c", "d", "e", "f"},
		cards: []cardRegion{
			{id: "inside", rect: Rect{Y: 0, W: 4, H: 2}},
			{id: "crossing", rect: Rect{Y: 2, W: 4, H: 3}},
			{id: "past", rect: Rect{Y: 4, W: 4, H: 2}},
		},
	}

	l.fitTo(0, 4)
	if l.Height() != 4 {
		t.Fatalf("height = %d, want 4", l.Height())
	}
	if diff := cmp.Diff([]string{"inside", "crossing"}, l.CardIDs()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
	if r, _ := l.Rect("crossing"); r.H != 2 {
		t.Errorf("crossing card height = %d, want 2", r.H)
	}

	l.fitTo(4, 3)
	if l.Height() != 7 {
		t.Errorf("height after padding = %d, want 7", l.Height())
	}
}
