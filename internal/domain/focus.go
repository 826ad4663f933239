package domain

import "slices"

// Key is a navigation input after key-binding resolution
type Key int

const (
	KeyOther    Key = iota
	KeyNext         // arrow down / arrow right
	KeyPrev         // arrow up / arrow left
	KeyActivate     // enter
)

// Scroller brings a card into the visible region, centered.
// It returns false when the card has no rendered element.
type Scroller interface {
	ScrollIntoView(cardID string) bool
}

// FocusNavigator tracks the focused card and moves focus through the flat
// card sequence with wraparound.
type FocusNavigator struct {
	cards    CardSource
	scroller Scroller
	focused  string // "" means unfocused
}

// NewFocusNavigator creates a navigator in the Unfocused state
func NewFocusNavigator(cards CardSource, scroller Scroller) *FocusNavigator {
	return &FocusNavigator{
		cards:    cards,
		scroller: scroller,
	}
}

// Focused returns the focused card ID. A card that is no longer part of
// the current ordering reads as unfocused.
func (n *FocusNavigator) Focused() (string, bool) {
	if n.focused == "" {
		return "", false
	}
	if !slices.Contains(n.cardIDs(), n.focused) {
		return "", false
	}
	return n.focused, true
}

// IsFocused reports whether id is the focused card
func (n *FocusNavigator) IsFocused(id string) bool {
	f, ok := n.Focused()
	return ok && f == id
}

// Reconcile drops a focused ID that no longer exists
func (n *FocusNavigator) Reconcile() {
	if _, ok := n.Focused(); !ok {
		n.focused = ""
	}
}

// Clear returns to the Unfocused state
func (n *FocusNavigator) Clear() {
	n.focused = ""
}

// PointerEnter focuses the card under the pointer
func (n *FocusNavigator) PointerEnter(id string) {
	n.focused = id
}

// PointerLeave unfocuses. The pointer always sets the literal state, even if
// keyboard navigation moved focus elsewhere since the matching enter.
func (n *FocusNavigator) PointerLeave(id string) {
	n.focused = ""
}

// Focus sets focus to id and scrolls it into view. Unknown IDs are ignored.
func (n *FocusNavigator) Focus(id string) bool {
	if !slices.Contains(n.cardIDs(), id) {
		return false
	}
	n.focused = id
	n.scrollIntoView(id)
	return true
}

// HandleKey applies a navigation key. handled reports whether the key was
// consumed, in which case default scrolling must be suppressed.
func (n *FocusNavigator) HandleKey(k Key) (handled bool) {
	ids := n.cardIDs()
	if len(ids) == 0 {
		return false
	}

	current := -1
	if n.focused != "" {
		current = slices.Index(ids, n.focused)
	}

	var next int
	switch k {
	case KeyNext:
		next = (current + 1) % len(ids)
	case KeyPrev:
		if current <= 0 {
			next = len(ids) - 1
		} else {
			next = current - 1
		}
	case KeyActivate:
		if current >= 0 {
			n.scrollIntoView(n.focused)
		}
		return false
	default:
		return false
	}

	n.focused = ids[next]
	n.scrollIntoView(n.focused)
	return true
}

func (n *FocusNavigator) cardIDs() []string {
	if n.cards == nil {
		return nil
	}
	return n.cards.CardIDs()
}

func (n *FocusNavigator) scrollIntoView(id string) {
	if n.scroller == nil {
		return
	}
	// A missing element means the card is not rendered; nothing to do.
	_ = n.scroller.ScrollIntoView(id)
}
