package views

// Rect is a region in document coordinates (rows from the top of the deck)
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside r (right/bottom exclusive)
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type cardRegion struct {
	id   string
	rect Rect
}

// Layout is the rendered document: its lines plus where every section and
// card landed. It is rebuilt on every change that can move content.
type Layout struct {
	lines         []string
	sectionStarts []int // index 0 is the hero
	cards         []cardRegion
}

// CardIDs returns the rendered cards in document order. It satisfies
// domain.CardSource, so cards that are not rendered are not navigable.
func (l *Layout) CardIDs() []string {
	if l == nil {
		return nil
	}
	ids := make([]string, len(l.cards))
	for i, c := range l.cards {
		ids[i] = c.id
	}
	return ids
}

// Rect returns the region of a rendered card
func (l *Layout) Rect(id string) (Rect, bool) {
	if l == nil {
		return Rect{}, false
	}
	for _, c := range l.cards {
		if c.id == id {
			return c.rect, true
		}
	}
	return Rect{}, false
}

// CardAt returns the card under a document position. Later cards win on
// overlap, matching paint order.
func (l *Layout) CardAt(x, y int) (string, bool) {
	if l == nil {
		return "", false
	}
	for i := len(l.cards) - 1; i >= 0; i-- {
		if l.cards[i].rect.Contains(x, y) {
			return l.cards[i].id, true
		}
	}
	return "", false
}

// Height returns the number of document rows
func (l *Layout) Height() int {
	if l == nil {
		return 0
	}
	return len(l.lines)
}

// MaxOffset returns the largest scroll offset for a viewport height
func (l *Layout) MaxOffset(viewportHeight int) int {
	return max(0, l.Height()-viewportHeight)
}

// Window returns exactly height rows starting at offset, padding past the end
func (l *Layout) Window(offset, height int) []string {
	out := make([]string, 0, max(0, height))
	for i := range max(0, height) {
		row := offset + i
		if l != nil && row >= 0 && row < len(l.lines) {
			out = append(out, l.lines[row])
		} else {
			out = append(out, "")
		}
	}
	return out
}

// fitTo makes the block that begins at start exactly rows tall. Cards that
// start past the end are dropped and cards crossing it are cut.
func (l *Layout) fitTo(start, rows int) {
	end := start + rows
	if len(l.lines) > end {
		l.lines = l.lines[:end]
		kept := l.cards[:0]
		for _, c := range l.cards {
			if c.rect.Y >= end {
				continue
			}
			c.rect.H = min(c.rect.H, end-c.rect.Y)
			kept = append(kept, c)
		}
		l.cards = kept
	}
	l.padTo(end)
}

// padTo appends blank rows until the document is at least rows tall
func (l *Layout) padTo(rows int) {
	for len(l.lines) < rows {
		l.lines = append(l.lines, "")
	}
}

// CenterOffset returns the scroll offset that centers r in the viewport,
// clamped to [0, maxOffset].
func CenterOffset(r Rect, viewportHeight, maxOffset int) int {
	target := r.Y + r.H/2 - viewportHeight/2
	return min(max(target, 0), max(maxOffset, 0))
}
