package domain

import "math"

// ScrollTracker derives the active section index from the scroll offset.
// Index 0 is the hero region; 1..SectionCount are the content sections.
type ScrollTracker struct {
	sectionCount int
	active       int
}

// NewScrollTracker creates a tracker for a deck with sectionCount sections
func NewScrollTracker(sectionCount int) *ScrollTracker {
	if sectionCount < 0 {
		sectionCount = 0
	}
	return &ScrollTracker{sectionCount: sectionCount}
}

// Update recomputes the active index as round(offset / viewportHeight),
// clamped to [0, SectionCount]. A non-positive viewport height leaves the
// previous value untouched.
func (t *ScrollTracker) Update(offset, viewportHeight int) int {
	if viewportHeight <= 0 {
		return t.active
	}
	index := int(math.Round(float64(offset) / float64(viewportHeight)))
	t.active = clamp(index, 0, t.sectionCount)
	return t.active
}

// Active returns the current active section index
func (t *ScrollTracker) Active() int {
	return t.active
}

// SectionCount returns the number of content sections tracked
func (t *ScrollTracker) SectionCount() int {
	return t.sectionCount
}

// IsLast reports whether the last section is active
func (t *ScrollTracker) IsLast() bool {
	return t.active == t.sectionCount
}

// NextSection returns the scroll offset of the section after the active one.
// ok is false when the last section is already active or the viewport is
// degenerate.
func (t *ScrollTracker) NextSection(viewportHeight int) (target int, ok bool) {
	if viewportHeight <= 0 || t.active >= t.sectionCount {
		return 0, false
	}
	return (t.active + 1) * viewportHeight, true
}

// SectionOffset returns the scroll offset that snaps to the given index
func (t *ScrollTracker) SectionOffset(index, viewportHeight int) int {
	if viewportHeight <= 0 {
		return 0
	}
	return clamp(index, 0, t.sectionCount) * viewportHeight
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
