package views

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const scrollFPS = 60

// scrollFrameMsg advances a smooth scroll animation by one frame
type scrollFrameMsg struct {
	gen int
}

// SmoothScroller owns the scroll offset and animates it toward a target with
// a critically damped spring. A new target retargets a running animation
// and keeps its velocity.
type SmoothScroller struct {
	spring  harmonica.Spring
	enabled bool

	pos, vel  float64
	target    float64
	animating bool
	gen       int
}

// NewSmoothScroller creates a scroller. With enabled false every scroll
// request jumps immediately.
func NewSmoothScroller(enabled bool, frequency, damping float64) *SmoothScroller {
	return &SmoothScroller{
		spring:  harmonica.NewSpring(harmonica.FPS(scrollFPS), frequency, damping),
		enabled: enabled,
	}
}

// Offset returns the current integer scroll offset
func (s *SmoothScroller) Offset() int {
	return int(math.Round(s.pos))
}

// Target returns where the scroller is heading (the offset when idle)
func (s *SmoothScroller) Target() int {
	if !s.animating {
		return s.Offset()
	}
	return int(math.Round(s.target))
}

// Animating reports whether a smooth scroll is in flight
func (s *SmoothScroller) Animating() bool {
	return s.animating
}

// JumpTo moves immediately and cancels any animation
func (s *SmoothScroller) JumpTo(offset int) {
	s.pos = float64(offset)
	s.vel = 0
	s.target = s.pos
	if s.animating {
		s.animating = false
		s.gen++
	}
}

// ScrollTo starts or retargets an animation. The returned command drives
// the frame loop and is nil when a loop is already running or no animation
// is needed.
func (s *SmoothScroller) ScrollTo(offset int) tea.Cmd {
	if !s.enabled {
		s.JumpTo(offset)
		return nil
	}

	s.target = float64(offset)
	if s.animating {
		return nil
	}
	if s.settled() {
		s.pos = s.target
		return nil
	}

	s.animating = true
	s.gen++
	return s.frame()
}

// Step handles a frame message. changed reports whether the offset moved;
// the command schedules the next frame while the animation continues.
func (s *SmoothScroller) Step(msg scrollFrameMsg) (changed bool, cmd tea.Cmd) {
	if !s.animating || msg.gen != s.gen {
		return false, nil
	}

	before := s.Offset()
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if s.settled() {
		s.pos = s.target
		s.vel = 0
		s.animating = false
		return s.Offset() != before, nil
	}
	return s.Offset() != before, s.frame()
}

// Clamp keeps the offset and target inside [0, maxOffset]
func (s *SmoothScroller) Clamp(maxOffset int) {
	hi := float64(max(maxOffset, 0))
	s.target = math.Min(math.Max(s.target, 0), hi)
	if s.pos < 0 || s.pos > hi {
		s.JumpTo(int(math.Min(math.Max(s.pos, 0), hi)))
	}
}

func (s *SmoothScroller) settled() bool {
	return math.Abs(s.target-s.pos) < 0.5 && math.Abs(s.vel) < 0.5
}

func (s *SmoothScroller) frame() tea.Cmd {
	gen := s.gen
	return tea.Tick(time.Second/scrollFPS, func(time.Time) tea.Msg {
		return scrollFrameMsg{gen: gen}
	})
}
