package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// messageTTL is how long a status message stays visible
const messageTTL = 3 * time.Second

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool

	messageGen int
}

// clearMessageMsg expires a status message if nothing replaced it since
type clearMessageMsg struct {
	gen int
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage shows a message and returns a command that clears it after messageTTL
func (s *ViewState) SetMessage(msg string, isErr bool) tea.Cmd {
	s.Message = msg
	s.MessageErr = isErr
	s.messageGen++
	gen := s.messageGen
	return tea.Tick(messageTTL, func(time.Time) tea.Msg {
		return clearMessageMsg{gen: gen}
	})
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// expireMessage handles clearMessageMsg, ignoring stale timers
func (s *ViewState) expireMessage(msg clearMessageMsg) {
	if msg.gen == s.messageGen {
		s.ClearMessage()
	}
}
