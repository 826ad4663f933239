package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System implements ports.Clipboard with the OS clipboard
type System struct{}

// NewSystem creates a system clipboard adapter
func NewSystem() *System {
	return &System{}
}

// WriteAll copies text to the clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard unavailable: install xclip, xsel or wl-clipboard")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
