package ports

import "os/exec"

// EditorOpener defines the interface for opening the deck file in an external editor
type EditorOpener interface {
	// Command returns an exec.Cmd for opening a file in the editor.
	// It is handed to bubbletea's ExecProcess so the TUI can suspend.
	Command(path string) (*exec.Cmd, error)
}
