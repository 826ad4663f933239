package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// fallbackEditors are tried in order when neither $VISUAL nor $EDITOR is set
var fallbackEditors = []string{"nvim", "vim", "vi", "nano"}

// Opener implements ports.EditorOpener
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates a new editor opener backed by the process environment
func NewOpener() *Opener {
	return &Opener{
		getenv:   os.Getenv,
		lookPath: exec.LookPath,
	}
}

// Command returns an exec.Cmd that edits path in the user's editor.
// Editor values with arguments ("code --wait") are split on whitespace.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	if path == "" {
		return nil, fmt.Errorf("deck is built in: pass a deck file to edit it")
	}

	fields := strings.Fields(o.findEditor())
	if len(fields) == 0 {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

func (o *Opener) findEditor() string {
	// $VISUAL wins over $EDITOR for full-screen editing
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(o.getenv(name)); v != "" {
			return v
		}
	}

	for _, ed := range fallbackEditors {
		if p, err := o.lookPath(ed); err == nil {
			return p
		}
	}

	return ""
}
