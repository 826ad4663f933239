package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"slidedeck/internal/adapters/tui/styles"
)

// keyColumn is the width of the key column in help tables
const keyColumn = 16

// RenderKeyHelp formats a key binding as "key desc"
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders key bindings on one line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a status message, red for errors
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

func RenderSubtitle(subtitle string) string {
	return styles.Subtitle.Render(subtitle)
}

func RenderMuted(text string) string {
	return styles.MutedText.Render(text)
}

// RenderHelpRow renders one row of a help table: a padded key column and a description
func RenderHelpRow(keys, desc string) string {
	if pad := keyColumn - len([]rune(keys)); pad > 0 {
		keys += strings.Repeat(" ", pad)
	}
	return "  " + styles.HelpKey.Render(keys) + styles.HelpDesc.Render(desc)
}

// ViewBuilder assembles full-screen views (help, search, errors) line by line
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title followed by a blank line
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Subtitle adds a subtitle followed by a blank line
func (v *ViewBuilder) Subtitle(subtitle string) *ViewBuilder {
	v.b.WriteString(RenderSubtitle(subtitle))
	v.b.WriteString("\n\n")
	return v
}

// Heading adds a group label
func (v *ViewBuilder) Heading(label string) *ViewBuilder {
	return v.Line(styles.InputLabel.Render(label))
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	return v.Line(RenderMuted(text))
}

// Message adds a message if non-empty
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Bindings adds one help table row per binding
func (v *ViewBuilder) Bindings(bindings ...key.Binding) *ViewBuilder {
	for _, b := range bindings {
		h := b.Help()
		v.Line(RenderHelpRow(h.Key, h.Desc))
	}
	return v
}

// Help adds a single help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
