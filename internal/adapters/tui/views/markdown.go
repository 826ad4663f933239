package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// minWrapWidth keeps glamour from wrapping every word on its own line
const minWrapWidth = 10

type markdownKey struct {
	id    string
	width int
}

// MarkdownRenderer renders card bodies with glamour. One renderer is kept per
// wrap width, since cards in a grid row are narrower than a lone card.
type MarkdownRenderer struct {
	style     string // glamour standard style; "" or "auto" detects the terminal
	renderers map[int]*glamour.TermRenderer
	cache     map[markdownKey]string
	log       *zap.Logger
}

// NewMarkdownRenderer creates a renderer using a glamour standard style
func NewMarkdownRenderer(style string, log *zap.Logger) *MarkdownRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &MarkdownRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[markdownKey]string),
		log:       log,
	}
}

// Reset drops all cached output, e.g. after the deck is reloaded
func (r *MarkdownRenderer) Reset() {
	r.cache = make(map[markdownKey]string)
}

// Render returns the body of a card wrapped to width, trimmed of blank edge lines
func (r *MarkdownRenderer) Render(id, body string, width int) string {
	width = max(width, minWrapWidth)
	key := markdownKey{id: id, width: width}
	if out, ok := r.cache[key]; ok {
		return out
	}

	out := body
	if tr := r.renderer(width); tr != nil && body != "" {
		rendered, err := tr.Render(body)
		if err != nil {
			r.log.Debug("markdown render failed", zap.String("card", id), zap.Error(err))
		} else {
			out = rendered
		}
	}

	out = trimBlankLines(out)
	r.cache[key] = out
	return out
}

// renderer returns the glamour renderer for a wrap width, nil if glamour fails
func (r *MarkdownRenderer) renderer(width int) *glamour.TermRenderer {
	if tr, ok := r.renderers[width]; ok {
		return tr
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if r.style == "" || r.style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(r.style))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		r.log.Warn("glamour init failed, falling back to plain text", zap.Error(err))
		tr = nil
	}
	r.renderers[width] = tr
	return tr
}

func trimBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(ansi.Strip(lines[start])) == "" {
		start++
	}
	for end > start && strings.TrimSpace(ansi.Strip(lines[end-1])) == "" {
		end--
	}
	return strings.Join(lines[start:end], "\n")
}
