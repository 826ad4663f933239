package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/adapters/tui/styles"
	"slidedeck/internal/application/commands"
	"slidedeck/internal/domain"
)

const maxSearchResults = 10

// SearchKeyMap defines key bindings for the search view
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "go to card"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// SearchModel finds a card by title and hands it to the presentation
type SearchModel struct {
	reg     *domain.Registry
	input   textinput.Model
	results []commands.SearchResult
	cursor  int
	width   int
	height  int
}

// NewSearchModel creates a new search view model
func NewSearchModel() *SearchModel {
	input := textinput.New()
	input.Placeholder = "Find a card..."
	input.Focus()

	return &SearchModel{
		input: input,
	}
}

// Init initializes the search view
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetRegistry sets the deck to search
func (m *SearchModel) SetRegistry(reg *domain.Registry) {
	m.reg = reg
	m.results = nil
	m.cursor = 0
}

// Reset resets the search view
func (m *SearchModel) Reset() {
	m.input.SetValue("")
	m.results = nil
	m.cursor = 0
	m.input.Focus()
}

// Results returns the current matches, best first
func (m *SearchModel) Results() []commands.SearchResult {
	return m.results
}

// Update handles messages for the search view
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Cancel):
			return m, func() tea.Msg {
				return SwitchToPresentationMsg{}
			}

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < min(len(m.results), maxSearchResults)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Select):
			if m.cursor >= 0 && m.cursor < len(m.results) {
				id := m.results[m.cursor].CardID
				return m, func() tea.Msg {
					return SearchSelectMsg{CardID: id}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.search()
	}
	return m, cmd
}

// search runs synchronously; a deck is small enough to match per keystroke
func (m *SearchModel) search() {
	results, err := commands.NewSearchCardsCommand(m.reg, m.input.Value()).Execute(context.Background())
	if err != nil {
		results = nil
	}
	m.results = results
	m.cursor = 0
}

// SearchSelectMsg is sent when a search result is selected
type SearchSelectMsg struct {
	CardID string
}

// View renders the search view
func (m *SearchModel) View() string {
	v := NewViewBuilder().Title("Find card")
	v.Line(styles.InputFocused.Render(m.input.View())).BlankLine()

	switch {
	case m.input.Value() == "":
		v.Muted("Type to search card titles")
	case len(m.results) == 0:
		v.Muted("No cards found")
	default:
		v.Line(RenderSubtitle(fmt.Sprintf("%d results", len(m.results)))).BlankLine()
		for i, r := range m.results[:min(len(m.results), maxSearchResults)] {
			v.Line(m.renderResult(r, i == m.cursor))
		}
		if len(m.results) > maxSearchResults {
			v.Muted(fmt.Sprintf("... and %d more", len(m.results)-maxSearchResults))
		}
	}

	v.BlankLine().Help(SearchKeys.Up, SearchKeys.Down, SearchKeys.Select, SearchKeys.Cancel)
	return v.String()
}

func (m *SearchModel) renderResult(r commands.SearchResult, selected bool) string {
	text := fmt.Sprintf("%s  %s", r.Title, RenderMuted(r.SectionTitle))
	if selected {
		return styles.Selected.Render("▸ " + r.Title + "  " + r.SectionTitle)
	}
	return "  " + text
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
