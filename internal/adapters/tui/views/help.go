package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToPresentationMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	k := PresentationKeys
	return NewViewBuilder().
		Title("Slidedeck Help").
		Subtitle("Scroll through sections, step through cards").
		Heading("Cards").
		Bindings(k.NextCard, k.PrevCard, k.Activate).
		Line(RenderHelpRow("mouse", "hover to focus, click to center")).
		BlankLine().
		Heading("Sections").
		Bindings(k.NextSection, k.PrevSection, k.JumpSection).
		Line(RenderHelpRow("click dot", "jump to section")).
		BlankLine().
		Heading("Scrolling").
		Bindings(k.LineDown, k.LineUp, k.PageDown, k.PageUp, k.Top, k.Bottom).
		BlankLine().
		Heading("Deck").
		Bindings(k.Search, k.Copy, k.Edit, k.Reload).
		BlankLine().
		Heading("General").
		Bindings(k.Help, k.Quit).
		BlankLine().
		Raw(styles.HelpDesc.Render("Press ")).
		Raw(styles.HelpKey.Render("esc")).
		Raw(styles.HelpDesc.Render(" or ")).
		Raw(styles.HelpKey.Render("?")).
		Raw(styles.HelpDesc.Render(" to close")).
		String()
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
