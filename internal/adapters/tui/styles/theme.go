package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#60A5FA") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Faint     = lipgloss.Color("#374151") // Dark gray
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Hero
	HeroTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	HeroSubtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	HeroTagline = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	HeroHint = lipgloss.NewStyle().
			Foreground(Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 2)

	// Sections
	SectionHeader = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// Cards
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Faint).
		Padding(0, 1)

	CardFocused = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(0, 1)

	CardTitle = lipgloss.NewStyle().
			Bold(true)

	// Navigation dots
	DotActive   = lipgloss.NewStyle().Foreground(Primary).Bold(true).SetString("●")
	DotInactive = lipgloss.NewStyle().Foreground(Muted).SetString("○")

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusKey = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Black).
			Padding(0, 1).
			MarginRight(1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Selected row in lists
	Selected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Black).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// Accent returns the color for a hex value, falling back to Primary
func Accent(hex string) lipgloss.Color {
	if hex == "" {
		return Primary
	}
	return lipgloss.Color(hex)
}
