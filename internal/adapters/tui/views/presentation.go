package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"slidedeck/internal/adapters/tui/styles"
	"slidedeck/internal/domain"
	"slidedeck/internal/ports"
)

const (
	statusHeight = 1
	dotsWidth    = 3
	maxGridWidth = 120
	minCardWidth = 20
	wheelStep    = 3

	minColumnWidth = 30
	columnGap      = 2
	// top border, title, ellipsis, bottom border
	minCardHeight = 4
)

// Options configures the presentation view
type Options struct {
	SmoothScroll    bool
	Animations      bool
	SpringFrequency float64
	SpringDamping   float64
	MarkdownStyle   string // glamour standard style, "auto" by default
}

// revealMsg fires once per distinct entrance delay
type revealMsg struct {
	gen  int
	upTo time.Duration
}

// PresentationModel is the scrolling slide view. It owns the rendered
// layout and feeds it to the focus navigator as both the card source and
// the scroll-into-view target.
type PresentationModel struct {
	ViewState

	reg      *domain.Registry
	tracker  *domain.ScrollTracker
	nav      *domain.FocusNavigator
	layout   *Layout
	scroll   *SmoothScroller
	markdown *MarkdownRenderer

	clipboard ports.Clipboard
	log       *zap.Logger
	opts      Options

	mounted   bool
	revealed  map[string]bool
	revealGen int
	hovered   string
	pending   tea.Cmd
}

// NewPresentationModel creates an empty presentation; call SetDeck to show a deck
func NewPresentationModel(opts Options, clip ports.Clipboard, log *zap.Logger) *PresentationModel {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.SpringFrequency <= 0 {
		opts.SpringFrequency = 7.0
	}
	if opts.SpringDamping <= 0 {
		opts.SpringDamping = 1.0
	}

	m := &PresentationModel{
		tracker:   domain.NewScrollTracker(0),
		layout:    &Layout{},
		scroll:    NewSmoothScroller(opts.SmoothScroll, opts.SpringFrequency, opts.SpringDamping),
		markdown:  NewMarkdownRenderer(opts.MarkdownStyle, log),
		clipboard: clip,
		log:       log,
		opts:      opts,
		revealed:  make(map[string]bool),
	}
	m.nav = domain.NewFocusNavigator(m, m)
	return m
}

// Init initializes the presentation
func (m *PresentationModel) Init() tea.Cmd {
	return nil
}

// SetDeck shows a (new or reloaded) deck. The scroll offset is kept and the
// focused card survives only if it still exists.
func (m *PresentationModel) SetDeck(reg *domain.Registry) tea.Cmd {
	m.reg = reg
	m.tracker = domain.NewScrollTracker(reg.SectionCount())
	m.markdown.Reset()
	m.hovered = ""

	cmd := m.scheduleReveal()
	m.mounted = true

	m.rebuild()
	m.nav.Reconcile()
	m.scroll.Clamp(m.layout.MaxOffset(m.viewportHeight()))
	m.trackScroll()

	m.log.Debug("deck shown",
		zap.Int("sections", reg.SectionCount()),
		zap.Int("cards", len(reg.CardIDs())),
	)
	return cmd
}

// SetSize updates the view dimensions and re-lays out the deck
func (m *PresentationModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.rebuild()
	m.nav.Reconcile()
	m.scroll.Clamp(m.layout.MaxOffset(m.viewportHeight()))
	m.trackScroll()
}

// CardIDs returns the rendered cards in order (domain.CardSource)
func (m *PresentationModel) CardIDs() []string {
	return m.layout.CardIDs()
}

// ScrollIntoView centers a rendered card in the viewport (domain.Scroller).
// It returns false when the card has no rendered region.
func (m *PresentationModel) ScrollIntoView(cardID string) bool {
	r, ok := m.layout.Rect(cardID)
	if !ok {
		m.log.Debug("scroll target not rendered", zap.String("card", cardID))
		return false
	}
	vh := m.viewportHeight()
	target := CenterOffset(r, vh, m.layout.MaxOffset(vh))
	m.pending = tea.Batch(m.pending, m.scrollTo(target))
	return true
}

// ActiveSection returns the tracked section index (0 is the hero)
func (m *PresentationModel) ActiveSection() int {
	return m.tracker.Active()
}

// Focused returns the focused card, if any
func (m *PresentationModel) Focused() (string, bool) {
	return m.nav.Focused()
}

// Offset returns the current scroll offset in rows
func (m *PresentationModel) Offset() int {
	return m.scroll.Offset()
}

// Registry returns the deck being presented
func (m *PresentationModel) Registry() *domain.Registry {
	return m.reg
}

// IsRevealed reports whether a card finished its entrance delay
func (m *PresentationModel) IsRevealed(cardID string) bool {
	return m.revealed[cardID]
}

// FocusCard focuses a card and scrolls it into view
func (m *PresentationModel) FocusCard(cardID string) tea.Cmd {
	if m.nav.Focus(cardID) {
		m.rebuild()
	}
	return m.takePending()
}

// NextSection scrolls to the section after the active one; no-op on the last
func (m *PresentationModel) NextSection() tea.Cmd {
	target, ok := m.tracker.NextSection(m.viewportHeight())
	if !ok {
		return nil
	}
	return m.scrollTo(target)
}

// ScrollToSection scrolls to a navigation dot (0 is the hero)
func (m *PresentationModel) ScrollToSection(index int) tea.Cmd {
	if m.reg == nil || index < 0 || index > m.tracker.SectionCount() {
		return nil
	}
	return m.scrollTo(m.tracker.SectionOffset(index, m.viewportHeight()))
}

// Update handles messages for the presentation
func (m *PresentationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case clearMessageMsg:
		m.expireMessage(msg)
		return m, nil

	case revealMsg:
		if msg.gen != m.revealGen || m.reg == nil {
			return m, nil
		}
		for _, id := range m.reg.CardIDs() {
			if c, ok := m.reg.Card(id); ok && c.Delay <= msg.upTo {
				m.revealed[id] = true
			}
		}
		m.rebuild()
		return m, nil

	case scrollFrameMsg:
		changed, cmd := m.scroll.Step(msg)
		if changed {
			m.trackScroll()
		}
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}

	return m, nil
}

func (m *PresentationModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	vh := m.viewportHeight()

	switch {
	case key.Matches(msg, PresentationKeys.Quit):
		return tea.Quit

	case key.Matches(msg, PresentationKeys.NextCard):
		return m.navigate(domain.KeyNext, msg)

	case key.Matches(msg, PresentationKeys.PrevCard):
		return m.navigate(domain.KeyPrev, msg)

	case key.Matches(msg, PresentationKeys.Activate):
		m.nav.HandleKey(domain.KeyActivate)
		return m.takePending()

	case key.Matches(msg, PresentationKeys.NextSection):
		return m.NextSection()

	case key.Matches(msg, PresentationKeys.PrevSection):
		if m.tracker.Active() == 0 {
			return nil
		}
		return m.ScrollToSection(m.tracker.Active() - 1)

	case key.Matches(msg, PresentationKeys.LineDown):
		m.scrollBy(1)
	case key.Matches(msg, PresentationKeys.LineUp):
		m.scrollBy(-1)
	case key.Matches(msg, PresentationKeys.PageDown):
		return m.scrollTo(m.scroll.Target() + vh)
	case key.Matches(msg, PresentationKeys.PageUp):
		return m.scrollTo(m.scroll.Target() - vh)
	case key.Matches(msg, PresentationKeys.Top):
		return m.scrollTo(0)
	case key.Matches(msg, PresentationKeys.Bottom):
		return m.scrollTo(m.layout.MaxOffset(vh))

	case key.Matches(msg, PresentationKeys.JumpSection):
		return m.ScrollToSection(int(msg.String()[0] - '0'))

	case key.Matches(msg, PresentationKeys.Copy):
		return m.copyFocused()

	case key.Matches(msg, PresentationKeys.Search):
		return func() tea.Msg { return SwitchToSearchMsg{} }

	case key.Matches(msg, PresentationKeys.Edit):
		return func() tea.Msg { return EditDeckMsg{} }

	case key.Matches(msg, PresentationKeys.Reload):
		return func() tea.Msg { return ReloadDeckMsg{} }

	case key.Matches(msg, PresentationKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return nil
}

// navigate moves focus with an arrow key. Keys the navigator does not
// consume fall through to plain scrolling, like an unhandled arrow key.
func (m *PresentationModel) navigate(k domain.Key, msg tea.KeyMsg) tea.Cmd {
	if m.nav.HandleKey(k) {
		m.rebuild()
		return m.takePending()
	}
	switch msg.String() {
	case "down":
		m.scrollBy(1)
	case "up":
		m.scrollBy(-1)
	}
	return nil
}

func (m *PresentationModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	// Content moves under a resting pointer, so hover is re-evaluated.
	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)
		m.hover(msg.X, msg.Y)
	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)
		m.hover(msg.X, msg.Y)
	case msg.Action == tea.MouseActionMotion:
		m.hover(msg.X, msg.Y)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		return m.click(msg.X, msg.Y)
	}
	return nil
}

// hover turns pointer motion into enter/leave transitions
func (m *PresentationModel) hover(x, y int) {
	id := ""
	if y >= 0 && y < m.viewportHeight() && x < m.bodyWidth() {
		id, _ = m.layout.CardAt(x, m.scroll.Offset()+y)
	}
	if id == m.hovered {
		return
	}
	if m.hovered != "" {
		m.nav.PointerLeave(m.hovered)
	}
	if id != "" {
		m.nav.PointerEnter(id)
	}
	m.hovered = id
	m.rebuild()
}

func (m *PresentationModel) click(x, y int) tea.Cmd {
	if x >= m.bodyWidth() {
		if i, ok := m.dotAt(y); ok {
			return m.ScrollToSection(i)
		}
		return nil
	}
	if y < 0 || y >= m.viewportHeight() {
		return nil
	}
	if id, ok := m.layout.CardAt(x, m.scroll.Offset()+y); ok {
		m.ScrollIntoView(id)
		return m.takePending()
	}
	return nil
}

func (m *PresentationModel) copyFocused() tea.Cmd {
	id, ok := m.nav.Focused()
	if !ok {
		return m.SetMessage("No card focused", true)
	}
	if m.clipboard == nil {
		return m.SetMessage("Clipboard unavailable", true)
	}
	card, _ := m.reg.Card(id)
	if err := m.clipboard.WriteAll(card.Title + "\n\n" + card.Body); err != nil {
		m.log.Warn("copy failed", zap.String("card", id), zap.Error(err))
		return m.SetMessage(err.Error(), true)
	}
	return m.SetMessage(fmt.Sprintf("Copied %s", card.Title), false)
}

// scrollTo requests a (possibly smooth) scroll to an absolute offset
func (m *PresentationModel) scrollTo(offset int) tea.Cmd {
	offset = min(max(offset, 0), m.layout.MaxOffset(m.viewportHeight()))
	cmd := m.scroll.ScrollTo(offset)
	m.trackScroll()
	return cmd
}

// scrollBy moves immediately, interrupting any animation
func (m *PresentationModel) scrollBy(delta int) {
	offset := min(max(m.scroll.Offset()+delta, 0), m.layout.MaxOffset(m.viewportHeight()))
	m.scroll.JumpTo(offset)
	m.trackScroll()
}

// trackScroll feeds the current offset and the current viewport height to
// the tracker. The height is read fresh on every call.
func (m *PresentationModel) trackScroll() {
	before := m.tracker.Active()
	after := m.tracker.Update(m.scroll.Offset(), m.viewportHeight())
	if after != before {
		m.log.Debug("active section changed", zap.Int("from", before), zap.Int("to", after))
	}
}

func (m *PresentationModel) takePending() tea.Cmd {
	cmd := m.pending
	m.pending = nil
	return cmd
}

func (m *PresentationModel) scheduleReveal() tea.Cmd {
	m.revealGen++
	m.revealed = make(map[string]bool)

	delays := make(map[time.Duration]bool)
	for _, id := range m.reg.CardIDs() {
		c, _ := m.reg.Card(id)
		// Entrance animation plays once per mount; reloads show cards at once.
		if !m.opts.Animations || m.mounted || c.Delay <= 0 {
			m.revealed[id] = true
			continue
		}
		delays[c.Delay] = true
	}

	gen := m.revealGen
	var cmds []tea.Cmd
	for d := range delays {
		cmds = append(cmds, tea.Tick(d, func(time.Time) tea.Msg {
			return revealMsg{gen: gen, upTo: d}
		}))
	}
	return tea.Batch(cmds...)
}

func (m *PresentationModel) viewportHeight() int {
	return max(0, m.Height-statusHeight)
}

func (m *PresentationModel) bodyWidth() int {
	return max(0, m.Width-dotsWidth)
}

// rebuild lays out the hero and every section. Each block is exactly one
// viewport tall, so section i starts at row i*viewportHeight.
func (m *PresentationModel) rebuild() {
	// Resolve focus against the previous layout; the new one is incomplete
	// until the end of this function.
	focused, _ := m.nav.Focused()

	l := &Layout{}
	defer func() { m.layout = l }()

	vh := m.viewportHeight()
	bw := m.bodyWidth()
	if m.reg == nil || vh <= 0 || bw <= 0 {
		return
	}

	l.sectionStarts = append(l.sectionStarts, 0)
	hero := strings.Split(m.renderHero(bw), "\n")
	l.lines = append(l.lines, make([]string, max(0, (vh-len(hero))/2))...)
	l.lines = append(l.lines, hero...)
	l.fitTo(0, vh)

	for _, s := range m.reg.Sections() {
		start := len(l.lines)
		l.sectionStarts = append(l.sectionStarts, start)
		m.layoutSection(l, s, focused, vh, bw)
		l.fitTo(start, vh)
	}
}

// layoutSection appends a section header and its cards in a grid of up to two
// columns. When the cards would overflow the viewport every card is cut to an
// equal share of the remaining rows.
func (m *PresentationModel) layoutSection(l *Layout, s domain.Section, focused string, vh, bw int) {
	start := len(l.lines)
	l.lines = append(l.lines, "")
	header := lipgloss.PlaceHorizontal(bw, lipgloss.Center, m.renderSectionHeader(s, bw))
	l.lines = append(l.lines, strings.Split(header, "\n")...)
	if len(s.Cards) == 0 {
		return
	}

	gridWidth := max(min(bw-4, maxGridWidth), min(minCardWidth, bw))
	cols := 1
	if len(s.Cards) > 1 && gridWidth >= 2*minColumnWidth+columnGap {
		cols = 2
	}
	cardWidth := (gridWidth - (cols-1)*columnGap) / cols
	left := max(0, (bw-gridWidth)/2)
	rows := (len(s.Cards) + cols - 1) / cols
	row := func(r int) []domain.Card {
		return s.Cards[r*cols : min((r+1)*cols, len(s.Cards))]
	}

	boxes := make(map[string][]string, len(s.Cards))
	natural := 0
	for r := range rows {
		rowHeight := 0
		for _, c := range row(r) {
			boxes[c.ID] = strings.Split(m.renderCard(c, cardWidth, c.ID == focused, 0), "\n")
			rowHeight = max(rowHeight, len(boxes[c.ID]))
		}
		natural += rowHeight
	}
	if avail := vh - (len(l.lines) - start) - (rows - 1); natural > avail {
		limit := max(avail/rows, minCardHeight)
		for _, c := range s.Cards {
			boxes[c.ID] = strings.Split(m.renderCard(c, cardWidth, c.ID == focused, limit), "\n")
		}
	}

	pad := strings.Repeat(" ", left)
	gap := strings.Repeat(" ", columnGap)
	blank := strings.Repeat(" ", cardWidth)
	for r := range rows {
		if r > 0 {
			l.lines = append(l.lines, "")
		}
		top := len(l.lines)
		rowHeight := 0
		for i, c := range row(r) {
			rowHeight = max(rowHeight, len(boxes[c.ID]))
			l.cards = append(l.cards, cardRegion{
				id:   c.ID,
				rect: Rect{X: left + i*(cardWidth+columnGap), Y: top, W: cardWidth, H: len(boxes[c.ID])},
			})
		}
		for y := range rowHeight {
			var b strings.Builder
			b.WriteString(pad)
			for i, c := range row(r) {
				if i > 0 {
					b.WriteString(gap)
				}
				if box := boxes[c.ID]; y < len(box) {
					b.WriteString(box[y])
				} else {
					b.WriteString(blank)
				}
			}
			l.lines = append(l.lines, b.String())
		}
	}
}

func (m *PresentationModel) renderHero(width int) string {
	hero := m.reg.Hero()
	var parts []string
	if hero.Title != "" {
		parts = append(parts, styles.HeroTitle.Render(hero.Title), "")
	}
	if hero.Subtitle != "" {
		parts = append(parts, styles.HeroSubtitle.Width(min(width, 72)).Align(lipgloss.Center).Render(hero.Subtitle), "")
	}
	if hero.Tagline != "" {
		parts = append(parts, styles.HeroTagline.Width(min(width, 72)).Align(lipgloss.Center).Render(hero.Tagline), "")
	}
	if m.reg.SectionCount() > 0 {
		parts = append(parts, "", styles.HeroHint.Render("space ▼"))
	}
	block := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, block)
}

func (m *PresentationModel) renderSectionHeader(s domain.Section, width int) string {
	title := s.Title
	if s.Icon != "" {
		title = s.Icon + "  " + title
	}
	header := styles.SectionHeader.Foreground(styles.Accent(s.Color)).MaxWidth(width).Render(title)
	if s.Subtitle != "" {
		header = lipgloss.JoinVertical(lipgloss.Center, header, styles.Subtitle.Render(s.Subtitle), "")
	}
	return header
}

// renderCard renders a card box exactly width columns wide. A positive
// maxHeight cuts the body and marks the cut with an ellipsis row.
func (m *PresentationModel) renderCard(c domain.Card, width int, focused bool, maxHeight int) string {
	accent := styles.Accent(c.Accent)

	title := styles.CardTitle.Foreground(accent).Render(c.Title)
	style := styles.Card
	if focused {
		title = styles.CardTitle.Foreground(styles.Black).Background(accent).Render(" " + c.Title + " ")
		style = styles.CardFocused.BorderForeground(accent)
	}
	style = style.Width(width - 2)

	content := title
	if c.Body != "" {
		// border (2) + padding (2)
		content += "\n\n" + m.markdown.Render(c.ID, c.Body, width-4)
	}
	lines := strings.Split(style.Render(content), "\n")
	if maxHeight > 0 && len(lines) > maxHeight {
		lines = clipBox(lines, style.Render("…"), maxHeight)
	}

	if !m.revealed[c.ID] {
		// Not yet revealed: keep the footprint so nothing shifts when it appears.
		for i, line := range lines {
			lines[i] = strings.Repeat(" ", ansi.StringWidth(line))
		}
	}
	return strings.Join(lines, "\n")
}

// clipBox cuts a bordered box to height rows: the top rows, then the middle
// row of marker (a one-line box), then the bottom border
func clipBox(lines []string, marker string, height int) []string {
	markerLines := strings.Split(marker, "\n")
	if height < 3 || len(markerLines) < 3 || len(lines) <= height {
		return lines
	}
	out := append([]string{}, lines[:height-2]...)
	return append(out, markerLines[1], lines[len(lines)-1])
}

// dotLayout returns the first screen row of the navigation dots and the
// distance between them
func (m *PresentationModel) dotLayout() (start, spacing int) {
	count := m.tracker.SectionCount() + 1
	vh := m.viewportHeight()
	spacing = 2
	if 2*count-1 > vh {
		spacing = 1
	}
	total := spacing*(count-1) + 1
	return max(0, (vh-total)/2), spacing
}

func (m *PresentationModel) dotAt(y int) (int, bool) {
	if m.reg == nil {
		return 0, false
	}
	start, spacing := m.dotLayout()
	if y < start || (y-start)%spacing != 0 {
		return 0, false
	}
	i := (y - start) / spacing
	if i > m.tracker.SectionCount() {
		return 0, false
	}
	return i, true
}

func (m *PresentationModel) renderDots() string {
	vh := m.viewportHeight()
	rows := make([]string, vh)
	for i := range rows {
		rows[i] = strings.Repeat(" ", dotsWidth)
	}
	if m.reg == nil {
		return strings.Join(rows, "\n")
	}

	start, spacing := m.dotLayout()
	for i := 0; i <= m.tracker.SectionCount(); i++ {
		row := start + i*spacing
		if row >= vh {
			break
		}
		dot := styles.DotInactive.String()
		if i == m.tracker.Active() {
			dot = styles.DotActive.String()
		}
		rows[row] = " " + dot + " "
	}
	return strings.Join(rows, "\n")
}

func (m *PresentationModel) renderStatus() string {
	left := styles.StatusKey.Render(fmt.Sprintf("%d/%d", m.tracker.Active(), m.tracker.SectionCount())) +
		m.reg.ActiveTitle(m.tracker.Active())
	if id, ok := m.nav.Focused(); ok {
		if c, ok := m.reg.Card(id); ok {
			left += "  ▸ " + c.Title
		}
	}

	hints := []key.Binding{PresentationKeys.NextCard, PresentationKeys.NextSection, PresentationKeys.Help}
	if m.tracker.IsLast() {
		hints = []key.Binding{PresentationKeys.NextCard, PresentationKeys.PrevSection, PresentationKeys.Help}
	}
	right := RenderHelpLine(hints...)
	if m.Message != "" {
		right = RenderMessage(m.Message, m.MessageErr)
	}

	inner := max(0, m.Width-2)
	rightWidth := lipgloss.Width(right)
	left = ansi.Truncate(left, max(0, inner-rightWidth-1), "…")
	gap := max(1, inner-lipgloss.Width(left)-rightWidth)
	line := ansi.Truncate(left+strings.Repeat(" ", gap)+right, inner, "…")
	return styles.StatusBar.Width(m.Width).Render(line)
}

// View renders the presentation
func (m *PresentationModel) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "Loading..."
	}
	if m.reg == nil {
		return styles.App.Render(styles.MutedText.Render("Loading deck..."))
	}

	vh := m.viewportHeight()
	bw := m.bodyWidth()

	body := lipgloss.NewStyle().
		Width(bw).MaxWidth(bw).
		Height(vh).MaxHeight(vh).
		Render(strings.Join(m.layout.Window(m.scroll.Offset(), vh), "\n"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderDots())
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatus())
}

// Messages for view switching
type SwitchToSearchMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToPresentationMsg struct{}

// EditDeckMsg asks the app to open the deck file in an editor
type EditDeckMsg struct{}

// ReloadDeckMsg asks the app to reload the deck from its source
type ReloadDeckMsg struct{}
