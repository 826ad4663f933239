package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"slidedeck/internal/adapters/tui/views"
	"slidedeck/internal/application/commands"
	"slidedeck/internal/domain"
	"slidedeck/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewPresentation ViewState = iota
	ViewSearch
	ViewHelp
)

// Deps are the adapters the app drives. Editor, Watcher and Clipboard are optional.
type Deps struct {
	Source    ports.DeckSource
	Editor    ports.EditorOpener
	Watcher   ports.DeckWatcher
	Clipboard ports.Clipboard
	Logger    *zap.Logger
}

// App is the main TUI application model
type App struct {
	source  ports.DeckSource
	editor  ports.EditorOpener
	watcher ports.DeckWatcher
	log     *zap.Logger

	state        ViewState
	presentation *views.PresentationModel
	search       *views.SearchModel
	help         *views.HelpModel

	loadErr error
	width   int
	height  int
}

// NewApp creates a new TUI application
func NewApp(deps Deps, opts views.Options) *App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &App{
		source:       deps.Source,
		editor:       deps.Editor,
		watcher:      deps.Watcher,
		log:          log,
		state:        ViewPresentation,
		presentation: views.NewPresentationModel(opts, deps.Clipboard, log),
		search:       views.NewSearchModel(),
		help:         views.NewHelpModel(),
	}
}

// Init loads the deck and starts listening for file changes
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.presentation.Init(), a.loadDeck(), a.waitForDeckChange())
}

// Close releases the file watcher
func (a *App) Close() error {
	if a.watcher == nil {
		return nil
	}
	return a.watcher.Close()
}

// Presentation returns the presentation view
func (a *App) Presentation() *views.PresentationModel {
	return a.presentation
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

type deckLoadedMsg struct {
	reg *domain.Registry
	err error
}

type deckChangedMsg struct{}

type watcherErrMsg struct{ err error }

type editorFinishedMsg struct{ err error }

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.presentation.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case deckLoadedMsg:
		return a, a.applyDeck(msg)

	case deckChangedMsg:
		a.log.Info("deck changed on disk", zap.String("path", a.source.Path()))
		return a, tea.Batch(a.loadDeck(), a.waitForDeckChange())

	case watcherErrMsg:
		a.log.Warn("deck watcher error", zap.Error(msg.err))
		return a, a.waitForDeckChange()

	// View switching messages
	case views.SwitchToSearchMsg:
		if a.presentation.Registry() == nil {
			return a, nil
		}
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToPresentationMsg:
		a.state = ViewPresentation
		return a, nil

	case views.SearchSelectMsg:
		a.state = ViewPresentation
		return a, a.presentation.FocusCard(msg.CardID)

	case views.ReloadDeckMsg:
		return a, a.loadDeck()

	case views.EditDeckMsg:
		return a, a.openEditor()

	case editorFinishedMsg:
		if msg.err != nil {
			a.log.Warn("editor failed", zap.Error(msg.err))
			return a, a.presentation.SetMessage(msg.err.Error(), true)
		}
		// The watcher picks the change up on its own.
		if a.watcher != nil {
			return a, nil
		}
		return a, a.loadDeck()
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.presentation.Update(msg)
	}

	// Animation frames keep running while an overlay is open.
	if a.state != ViewPresentation {
		if _, ok := msg.(tea.KeyMsg); !ok {
			if _, ok := msg.(tea.MouseMsg); !ok {
				_, pcmd := a.presentation.Update(msg)
				cmd = tea.Batch(cmd, pcmd)
			}
		}
	}

	return a, cmd
}

func (a *App) applyDeck(msg deckLoadedMsg) tea.Cmd {
	if msg.err != nil {
		a.log.Error("deck load failed", zap.String("path", a.source.Path()), zap.Error(msg.err))
		if a.presentation.Registry() == nil {
			a.loadErr = msg.err
			return nil
		}
		// Keep presenting the last good deck.
		return a.presentation.SetMessage("Reload failed: "+msg.err.Error(), true)
	}

	reloaded := a.presentation.Registry() != nil
	a.loadErr = nil
	a.search.SetRegistry(msg.reg)
	cmd := a.presentation.SetDeck(msg.reg)
	if reloaded {
		cmd = tea.Batch(cmd, a.presentation.SetMessage("Deck reloaded", false))
	}
	return cmd
}

func (a *App) loadDeck() tea.Cmd {
	source := a.source
	return func() tea.Msg {
		reg, err := commands.NewLoadDeckCommand(source).Execute(context.Background())
		return deckLoadedMsg{reg: reg, err: err}
	}
}

// waitForDeckChange blocks on the watcher; it is re-armed after every event
func (a *App) waitForDeckChange() tea.Cmd {
	if a.watcher == nil {
		return nil
	}
	events, errs := a.watcher.Events(), a.watcher.Errors()
	return func() tea.Msg {
		select {
		case _, ok := <-events:
			if !ok {
				return nil
			}
			return deckChangedMsg{}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return watcherErrMsg{err: err}
		}
	}
}

func (a *App) openEditor() tea.Cmd {
	if a.editor == nil {
		return a.presentation.SetMessage("No editor configured", true)
	}

	cmd, err := a.editor.Command(a.source.Path())
	if err != nil {
		return func() tea.Msg {
			return editorFinishedMsg{err: err}
		}
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{err: err}
	})
}

// View renders the current view
func (a *App) View() string {
	if a.loadErr != nil {
		return views.NewViewBuilder().
			Title("Slidedeck").
			Message(a.loadErr.Error(), true).
			Muted("Fix the deck and press r to retry, or q to quit").
			String()
	}

	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.presentation.View()
	}
}
