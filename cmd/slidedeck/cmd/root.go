package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slidedeck/internal/adapters/clipboard"
	"slidedeck/internal/adapters/editor"
	"slidedeck/internal/adapters/filesystem"
	"slidedeck/internal/adapters/tui"
	"slidedeck/internal/adapters/tui/views"
	"slidedeck/internal/config"
	"slidedeck/internal/logging"
	"slidedeck/internal/ports"
)

var (
	configPath string
	verbose    bool
	logFile    string

	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "slidedeck [deck.yaml]",
	Short: "Present a slide deck in the terminal",
	Long: `slidedeck presents a YAML deck as a scrolling sequence of full-screen
sections. Arrow keys step through cards, space jumps to the next section,
and the dots on the right show where you are.

Without a deck file the built-in deck is shown. The deck file is watched
and reloaded when it changes.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}

		logger, err = logging.New(filesystem.ExpandHome(cfg.LogFile), cfg.Verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runPresent,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
}

// deckSource resolves the deck from the argument, then the config
func deckSource(args []string) *filesystem.Repository {
	path := cfg.Deck
	if len(args) > 0 {
		path = args[0]
	}
	return filesystem.NewRepository(path)
}

func runPresent(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := deckSource(args)
	logger.Info("starting presentation", zap.String("deck", source.Path()))

	deps := tui.Deps{
		Source:    source,
		Editor:    editor.NewOpener(),
		Clipboard: clipboard.NewSystem(),
		Logger:    logger,
	}
	if w := startWatcher(ctx, source); w != nil {
		deps.Watcher = w
	}

	app := tui.NewApp(deps, views.Options{
		SmoothScroll:    cfg.SmoothScroll,
		Animations:      cfg.Animations,
		SpringFrequency: cfg.Spring.Frequency,
		SpringDamping:   cfg.Spring.Damping,
		MarkdownStyle:   cfg.Style,
	})
	defer app.Close()

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("error running presentation: %w", err)
	}
	return nil
}

// startWatcher returns nil when watching is off or the deck is built in
func startWatcher(ctx context.Context, source ports.DeckSource) ports.DeckWatcher {
	if !cfg.Watch || source.Path() == "" {
		return nil
	}
	w, err := filesystem.NewWatcher(ctx, source.Path(), filesystem.DefaultDebounce, logger)
	if err != nil {
		logger.Warn("deck watching disabled", zap.Error(err))
		return nil
	}
	return w
}
