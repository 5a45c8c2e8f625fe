package cli

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/WillyV3/todoflow/internal/config"
	"github.com/WillyV3/todoflow/internal/task"
	"github.com/WillyV3/todoflow/internal/tui"
)

// App holds the process-level collaborators shared by all commands.
type App struct {
	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// RunProgram runs the TUI. Defaults to a full-screen tea.Program.
	RunProgram func(tea.Model) error

	configPath string
	picker     string
}

// NewRootCmd creates the top-level "todoflow" command.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "todoflow",
		Short:         "Task groups with timed sub-tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, app)
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default $"+config.EnvPath+" or ~/.todoflow.yaml)")
	root.PersistentFlags().StringVar(&app.picker, "picker", "", "duration picker: wheel or slider")

	root.AddCommand(
		newListCmd(app),
		newDurationCmd(app),
		newInitCmd(app),
	)

	return root
}

// loadConfig resolves the config path and applies flag overrides.
func (a *App) loadConfig() (*config.Config, string, error) {
	path := a.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, path, err
	}
	if a.picker != "" {
		cfg.Picker = a.picker
		if err := cfg.Validate(); err != nil {
			return nil, path, fmt.Errorf("--picker: %w", err)
		}
	}
	return cfg, path, nil
}

// seededStore builds a store populated from the config seed, with a log
// observer attached.
func seededStore(cfg *config.Config, logger *slog.Logger) (*task.Store, error) {
	store := task.NewStore()
	store.Subscribe(task.NewLogObserver(logger).Observe)
	if err := cfg.Apply(store); err != nil {
		return nil, err
	}
	return store, nil
}

func runInteractive(cmd *cobra.Command, app *App) error {
	cfg, path, err := app.loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := seededStore(cfg, logger)
	if err != nil {
		return err
	}

	if app.IsInteractive != nil && !app.IsInteractive() {
		logger.Info("stdin is not a terminal, printing list", "config", path)
		return printTree(cmd.OutOrStdout(), store.Snapshot())
	}

	logger.Info("starting tui", "config", path, "picker", cfg.Picker, "groups", store.Len())
	model := tui.NewModel(store, tui.Options{
		Picker: cfg.Picker,
		Slider: cfg.SliderOptions(),
		Logger: logger,
	})

	run := app.RunProgram
	if run == nil {
		run = runProgram
	}
	if err := run(model); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
