package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/drafter/internal/config"
	"github.com/kingrea/drafter/internal/logbook"
	"github.com/kingrea/drafter/internal/roster"
	"github.com/kingrea/drafter/internal/tui"
)

type globalFlags struct {
	dir    string
	roster string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	flags := &globalFlags{}
	root := &cobra.Command{
		Use:   "drafter",
		Short: "Split ten players into two balanced teams",
		Long: `Drafter reads a pool of players from a roster file ("name,score,role"
per line), lets you pick ten of them and splits the picks into two teams of
five with the closest possible total score.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&flags.dir, "dir", "", "project directory (default is the current directory)")
	root.PersistentFlags().StringVar(&flags.roster, "roster", "", "roster file (overrides roster.path in .drafter/config.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive drafter",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runTUI(flags)
			},
		},
		newDraftCmd(flags),
		newListCmd(flags),
		newSortCmd(flags),
	)
	return root
}

// loadConfig prepares .drafter/ in the project directory and layers the
// --roster flag over the file and environment settings.
func (f *globalFlags) loadConfig() (*config.Config, error) {
	dir := f.dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = cwd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project directory: %w", err)
	}
	if err := config.InitDrafterDir(dir); err != nil {
		return nil, fmt.Errorf("failed to initialize .drafter directory: %w", err)
	}
	cfg, err := config.NewConfig(dir)
	if err != nil {
		return nil, err
	}
	cfg.SetRosterPath(f.roster)
	return cfg, nil
}

// loadRoster reads the roster and reports skipped lines through the logbook,
// which mirrors warnings to w.
func loadRoster(cfg *config.Config, w io.Writer) (roster.Result, *logbook.Logbook, error) {
	book, err := logbook.New(cfg.LogPath())
	if err != nil {
		return roster.Result{}, nil, err
	}
	book.Mirror(w)
	result, err := roster.Load(cfg.RosterPath())
	if err != nil {
		book.Error("Roster load failed: %v", err)
		return roster.Result{}, book, err
	}
	for _, diag := range result.Diagnostics {
		book.Warn("Skipped roster %s", diag)
	}
	return result, book, nil
}

func runTUI(flags *globalFlags) error {
	cfg, err := flags.loadConfig()
	if err != nil {
		return err
	}
	app, err := tui.NewApp(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return app.Shutdown()
}
