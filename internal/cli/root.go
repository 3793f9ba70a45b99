package cli

import (
	"fmt"

	"github.com/amolina/tasko/internal/tracker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies used by CLI commands and the TUI.
type App struct {
	Tracker *tracker.Tracker

	// IsInteractive reports whether stdin is a terminal; the TUI refuses
	// to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tasko" command. Running it bare starts
// the interactive TUI; subcommands operate one-shot on the same store.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tasko",
		Short:         "Local task list with usage analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("interactive terminal required (try 'tasko list')")
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newAddCmd(app),
		newListCmd(app),
		newDoneCmd(app),
		newRmCmd(app),
		newStatsCmd(app),
	)

	return root
}

// runTUI counts the visit, runs the program, and flushes the analytics
// snapshot on the way out.
func runTUI(app *App) error {
	if err := app.Tracker.StartSession(); err != nil {
		return fmt.Errorf("starting session: %w", err)
	}

	p := tea.NewProgram(newAppModel(app.Tracker), tea.WithAltScreen())
	_, err := p.Run()

	// Session teardown: best effort, mirrors the in-memory snapshot.
	app.Tracker.Flush()

	if err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
