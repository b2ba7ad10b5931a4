package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"ttb/internal/activity"
	"ttb/internal/logging"
	"ttb/internal/tracker"
	"ttb/internal/tui"
)

// newTrackCommand creates the interactive tracking command
func (r *RootCommand) newTrackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "Open the interactive tracking screen",
		Long: `Open the interactive tracking screen.

Select a project, rate and currency, then start and stop the timer with
space or enter. Completed sessions are appended to the session log. The
timer stops automatically after the configured idle threshold without
keyboard or mouse input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.runTrack()
		},
	}
}

func (r *RootCommand) runTrack() error {
	// Seed the catalogs from the existing log; on a read failure the screen
	// still opens with empty catalogs and the failure is reported.
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Database.QueryTimeout)
	defer cancel()

	var loadWarning string
	if err := r.app.catalog.LoadFromStore(ctx); err != nil {
		loadWarning = r.app.errors.Handle("load catalogs", err).Error()
		logging.Debugf("track: %v\n", err)
	}

	bridge := tui.NewBridge()
	trk := tracker.New(r.app.store, activity.NewMonitor(), bridge, r.config)

	model := tui.NewModel(trk, r.app.catalog, r.app.aggregator, bridge, r.config)
	if loadWarning != "" {
		model.Notice = loadWarning
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run tracking screen: %w", err)
	}

	// A session left running when the screen closes is stopped and recorded.
	stopCtx, stopCancel := context.WithTimeout(context.Background(), r.config.Database.WriteTimeout)
	defer stopCancel()
	if err := trk.Stop(stopCtx); err != nil {
		return r.app.errors.Handle("save final session", err)
	}

	return nil
}
