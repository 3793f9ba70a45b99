package cli

import (
	"fmt"
	"time"

	"github.com/amolina/tasko/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := app.Tracker.Analytics()
			now := app.Tracker.Now()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Visitors:          %d\n", a.TotalVisitors)
			fmt.Fprintf(out, "Page views:        %d\n", a.PageViews)
			fmt.Fprintf(out, "Sessions:          %d\n", a.SessionsCount)
			fmt.Fprintf(out, "Last visit:        %s\n", formatVisit(a.LastVisit))
			fmt.Fprintf(out, "Tasks created:     %d\n", a.TodosCreated)
			fmt.Fprintf(out, "Tasks completed:   %d\n", a.TodosCompleted)
			fmt.Fprintf(out, "Tasks deleted:     %d\n", a.TodosDeleted)
			fmt.Fprintf(out, "Completion rate:   %d%%\n", a.CompletionRate())
			fmt.Fprintf(out, "Avg tasks/session: %.1f\n", a.AvgTasksPerSession())
			fmt.Fprintf(out, "Avg session:       %s\n", domain.FormatDuration(a.AvgSessionDuration(now)))
			return nil
		},
	}
}

func formatVisit(ms int64) string {
	if ms == 0 {
		return "never"
	}
	return time.UnixMilli(ms).Format("2006-01-02 15:04")
}
