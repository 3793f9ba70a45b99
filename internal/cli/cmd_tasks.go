package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amolina/tasko/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				// Whitespace-only input is ignored, same as the TUI.
				return nil
			}
			if err := app.Tracker.Add(text); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %q\n", text)
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var filterFlag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := domain.ParseFilter(filterFlag)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tasks := filter.Apply(app.Tracker.Tasks())
			if len(tasks) == 0 {
				fmt.Fprintln(out, "No tasks.")
				return nil
			}

			// Numbers refer to insertion-order position in the full
			// list, so "done" and "rm" work regardless of the filter.
			positions := positionIndex(app.Tracker.Tasks())
			for _, t := range tasks {
				mark := " "
				if t.Completed {
					mark = "x"
				}
				fmt.Fprintf(out, "%3d [%s] %s\n", positions[t.ID], mark, t.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterFlag, "filter", "f", "all", "all, active or completed")
	return cmd
}

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>",
		Short: "Toggle a task's completed flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := taskAtPosition(app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tracker.Toggle(task.ID); err != nil {
				return err
			}
			state := "done"
			if task.Completed {
				state = "not done"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Marked %q %s\n", task.Text, state)
			return nil
		},
	}
}

func newRmCmd(app *App) *cobra.Command {
	var skipConfirm bool

	cmd := &cobra.Command{
		Use:   "rm <number>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task, err := taskAtPosition(app, args[0])
			if err != nil {
				return err
			}

			if !skipConfirm {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Delete %q?", task.Text)).
						Value(&confirmed),
				)).WithShowHelp(false)
				if err := form.Run(); err != nil {
					return fmt.Errorf("confirming delete: %w", err)
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			if err := app.Tracker.Delete(task.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", task.Text)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "skip confirmation")
	return cmd
}

// positionIndex maps task id to its 1-based insertion-order position.
func positionIndex(tasks []domain.Task) map[int64]int {
	idx := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		idx[t.ID] = i + 1
	}
	return idx
}

// taskAtPosition resolves a 1-based position argument to a task.
func taskAtPosition(app *App, arg string) (domain.Task, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return domain.Task{}, fmt.Errorf("invalid task number %q", arg)
	}
	tasks := app.Tracker.Tasks()
	if n < 1 || n > len(tasks) {
		return domain.Task{}, fmt.Errorf("no task at position %d", n)
	}
	return tasks[n-1], nil
}
