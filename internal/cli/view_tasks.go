package cli

import (
	"fmt"
	"strings"

	"github.com/amolina/tasko/internal/domain"
)

// viewTasks renders the default screen: add input, filter state and the
// filtered task list with a movable cursor.
func (m appModel) viewTasks() string {
	var b strings.Builder

	b.WriteString(styleHeader.Render("tasko"))
	b.WriteString(styleDim.Render(fmt.Sprintf("  %d active / %d total",
		domain.CountActive(m.tracker.Tasks()), len(m.tracker.Tasks()))))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(renderFilterBar(m.filter))
	b.WriteString("\n\n")

	tasks := m.visible()
	if len(tasks) == 0 {
		b.WriteString(styleDim.Render("  Nothing here."))
		b.WriteString("\n")
	}
	for i, t := range tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = styleCursor.Render("❯ ")
		}
		mark := "[ ]"
		text := styleActive.Render(t.Text)
		if t.Completed {
			mark = styleGreen.Render("[x]")
			text = styleDone.Render(t.Text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, text))
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(styleError.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.adding {
		b.WriteString(styleDim.Render("enter add · esc cancel"))
	} else {
		b.WriteString(styleDim.Render("a add · space toggle · x delete · f filter · s stats · q quit"))
	}
	return b.String()
}

// renderFilterBar shows the three filter states with the active one
// highlighted.
func renderFilterBar(active domain.Filter) string {
	parts := make([]string, 0, 3)
	for _, f := range []domain.Filter{domain.FilterAll, domain.FilterActive, domain.FilterCompleted} {
		label := string(f)
		if f == active {
			parts = append(parts, styleCursor.Render("["+label+"]"))
		} else {
			parts = append(parts, styleDim.Render(" "+label+" "))
		}
	}
	return "  " + strings.Join(parts, " ")
}
