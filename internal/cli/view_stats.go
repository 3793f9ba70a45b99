package cli

import (
	"fmt"
	"strings"

	"github.com/amolina/tasko/internal/domain"
)

// viewStats renders the read-only analytics screen.
func (m appModel) viewStats() string {
	a := m.tracker.Analytics()
	now := m.tracker.Now()

	var b strings.Builder
	b.WriteString(styleHeader.Render("tasko · stats"))
	b.WriteString("\n\n")

	rows := []struct {
		label, value string
	}{
		{"Visitors", fmt.Sprintf("%d", a.TotalVisitors)},
		{"Page views", fmt.Sprintf("%d", a.PageViews)},
		{"Sessions", fmt.Sprintf("%d", a.SessionsCount)},
		{"This session", domain.FormatDuration(a.SessionDuration(now))},
		{"Avg session", domain.FormatDuration(a.AvgSessionDuration(now))},
		{"Tasks created", fmt.Sprintf("%d", a.TodosCreated)},
		{"Tasks completed", fmt.Sprintf("%d", a.TodosCompleted)},
		{"Tasks deleted", fmt.Sprintf("%d", a.TodosDeleted)},
		{"Completion rate", fmt.Sprintf("%d%%", a.CompletionRate())},
		{"Avg tasks/session", fmt.Sprintf("%.1f", a.AvgTasksPerSession())},
	}
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			styleLabel.Render(fmt.Sprintf("%-18s", r.label)), r.value))
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("esc back · q quit"))
	return b.String()
}
