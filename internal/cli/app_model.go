package cli

import (
	"strings"

	"github.com/amolina/tasko/internal/domain"
	"github.com/amolina/tasko/internal/tracker"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI.
//
// Navigation is a single boolean: showStats selects between the task
// screen and the analytics screen. Beyond that the only view state is
// the three-way filter, the list cursor and whether the add input has
// focus. There is deliberately no view stack and no routing.
type appModel struct {
	tracker *tracker.Tracker

	showStats bool
	filter    domain.Filter
	cursor    int

	input  textinput.Model
	adding bool

	width, height int
	err           error
	quitting      bool
}

func newAppModel(tr *tracker.Tracker) appModel {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = "> "
	ti.CharLimit = 500

	return appModel{
		tracker: tr,
		filter:  domain.FilterAll,
		input:   ti,
	}
}

// visible returns the filtered task list for the current screen state.
func (m appModel) visible() []domain.Task {
	return m.filter.Apply(m.tracker.Tasks())
}

// clampCursor keeps the cursor inside the filtered list after mutations
// or filter changes.
func (m *appModel) clampCursor() {
	n := len(m.visible())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Forward other messages (cursor blink) to the add input.
	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	if m.adding {
		return m.handleAddKey(msg)
	}
	if m.showStats {
		return m.handleStatsKey(msg)
	}
	return m.handleTasksKey(msg)
}

// handleAddKey routes keys to the focused add input.
func (m appModel) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.err = m.tracker.Add(m.input.Value())
		m.input.Reset()
		m.input.Blur()
		m.adding = false
		m.clampCursor()
		return m, nil

	case tea.KeyEsc:
		m.input.Reset()
		m.input.Blur()
		m.adding = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleTasksKey handles keys on the task screen.
func (m appModel) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "a":
		m.adding = true
		m.err = nil
		return m, m.input.Focus()

	case "s", "tab":
		m.showStats = true
		return m, nil

	case "f":
		m.filter = m.filter.Next()
		m.cursor = 0
		return m, nil

	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case " ":
		if tasks := m.visible(); m.cursor < len(tasks) {
			m.err = m.tracker.Toggle(tasks[m.cursor].ID)
			m.clampCursor()
		}
		return m, nil

	case "x":
		if tasks := m.visible(); m.cursor < len(tasks) {
			m.err = m.tracker.Delete(tasks[m.cursor].ID)
			m.clampCursor()
		}
		return m, nil
	}
	return m, nil
}

// handleStatsKey handles keys on the analytics screen.
func (m appModel) handleStatsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	case "s", "tab", "b", "esc":
		m.showStats = false
		return m, nil
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if m.showStats {
		body = m.viewStats()
	} else {
		body = m.viewTasks()
	}

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		lines := strings.Count(body, "\n") + 1
		if lines < m.height {
			body += strings.Repeat("\n", m.height-lines)
		}
	}
	return body
}
