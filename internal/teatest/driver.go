// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// draining returned Cmds in place, so TUI behavior can be asserted without
// goroutines or timing. Cursor blink Cmds, which block on timer channels,
// are executed with a short timeout and skipped when they stall.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth bounds command draining against message loops.
const maxDrainDepth = 50

// cmdTimeout separates real Cmds (which return in microseconds) from
// blocking ones like cursor blink timers (~530ms).
const cmdTimeout = 10 * time.Millisecond

// Driver drives a tea.Model synchronously.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during draining. The real
	// bubbletea runtime intercepts that message, so the driver detects it
	// itself.
	Quitting bool
}

// New creates a Driver, sends an initial window size, and drains Init().
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	d.drain(d.Model.Init(), 0)
	d.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return d
}

// Send dispatches a message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a single character key.
func (d *Driver) Press(r rune) {
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends a string one key event at a time.
func (d *Driver) Type(s string) {
	for _, r := range s {
		d.Press(r)
	}
}

// Enter sends the Enter key.
func (d *Driver) Enter() { d.Send(tea.KeyMsg{Type: tea.KeyEnter}) }

// Esc sends the Escape key.
func (d *Driver) Esc() { d.Send(tea.KeyMsg{Type: tea.KeyEsc}) }

// Tab sends the Tab key.
func (d *Driver) Tab() { d.Send(tea.KeyMsg{Type: tea.KeyTab}) }

// Space sends the space bar as a rune key.
func (d *Driver) Space() { d.Press(' ') }

// CtrlC sends Ctrl+C.
func (d *Driver) CtrlC() { d.Send(tea.KeyMsg{Type: tea.KeyCtrlC}) }

// View returns the current rendered output.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrainDepth {
		d.T.Logf("teatest.Driver: drain depth limit (%d) reached", maxDrainDepth)
		return
	}

	msg := execWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink detects the unexported blink message types from
// bubbles/cursor, which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(fmt.Sprintf("%T", msg), "link")
}
