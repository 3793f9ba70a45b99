package cli

import (
	"bytes"
	"testing"

	"github.com/amolina/tasko/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with the given args and returns stdout.
func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func testApp(t *testing.T) *App {
	t.Helper()
	tr, _, _ := testutil.NewTestTracker(t)
	return &App{Tracker: tr}
}

func TestCmd_AddAndList(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "add", "Buy", "milk")
	require.NoError(t, err)
	assert.Contains(t, out, `Added "Buy milk"`)

	out, err = execute(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] Buy milk")
}

func TestCmd_ListEmpty(t *testing.T) {
	app := testApp(t)

	out, err := execute(t, app, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks.")
}

func TestCmd_ListFilter(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Tracker.Add("Buy milk"))
	require.NoError(t, app.Tracker.Add("Walk dog"))
	require.NoError(t, app.Tracker.Toggle(app.Tracker.Tasks()[0].ID))

	out, err := execute(t, app, "list", "--filter", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "Walk dog")
	assert.NotContains(t, out, "Buy milk")

	out, err = execute(t, app, "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] Buy milk")
	assert.NotContains(t, out, "Walk dog")

	_, err = execute(t, app, "list", "--filter", "bogus")
	assert.Error(t, err)
}

func TestCmd_ListKeepsPositionsUnderFilter(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Tracker.Add("Buy milk"))
	require.NoError(t, app.Tracker.Add("Walk dog"))
	require.NoError(t, app.Tracker.Toggle(app.Tracker.Tasks()[0].ID))

	// "Walk dog" is position 2 even when the filter hides position 1.
	out, err := execute(t, app, "list", "--filter", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "2 [ ] Walk dog")
}

func TestCmd_DoneTogglesByPosition(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Tracker.Add("Buy milk"))

	out, err := execute(t, app, "done", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "done")
	assert.True(t, app.Tracker.Tasks()[0].Completed)

	// Toggling again flips it back.
	_, err = execute(t, app, "done", "1")
	require.NoError(t, err)
	assert.False(t, app.Tracker.Tasks()[0].Completed)
	assert.Equal(t, 1, app.Tracker.Analytics().TodosCompleted)
}

func TestCmd_DoneOutOfRange(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "done", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no task at position 3")

	_, err = execute(t, app, "done", "abc")
	assert.Error(t, err)
}

func TestCmd_RmWithYes(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Tracker.Add("Buy milk"))

	out, err := execute(t, app, "rm", "1", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, `Deleted "Buy milk"`)
	assert.Empty(t, app.Tracker.Tasks())
	assert.Equal(t, 1, app.Tracker.Analytics().TodosDeleted)
}

func TestCmd_Stats(t *testing.T) {
	app := testApp(t)
	require.NoError(t, app.Tracker.StartSession())
	require.NoError(t, app.Tracker.Add("Buy milk"))
	require.NoError(t, app.Tracker.Add("Walk dog"))
	require.NoError(t, app.Tracker.Toggle(app.Tracker.Tasks()[0].ID))

	out, err := execute(t, app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions:          1")
	assert.Contains(t, out, "Tasks created:     2")
	assert.Contains(t, out, "Completion rate:   50%")
	assert.Contains(t, out, "Avg tasks/session: 2.0")
}

func TestCmd_OneShotCommandsDoNotCountVisits(t *testing.T) {
	app := testApp(t)

	_, err := execute(t, app, "add", "Buy milk")
	require.NoError(t, err)

	a := app.Tracker.Analytics()
	assert.Zero(t, a.PageViews)
	assert.Zero(t, a.SessionsCount)
	assert.Zero(t, a.TotalVisitors)
	assert.Equal(t, 1, a.TodosCreated)
}

func TestCmd_RootRequiresTerminal(t *testing.T) {
	app := testApp(t)
	app.IsInteractive = func() bool { return false }

	_, err := execute(t, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interactive terminal required")
}
