package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WillyV3/todoflow/internal/config"
	"github.com/WillyV3/todoflow/internal/duration"
	"github.com/WillyV3/todoflow/internal/tui"
)

func execute(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "todoflow.yaml")
}

func sampleConfig(t *testing.T) string {
	t.Helper()
	path := missingConfig(t)
	require.NoError(t, config.Sample().Save(path))
	return path
}

func TestDurationEncode(t *testing.T) {
	out, err := execute(t, &App{}, "duration", "encode", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "3723\n", out)

	out, err = execute(t, &App{}, "duration", "encode", "1h2m3s")
	require.NoError(t, err)
	assert.Equal(t, "3723\n", out)
}

func TestDurationEncode_BadArgs(t *testing.T) {
	_, err := execute(t, &App{}, "duration", "encode", "1", "2")
	assert.Error(t, err)

	_, err = execute(t, &App{}, "duration", "encode", "a", "b", "c")
	assert.ErrorContains(t, err, "not an integer")

	_, err = execute(t, &App{}, "duration", "encode", "soon")
	assert.ErrorIs(t, err, duration.ErrInvalidDuration)
}

func TestDurationDecode(t *testing.T) {
	out, err := execute(t, &App{}, "duration", "decode", "3723", "--picker", "wheel")
	require.NoError(t, err)
	assert.Equal(t, "01h 02m 03s\n", out)

	out, err = execute(t, &App{}, "duration", "decode", "3723", "--picker", "slider")
	require.NoError(t, err)
	assert.Equal(t, "3723s\n", out)

	out, err = execute(t, &App{}, "--config", missingConfig(t), "duration", "decode", "61")
	require.NoError(t, err)
	assert.Equal(t, "00h 01m 01s\n", out)
}

func TestDurationDecode_Invalid(t *testing.T) {
	_, err := execute(t, &App{}, "duration", "decode", "abc", "--picker", "wheel")
	assert.ErrorIs(t, err, duration.ErrInvalidDuration)

	_, err = execute(t, &App{}, "duration", "decode", "10", "--picker", "dial")
	assert.ErrorIs(t, err, duration.ErrUnknownPicker)
}

func TestInit_WritesSampleAndRefusesOverwrite(t *testing.T) {
	path := missingConfig(t)

	out, err := execute(t, &App{}, "--config", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Created config file")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Sample(), cfg)

	_, err = execute(t, &App{}, "--config", path, "init")
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = execute(t, &App{}, "--config", path, "init", "--force")
	assert.NoError(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, &App{}, "--config", sampleConfig(t), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Work (3 tasks, 02h 02m 03s)")
	assert.Contains(t, out, "├─ EmailABC")
	assert.Contains(t, out, "3723s")
	assert.Contains(t, out, "└─ Review PR")
	assert.Contains(t, out, "Study (0 tasks")
}

func TestList_Empty(t *testing.T) {
	out, err := execute(t, &App{}, "--config", missingConfig(t), "list")
	require.NoError(t, err)
	assert.Equal(t, "No groups.\n", out)
}

func TestRoot_NonInteractivePrintsList(t *testing.T) {
	app := &App{
		IsInteractive: func() bool { return false },
		RunProgram: func(tea.Model) error {
			t.Fatal("tui must not start without a terminal")
			return nil
		},
	}
	out, err := execute(t, app, "--config", sampleConfig(t))
	require.NoError(t, err)
	assert.Contains(t, out, "EmailABC")
}

func TestRoot_InteractiveRunsSeededModel(t *testing.T) {
	var got tui.Model
	app := &App{
		IsInteractive: func() bool { return true },
		RunProgram: func(m tea.Model) error {
			var ok bool
			got, ok = m.(tui.Model)
			require.True(t, ok)
			return nil
		},
	}
	_, err := execute(t, app, "--config", sampleConfig(t), "--picker", "slider")
	require.NoError(t, err)

	snap := got.Snapshot()
	require.Equal(t, 3, snap.Len())
	assert.Equal(t, "Work", snap.Parents[0].Name)
	assert.Equal(t, 3723, snap.Parents[0].Children[0].DurationSeconds)
}

func TestRoot_BadPickerFlag(t *testing.T) {
	_, err := execute(t, &App{IsInteractive: func() bool { return false }},
		"--config", missingConfig(t), "--picker", "dial")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRoot_LogsStoreChangesToFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "todoflow.log")
	cfgPath := filepath.Join(dir, "todoflow.yaml")

	cfg := config.Sample()
	cfg.Log.File = logPath
	require.NoError(t, cfg.Save(cfgPath))

	_, err := execute(t, &App{IsInteractive: func() bool { return false }}, "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "store_change")
	assert.Contains(t, string(data), "code=EmailABC")
}

func TestOpenLogger_NoFileDiscards(t *testing.T) {
	logger, closeLog, err := openLogger(config.LogConfig{Level: "info"})
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closeLog())
}
