// Package tui is the terminal front-end for the task store.
//
// The model never mutates task state itself: every user action is a call on
// *task.Store, and the model re-renders from the Snapshot that call returns.
// Dialog visibility is read from Snapshot.UI.
package tui

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/WillyV3/todoflow/internal/duration"
	"github.com/WillyV3/todoflow/internal/task"
)

const statusTTL = 3 * time.Second

// Options configures a Model.
type Options struct {
	Picker string
	Slider duration.SliderOptions
	Logger *slog.Logger
}

type Model struct {
	store  *task.Store
	snap   task.Snapshot
	opts   Options
	logger *slog.Logger

	cursor   int
	expanded map[int]bool
	width    int
	height   int
	showHelp bool

	statusMsg    string
	statusExpire time.Time

	parentForm *huh.Form
	parentName *string
	childForm  childForm
}

type tickMsg time.Time

func NewModel(store *task.Store, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Model{
		store:    store,
		snap:     store.Snapshot(),
		opts:     opts,
		logger:   logger,
		expanded: make(map[int]bool),
	}
}

// Snapshot returns the state the model last rendered from.
func (m Model) Snapshot() task.Snapshot {
	return m.snap
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		switch {
		case m.snap.UI.ParentDialogVisible:
			return m.updateParentForm(msg)
		case m.snap.UI.ChildDialogVisible:
			return m.updateChildForm(msg)
		}
		return m.handleKeyPress(msg)
	}

	switch {
	case m.snap.UI.ParentDialogVisible:
		return m.updateParentForm(msg)
	case m.snap.UI.ChildDialogVisible:
		return m.updateChildForm(msg)
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < m.snap.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Expand):
		if m.cursor < m.snap.Len() {
			m.expanded[m.cursor] = !m.expanded[m.cursor]
		}

	case key.Matches(msg, keys.AddGroup):
		return m.openParentDialog()

	case key.Matches(msg, keys.AddTask):
		if m.snap.Len() == 0 {
			m.setStatus("Add a group first")
			return m, nil
		}
		return m.openChildDialog(m.cursor)
	}

	return m, nil
}

func (m Model) openParentDialog() (tea.Model, tea.Cmd) {
	m.snap = m.store.ToggleParentDialog()
	name := ""
	m.parentName = &name
	m.parentForm = newParentForm(m.parentName)
	return m, m.parentForm.Init()
}

func (m Model) closeParentDialog() Model {
	if m.snap.UI.ParentDialogVisible {
		m.snap = m.store.ToggleParentDialog()
	}
	m.parentForm = nil
	m.parentName = nil
	return m
}

func (m Model) updateParentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.parentForm == nil {
		name := ""
		m.parentName = &name
		m.parentForm = newParentForm(m.parentName)
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, keys.Cancel) {
		m = m.closeParentDialog()
		m.setStatus("Cancelled")
		return m, nil
	}

	form, cmd := m.parentForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.parentForm = f
	}

	switch m.parentForm.State {
	case huh.StateCompleted:
		m = m.submitParent(*m.parentName)
		return m, nil
	case huh.StateAborted:
		m = m.closeParentDialog()
		return m, nil
	}
	return m, cmd
}

// submitParent adds a group named name and closes the dialog. Blank names
// leave the dialog open.
func (m Model) submitParent(name string) Model {
	name = strings.TrimSpace(name)
	if name == "" {
		m.setStatus(errNameRequired.Error())
		if m.parentName != nil {
			m.parentForm = newParentForm(m.parentName)
		}
		return m
	}

	m.snap = m.store.AddParent(name)
	m = m.closeParentDialog()
	m.cursor = m.snap.Len() - 1
	m.setStatus(fmt.Sprintf("Group %q added", name))
	return m
}

func (m Model) openChildDialog(parentIndex int) (tea.Model, tea.Cmd) {
	picker, err := duration.NewPicker(m.opts.Picker, m.opts.Slider)
	if err != nil {
		m.logger.Warn("falling back to wheel picker", "error", err)
		picker = duration.NewWheel()
	}

	m.snap = m.store.ToggleChildDialog(parentIndex)
	m.childForm = newChildForm(m.snap.Parents[parentIndex].Name, picker)
	return m, m.childForm.Init()
}

func (m Model) closeChildDialog() Model {
	if m.snap.UI.ChildDialogVisible {
		m.snap = m.store.ToggleChildDialog(task.NoTarget)
	}
	return m
}

func (m Model) updateChildForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.childForm.picker == nil {
		return m.closeChildDialog(), nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Cancel):
			m = m.closeChildDialog()
			m.setStatus("Cancelled")
			return m, nil
		case key.Matches(k, keys.Submit) && m.childForm.focusIndex == focusSave:
			return m.submitChild(), nil
		}
	}

	var cmd tea.Cmd
	m.childForm, cmd = m.childForm.Update(msg)
	return m, cmd
}

func (m Model) submitChild() Model {
	code, secs, ok := m.childForm.values()
	if !ok {
		m.childForm.err = "Code is required"
		return m
	}

	target := m.snap.UI.TargetParent
	snap, err := m.store.AddChild(target, code, secs)
	if err != nil {
		m.logger.Error("add child failed", "target", target, "error", err)
		m = m.closeChildDialog()
		m.setStatus(fmt.Sprintf("Error: %v", err))
		return m
	}

	m.snap = snap
	m = m.closeChildDialog()
	m.expanded[target] = true
	m.setStatus(fmt.Sprintf("Added %s (%s)", code, duration.FormatSeconds(secs)))
	return m
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpire = time.Now().Add(statusTTL)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
