package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/WillyV3/todoflow/internal/duration"
)

const (
	focusCode = iota
	focusPicker
	focusSave
	focusCount
)

type childForm struct {
	focusIndex int
	code       textinput.Model
	picker     duration.Picker
	bar        progress.Model
	groupName  string
	err        string
}

func newChildForm(groupName string, picker duration.Picker) childForm {
	t := textinput.New()
	t.Cursor.Style = cursorStyle
	t.Placeholder = "Task code (required)"
	t.Focus()
	t.PromptStyle = focusedStyle
	t.TextStyle = focusedStyle
	t.CharLimit = 200

	return childForm{
		code:      t,
		picker:    picker,
		groupName: groupName,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (f childForm) Init() tea.Cmd {
	return textinput.Blink
}

func (f childForm) Update(msg tea.Msg) (childForm, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		f.code, cmd = f.code.Update(msg)
		return f, cmd
	}

	switch {
	case key.Matches(k, keys.NextField):
		return f.cycle(1)
	case key.Matches(k, keys.PrevField):
		return f.cycle(-1)
	case key.Matches(k, keys.Submit) && f.focusIndex != focusSave:
		return f.cycle(1)
	}

	switch f.focusIndex {
	case focusCode:
		var cmd tea.Cmd
		f.code, cmd = f.code.Update(msg)
		if f.code.Value() != "" {
			f.err = ""
		}
		return f, cmd

	case focusPicker:
		switch {
		case key.Matches(k, keys.WheelUp):
			f.picker.Adjust(1)
		case key.Matches(k, keys.WheelDown):
			f.picker.Adjust(-1)
		case key.Matches(k, keys.WheelPrev):
			f.picker.Focus(-1)
		case key.Matches(k, keys.WheelNext):
			f.picker.Focus(1)
		}
	}

	return f, nil
}

func (f childForm) cycle(delta int) (childForm, tea.Cmd) {
	f.focusIndex = (f.focusIndex + delta + focusCount) % focusCount

	if f.focusIndex == focusCode {
		f.code.PromptStyle = focusedStyle
		f.code.TextStyle = focusedStyle
		return f, f.code.Focus()
	}
	f.code.Blur()
	f.code.PromptStyle = noStyle
	f.code.TextStyle = noStyle
	return f, nil
}

// values returns the entered code and duration. ok is false when the code
// is blank.
func (f childForm) values() (code string, seconds int, ok bool) {
	code = strings.TrimSpace(f.code.Value())
	return code, f.picker.Seconds(), code != ""
}

func (f childForm) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTitle)

	b.WriteString(titleStyle.Render("➕ New Task in " + f.groupName))
	b.WriteString("\n\n")

	b.WriteString(f.label("Code:", focusCode))
	b.WriteString("\n")
	b.WriteString(f.code.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Duration:", focusPicker))
	b.WriteString("\n")
	b.WriteString(f.pickerView())
	b.WriteString("\n\n")

	button := blurredButton
	if f.focusIndex == focusSave {
		button = focusedButton
	}
	b.WriteString(button)
	b.WriteString("  ")
	b.WriteString(cancelButton)

	if f.err != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.err))
	}

	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Tab: next field • ↑/↓: adjust • ←/→: wheel • Enter: save • Esc: cancel"))

	return dialogStyle.Render(b.String())
}

func (f childForm) label(s string, idx int) string {
	if f.focusIndex == idx {
		return focusedStyle.Render(s)
	}
	return blurredStyle.Render(s)
}

func (f childForm) pickerView() string {
	switch p := f.picker.(type) {
	case *duration.Wheel:
		return f.wheelView(p)
	case *duration.Slider:
		return f.bar.ViewAs(p.Fraction()) + "  " + focusedStyle.Render(p.Display()) +
			blurredStyle.Render(fmt.Sprintf(" / %ds", p.Max()))
	default:
		return f.picker.Display()
	}
}

func (f childForm) wheelView(w *duration.Wheel) string {
	units := []string{"h", "m", "s"}
	cols := make([]string, 0, len(units))

	for i, unit := range units {
		prev, cur, next := w.Window(i)

		curStyle := lipgloss.NewStyle().Bold(true).Foreground(colorFg)
		if f.focusIndex == focusPicker && w.Focused() == i {
			curStyle = curStyle.Foreground(colorAccent).Underline(true)
		}

		col := lipgloss.JoinVertical(lipgloss.Center,
			blurredStyle.Render(fmt.Sprintf("%02d", prev)),
			curStyle.Render(fmt.Sprintf("%02d", cur))+" "+unit,
			blurredStyle.Render(fmt.Sprintf("%02d", next)),
		)
		cols = append(cols, lipgloss.NewStyle().PaddingRight(3).Render(col))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}
