package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorAccent = lipgloss.Color("#4ec9b0")
	colorTitle  = lipgloss.Color("#569cd6")
	colorFg     = lipgloss.Color("#d4d4d4")
	colorDim    = lipgloss.Color("#666")
	colorMuted  = lipgloss.Color("#999")
	colorError  = lipgloss.Color("#f44336")
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(colorAccent)
	blurredStyle = lipgloss.NewStyle().Foreground(colorDim)
	cursorStyle  = focusedStyle
	noStyle      = lipgloss.NewStyle()
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)

	focusedButton = focusedStyle.Render("[ Save ]")
	blurredButton = blurredStyle.Render("[ Save ]")
	cancelButton  = blurredStyle.Render("[ Cancel (Esc) ]")

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(1, 2)
)

func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorTitle).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorMuted)
	t.Focused.ErrorMessage = errorStyle
	t.Focused.ErrorIndicator = errorStyle
	t.Focused.TextInput.Cursor = cursorStyle
	t.Focused.TextInput.Prompt = focusedStyle
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Placeholder = blurredStyle

	t.Blurred.Title = blurredStyle
	t.Blurred.TextInput.Prompt = blurredStyle
	t.Blurred.TextInput.Text = blurredStyle

	return t
}
