package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/WillyV3/todoflow/internal/duration"
	"github.com/WillyV3/todoflow/internal/task"
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch {
	case m.snap.UI.ParentDialogVisible && m.parentForm != nil:
		return m.dialogView(m.parentForm.View())
	case m.snap.UI.ChildDialogVisible && m.childForm.picker != nil:
		return m.dialogView(m.childForm.View())
	default:
		return m.listView()
	}
}

func (m Model) dialogView(body string) string {
	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(body)
}

func (m Model) listView() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorAccent).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorAccent).
		Width(max(m.width-4, 10)).
		Align(lipgloss.Center)

	b.WriteString(titleStyle.Render("TodoFlow"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorMuted).Render(m.stats()))
	b.WriteString("\n\n")

	if m.snap.Len() == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true).
			Render("No groups yet. Press a to add one."))
		b.WriteString("\n")
	}

	for i, p := range m.snap.Parents {
		b.WriteString(m.renderParent(i, p))
	}

	if time.Now().Before(m.statusExpire) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(colorAccent).
			Italic(true).
			Render(m.statusMsg))
	}

	b.WriteString("\n\n")
	b.WriteString(m.helpView())

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(b.String())
}

func (m Model) renderParent(i int, p task.ParentItem) string {
	var b strings.Builder

	cursor := "  "
	if i == m.cursor {
		cursor = "→ "
	}
	arrow := "▸"
	if m.expanded[i] {
		arrow = "▾"
	}

	nameStyle := lipgloss.NewStyle().Foreground(colorFg)
	if i == m.cursor {
		nameStyle = nameStyle.Bold(true).Foreground(colorAccent)
	}

	name := p.Name
	if name == "" {
		name = "(unnamed)"
	}

	b.WriteString(nameStyle.Render(fmt.Sprintf("%s%s %s", cursor, arrow, name)))
	b.WriteString(blurredStyle.Render(fmt.Sprintf(" (%d) %s", len(p.Children), duration.Decompose(p.TotalSeconds()))))
	b.WriteString("\n")

	if !m.expanded[i] {
		return b.String()
	}

	if len(p.Children) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true).
			MarginLeft(6).
			Render("no tasks"))
		b.WriteString("\n")
		return b.String()
	}

	childStyle := lipgloss.NewStyle().Foreground(colorFg).MarginLeft(6)
	for _, c := range p.Children {
		b.WriteString(childStyle.Render(fmt.Sprintf("• %-24s %s", c.Code, duration.FormatSeconds(c.DurationSeconds))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) stats() string {
	total := 0
	for _, p := range m.snap.Parents {
		total += p.TotalSeconds()
	}
	return fmt.Sprintf("%d groups • %d tasks • %s planned",
		m.snap.Len(), m.snap.ChildCount(), duration.Decompose(total))
}

func (m Model) helpView() string {
	if !m.showHelp {
		return blurredStyle.Render("Press ? for help • a to add group • c to add task • q to quit")
	}

	helpStyle := lipgloss.NewStyle().
		Foreground(colorMuted).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorDim).
		Padding(0, 1)

	help := []string{
		"Navigation:",
		helpLine(keys.Up.Help().Key, keys.Up.Help().Desc),
		helpLine(keys.Down.Help().Key, keys.Down.Help().Desc),
		helpLine(keys.Expand.Help().Key, keys.Expand.Help().Desc),
		"",
		"Actions:",
		helpLine(keys.AddGroup.Help().Key, keys.AddGroup.Help().Desc),
		helpLine(keys.AddTask.Help().Key, keys.AddTask.Help().Desc),
		"",
		"In the task dialog:",
		helpLine(keys.NextField.Help().Key, keys.NextField.Help().Desc),
		helpLine(keys.WheelUp.Help().Key+" "+keys.WheelDown.Help().Key, "adjust duration"),
		helpLine(keys.WheelPrev.Help().Key+" "+keys.WheelNext.Help().Key, "switch wheel"),
		helpLine(keys.Cancel.Help().Key, keys.Cancel.Help().Desc),
		"",
		"Other:",
		helpLine(keys.Help.Help().Key, keys.Help.Help().Desc),
		helpLine("q/ctrl+c", "quit"),
	}

	return helpStyle.Render(strings.Join(help, "\n"))
}

func helpLine(k, desc string) string {
	return fmt.Sprintf("  %-12s - %s", k, desc)
}
