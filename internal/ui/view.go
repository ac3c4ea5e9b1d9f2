package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/tasklist-go/internal/task"
	"github.com/nibzard/tasklist-go/internal/utils"
)

// View implements tea.Model.
func (m *Model) View() string {
	st := newStyles(m.state.DarkMode)

	sections := []string{
		st.title.Render("Tasks"),
		m.viewList(st),
		st.title.Render("New task"),
		m.viewForm(st),
	}
	if m.state.DatePickerVisible {
		sections = append(sections, m.viewDatePicker(st))
	}
	if m.state.SettingsVisible {
		sections = append(sections, m.viewSettings(st))
	}
	if err := m.state.LastError; err != nil {
		sections = append(sections, st.status.Render("! "+err.Error()))
	}
	sections = append(sections, m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	app := st.app
	if m.width > 0 {
		app = app.Width(m.width)
	}
	return app.Render(view)
}

func (m *Model) viewList(st styles) string {
	tasks := m.state.Tasks()
	if len(tasks) == 0 {
		return st.muted.Render("  No tasks yet. Press n to add one.") + "\n"
	}

	var b strings.Builder
	for i, t := range tasks {
		b.WriteString(m.viewRow(st, i, t))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) viewRow(st styles, i int, t task.Task) string {
	pointer := "  "
	nameStyle := st.row
	if i == m.cursor && m.focus == focusList {
		pointer = "> "
		nameStyle = st.selected
	}
	mark := "[ ]"
	if m.marked[i] {
		mark = "[x]"
	}

	dateStyle := st.date
	if m.state.IsOverdue(t) {
		dateStyle = st.overdue
	}

	name := t.Name
	if name == "" {
		name = "(untitled)"
	}

	line := fmt.Sprintf("%s%s %s  %s", pointer, mark, nameStyle.Render(name), dateStyle.Render(formatDue(t.Date)))
	if t.Description != "" {
		line += "\n      " + st.desc.Render(t.Description)
	}
	return line
}

func (m *Model) viewForm(st styles) string {
	labels := [3]string{"Name", "Description", "Due"}
	var rows []string
	for i, label := range labels {
		row := st.label.Render(label) + m.inputs[i].View()
		if i == 2 {
			if m.dateBad {
				row += "  " + st.status.Render("invalid date, keeping "+utils.FormatDay(m.state.Date))
			} else {
				row += "  " + st.muted.Render(m.state.Date.Format("Mon"))
			}
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) viewDatePicker(st styles) string {
	date := m.state.Date
	start := date.AddDate(0, 0, -int(date.Weekday()))

	var week []string
	for d := 0; d < 7; d++ {
		day := start.AddDate(0, 0, d)
		cell := fmt.Sprintf("%s %2d", day.Format("Mon")[:2], day.Day())
		if d == int(date.Weekday()) {
			cell = st.selected.Render("[" + cell + "]")
		} else {
			cell = " " + cell + " "
		}
		week = append(week, cell)
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Due date"),
		"◀ "+date.Format("Monday, January 2, 2006")+" ▶",
		strings.Join(week, ""),
		st.muted.Render("←/→ day  ↑/↓ week  enter done"),
	)
	return st.sheet.Render(body)
}

func (m *Model) viewSettings(st styles) string {
	state := "off"
	if m.state.DarkMode {
		state = "on"
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		st.title.Render("Settings"),
		fmt.Sprintf("Dark mode: %s", state),
		st.muted.Render("ctrl+t toggle  esc close"),
	)
	return st.sheet.Render(body)
}

func formatDue(t time.Time) string {
	if t.IsZero() {
		return "no date"
	}
	return utils.FormatDay(t)
}
