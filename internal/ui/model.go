package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nibzard/tasklist-go/internal/app"
	"github.com/nibzard/tasklist-go/internal/utils"
)

// focus identifies the widget receiving keystrokes.
type focus int

const (
	focusList focus = iota
	focusName
	focusDescription
	focusDate
	focusCount
)

// Model is the bubbletea model for the task list screen.
type Model struct {
	state  *app.State
	keys   keyMap
	help   help.Model
	inputs [3]textinput.Model // name, description, date

	focus   focus
	cursor  int
	marked  map[int]bool
	dateBad bool
	width   int
}

// NewModel returns a model over state with the list focused.
func NewModel(state *app.State) *Model {
	m := &Model{
		state:  state,
		keys:   defaultKeyMap(),
		help:   help.New(),
		marked: make(map[int]bool),
	}

	placeholders := [3]string{"What needs doing?", "Details (optional)", utils.DayLayout}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Width = 40
		m.inputs[i] = ti
	}
	m.inputs[2].CharLimit = len(utils.DayLayout)
	m.syncInputs()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Settings):
		m.state.ToggleSettings()
		return m, nil
	case key.Matches(msg, m.keys.DatePicker):
		m.state.ToggleDatePicker()
		return m, nil
	case m.state.SettingsVisible && key.Matches(msg, m.keys.Theme):
		m.state.ToggleDarkMode()
		return m, nil
	}

	// The date picker takes every other key while it is open.
	if m.state.DatePickerVisible {
		m.updateDatePicker(msg)
		return m, nil
	}

	// Settings only claims its own keys.
	if m.state.SettingsVisible {
		if key.Matches(msg, m.keys.Close) {
			m.state.ToggleSettings()
			return m, nil
		}
		if m.focus == focusList && msg.String() == "t" {
			m.state.ToggleDarkMode()
			return m, nil
		}
	}

	if m.focus == focusList {
		return m.updateList(msg)
	}
	return m.updateForm(msg)
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.state.Len()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Mark):
		if n > 0 {
			if m.marked[m.cursor] {
				delete(m.marked, m.cursor)
			} else {
				m.marked[m.cursor] = true
			}
		}
	case key.Matches(msg, m.keys.Delete):
		m.deleteSelected()
	case key.Matches(msg, m.keys.NewTask), key.Matches(msg, m.keys.NextField):
		return m, m.setFocus(focusName)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus(focusDate)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextField):
		return m, m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.PrevField):
		return m, m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, m.keys.Close):
		return m, m.setFocus(focusList)
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, m.setFocus(focusName)
	}

	idx := int(m.focus) - 1
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	m.readInput(m.focus)
	return m, cmd
}

func (m *Model) updateDatePicker(msg tea.KeyMsg) {
	date := m.state.Date
	switch {
	case key.Matches(msg, m.keys.DayBack):
		date = date.AddDate(0, 0, -1)
	case key.Matches(msg, m.keys.DayFwd):
		date = date.AddDate(0, 0, 1)
	case key.Matches(msg, m.keys.WeekBack):
		date = date.AddDate(0, 0, -7)
	case key.Matches(msg, m.keys.WeekFwd):
		date = date.AddDate(0, 0, 7)
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Close):
		m.state.ToggleDatePicker()
		return
	default:
		return
	}
	m.state.SetDate(date)
	m.dateBad = false
	m.inputs[2].SetValue(utils.FormatDay(date))
}

// submit adds a task from the form. A date field that does not parse keeps
// the last valid date.
func (m *Model) submit() {
	m.state.AddTask()
	m.cursor = m.state.Len() - 1
	m.syncInputs()
}

func (m *Model) deleteSelected() {
	n := m.state.Len()
	if n == 0 {
		return
	}

	offsets := make([]int, 0, len(m.marked))
	for off := range m.marked {
		offsets = append(offsets, off)
	}
	if len(offsets) == 0 {
		offsets = append(offsets, m.cursor)
	}
	sort.Ints(offsets)

	m.state.DeleteAt(offsets...)
	m.marked = make(map[int]bool)
	if m.cursor >= m.state.Len() {
		m.cursor = m.state.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// readInput copies an input's value into the form state.
func (m *Model) readInput(f focus) {
	switch f {
	case focusName:
		m.state.SetName(m.inputs[0].Value())
	case focusDescription:
		m.state.SetDescription(m.inputs[1].Value())
	case focusDate:
		date, err := utils.ParseDay(m.inputs[2].Value(), m.state.Today().Location())
		if err != nil {
			m.dateBad = true
			return
		}
		m.dateBad = false
		m.state.SetDate(date)
	}
}

// syncInputs copies the form state into the inputs.
func (m *Model) syncInputs() {
	m.inputs[0].SetValue(m.state.Name)
	m.inputs[1].SetValue(m.state.Description)
	m.inputs[2].SetValue(utils.FormatDay(m.state.Date))
	m.dateBad = false
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.inputs {
		if focus(i+1) == f {
			cmd = m.inputs[i].Focus()
			continue
		}
		m.inputs[i].Blur()
	}
	return cmd
}
