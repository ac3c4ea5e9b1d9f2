// Package app holds the application state shared by every front end.
//
// State owns the task store and the persistence port. Each mutation runs to
// completion, including the save, before the call returns. Persistence
// failures are logged and kept in LastError; they never reach the caller and
// never roll back the in-memory list.
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/task"
	"github.com/nibzard/tasklist-go/internal/utils"
)

// Persister reads and writes the whole task list.
type Persister interface {
	Save(tasks []task.Task) error
	Load() ([]task.Task, error)
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the logger used to report persistence failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *State) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// State is the application state: the task list, the entry form and the
// view toggles. Only the task list is persisted.
type State struct {
	store     *task.Store
	persister Persister
	logger    *log.Logger
	now       func() time.Time

	// Form fields.
	Name        string
	Description string
	Date        time.Time

	DatePickerVisible bool
	SettingsVisible   bool
	DarkMode          bool

	// LastError is the most recent save or load failure, nil after a
	// successful one.
	LastError error
}

// New returns a State with an empty task list and a cleared form.
// DarkMode always starts off.
func New(persister Persister, opts ...Option) *State {
	s := &State{
		store:     task.NewStore(),
		persister: persister,
		logger:    log.New(io.Discard),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.clearForm()
	return s
}

// Launch loads the persisted list. On failure the current list is kept.
func (s *State) Launch() {
	tasks, err := s.persister.Load()
	if err != nil {
		s.LastError = err
		s.logger.Error("failed to load tasks", "err", err)
		return
	}
	s.LastError = nil
	s.store.Replace(tasks)
	s.logger.Info("loaded tasks", "count", len(tasks))
}

// AddTask appends a task built from the form, clears the form and saves.
func (s *State) AddTask() task.Task {
	t := s.store.Add(s.Name, s.Description, s.Date)
	s.logger.Info("added task", "id", t.ID, "name", t.Name)
	s.clearForm()
	s.persist()
	return t
}

// DeleteAt removes the tasks at the given display offsets and saves.
// Out-of-range offsets are ignored; the file is rewritten regardless.
func (s *State) DeleteAt(offsets ...int) int {
	removed := s.store.DeleteAt(offsets...)
	s.logger.Info("deleted tasks", "offsets", offsets, "removed", removed)
	s.persist()
	return removed
}

// Tasks returns the task list in display order.
func (s *State) Tasks() []task.Task {
	return s.store.All()
}

// Len returns the number of tasks.
func (s *State) Len() int {
	return s.store.Len()
}

// IsOverdue reports whether t is due strictly before the current time.
func (s *State) IsOverdue(t task.Task) bool {
	return t.IsOverdue(s.now())
}

// Today returns midnight of the current day.
func (s *State) Today() time.Time {
	return utils.StartOfDay(s.now())
}

// SetName sets the form name.
func (s *State) SetName(name string) {
	s.Name = name
}

// SetDescription sets the form description.
func (s *State) SetDescription(description string) {
	s.Description = description
}

// SetDate sets the form due date.
func (s *State) SetDate(date time.Time) {
	s.Date = date
}

// ToggleDatePicker shows or hides the date picker.
func (s *State) ToggleDatePicker() {
	s.DatePickerVisible = !s.DatePickerVisible
}

// ToggleSettings shows or hides the settings sheet.
func (s *State) ToggleSettings() {
	s.SettingsVisible = !s.SettingsVisible
}

// ToggleDarkMode switches between the light and dark theme.
func (s *State) ToggleDarkMode() {
	s.DarkMode = !s.DarkMode
}

func (s *State) clearForm() {
	s.Name = ""
	s.Description = ""
	s.Date = s.Today()
}

func (s *State) persist() {
	if err := s.persister.Save(s.store.All()); err != nil {
		s.LastError = err
		s.logger.Error("failed to save tasks", "err", err)
		return
	}
	s.LastError = nil
}
