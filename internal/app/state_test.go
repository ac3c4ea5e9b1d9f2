package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/storage"
	"github.com/nibzard/tasklist-go/internal/task"
)

// memPersister records saves and serves a fixed load result.
type memPersister struct {
	loaded  []task.Task
	loadErr error
	saveErr error
	saves   [][]task.Task
}

func (m *memPersister) Save(tasks []task.Task) error {
	m.saves = append(m.saves, tasks)
	return m.saveErr
}

func (m *memPersister) Load() ([]task.Task, error) {
	return m.loaded, m.loadErr
}

var fixedNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func TestNewStartsClean(t *testing.T) {
	s := New(&memPersister{}, WithClock(clock))

	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
	if s.DarkMode || s.SettingsVisible || s.DatePickerVisible {
		t.Error("expected all toggles off")
	}
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !s.Date.Equal(want) {
		t.Errorf("Date: got %v, want %v", s.Date, want)
	}
}

func TestAddTask(t *testing.T) {
	p := &memPersister{}
	s := New(p, WithClock(clock))

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.SetName("Buy milk")
	s.SetDescription("2%")
	s.SetDate(date)
	added := s.AddTask()

	tasks := s.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("Len: got %d, want 1", len(tasks))
	}
	got := tasks[0]
	if got.ID != added.ID || got.Name != "Buy milk" || got.Description != "2%" || !got.Date.Equal(date) || got.IsCompleted {
		t.Errorf("task: got %+v", got)
	}

	if s.Name != "" || s.Description != "" {
		t.Errorf("form not cleared: name=%q description=%q", s.Name, s.Description)
	}
	if !s.Date.Equal(s.Today()) {
		t.Errorf("form date not reset: got %v", s.Date)
	}

	if len(p.saves) != 1 || len(p.saves[0]) != 1 {
		t.Fatalf("expected one save of one task, got %v", p.saves)
	}
}

func TestAddTaskWithEmptyForm(t *testing.T) {
	p := &memPersister{}
	s := New(p, WithClock(clock))
	s.AddTask()
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestDeleteAt(t *testing.T) {
	p := &memPersister{}
	s := New(p, WithClock(clock))
	for _, name := range []string{"a", "b", "c"} {
		s.SetName(name)
		s.AddTask()
	}

	removed := s.DeleteAt(0)
	if removed != 1 {
		t.Errorf("removed: got %d, want 1", removed)
	}
	tasks := s.Tasks()
	if len(tasks) != 2 || tasks[0].Name != "b" || tasks[1].Name != "c" {
		t.Errorf("remaining: got %+v", tasks)
	}
	if len(p.saves) != 4 {
		t.Errorf("saves: got %d, want 4", len(p.saves))
	}
	if last := p.saves[len(p.saves)-1]; len(last) != 2 {
		t.Errorf("last save: got %d tasks, want 2", len(last))
	}
}

func TestDeleteAtOutOfRange(t *testing.T) {
	s := New(&memPersister{}, WithClock(clock))
	s.AddTask()
	if removed := s.DeleteAt(5, -1); removed != 0 {
		t.Errorf("removed: got %d, want 0", removed)
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestLaunch(t *testing.T) {
	loaded := []task.Task{task.New("from disk", "", fixedNow)}
	s := New(&memPersister{loaded: loaded}, WithClock(clock))
	s.Launch()

	if s.LastError != nil {
		t.Errorf("LastError: got %v", s.LastError)
	}
	if tasks := s.Tasks(); len(tasks) != 1 || tasks[0].Name != "from disk" {
		t.Errorf("tasks: got %+v", tasks)
	}
}

func TestLaunchFailureKeepsState(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	p := &memPersister{loadErr: errors.New("boom")}
	s := New(p, WithClock(clock), WithLogger(logger))

	s.Launch()

	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
	if s.LastError == nil {
		t.Error("expected LastError to be set")
	}
	if !strings.Contains(buf.String(), "failed to load tasks") {
		t.Errorf("expected load failure to be logged, got %q", buf.String())
	}
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	s := New(p, WithClock(clock))

	s.SetName("kept")
	s.AddTask()

	if s.Len() != 1 {
		t.Errorf("in-memory state rolled back: Len %d", s.Len())
	}
	if s.LastError == nil {
		t.Fatal("expected LastError to be set")
	}

	p.saveErr = nil
	s.AddTask()
	if s.LastError != nil {
		t.Errorf("LastError not cleared after successful save: %v", s.LastError)
	}
}

func TestToggles(t *testing.T) {
	s := New(&memPersister{}, WithClock(clock))

	s.ToggleSettings()
	s.ToggleDatePicker()
	if !s.SettingsVisible || !s.DatePickerVisible {
		t.Error("expected both panels visible; toggles must be independent")
	}

	s.ToggleDarkMode()
	if !s.DarkMode {
		t.Error("expected dark mode on")
	}
	s.ToggleSettings()
	if s.SettingsVisible || !s.DarkMode || !s.DatePickerVisible {
		t.Error("closing settings changed other state")
	}
}

func TestIsOverdue(t *testing.T) {
	s := New(&memPersister{}, WithClock(clock))

	if !s.IsOverdue(task.Task{Date: fixedNow.Add(-time.Second)}) {
		t.Error("expected past task to be overdue")
	}
	if s.IsOverdue(task.Task{Date: fixedNow}) {
		t.Error("task due exactly now must not be overdue")
	}
	if s.IsOverdue(task.Task{Date: fixedNow.Add(time.Second)}) {
		t.Error("expected future task not to be overdue")
	}
}

func TestDarkModeNotPersisted(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.DefaultFileName)
	g := storage.New(path)

	s := New(g, WithClock(clock))
	s.ToggleDarkMode()
	s.SetName("x")
	s.AddTask()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if strings.Contains(strings.ToLower(string(data)), "dark") {
		t.Errorf("theme leaked into task file: %s", data)
	}

	relaunched := New(g, WithClock(clock))
	relaunched.Launch()
	if relaunched.DarkMode {
		t.Error("dark mode survived relaunch")
	}
	if relaunched.Len() != 1 {
		t.Errorf("Len after relaunch: got %d, want 1", relaunched.Len())
	}
}

func TestMalformedFileLeavesStoreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), storage.DefaultFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(storage.New(path), WithClock(clock))
	s.Launch()

	if s.Len() != 0 {
		t.Errorf("Len: got %d, want 0", s.Len())
	}
	if !errors.Is(s.LastError, storage.ErrDecode) {
		t.Errorf("LastError: got %v, want ErrDecode", s.LastError)
	}
}
