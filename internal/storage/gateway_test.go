package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/nibzard/tasklist-go/internal/task"
)

func sampleTasks() []task.Task {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := task.NewStore()
	s.Add("Buy milk", "2%", base)
	s.Add("Call mom", "", base.Add(36*time.Hour+123*time.Millisecond))
	s.Add("", "no name", base.In(time.FixedZone("CET", 3600)))
	return s.All()
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		name := "in place"
		if atomic {
			name = "atomic"
		}
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			g := New(path, WithAtomicWrites(atomic))

			original := sampleTasks()
			if err := g.Save(original); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := g.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if len(loaded) != len(original) {
				t.Fatalf("Tasks count: got %d, want %d", len(loaded), len(original))
			}
			for i := range original {
				if !loaded[i].Equal(original[i]) {
					t.Errorf("task %d: got %+v, want %+v", i, loaded[i], original[i])
				}
			}
		})
	}
}

func TestSaveWritesJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	g := New(path)

	tasks := []task.Task{{
		ID:          "7d9f0c3e-2b1a-4c55-9a0e-1f3b6c2d8e41",
		Name:        "Buy milk",
		Description: "2%",
		Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}}
	if err := g.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.HasSuffix(string(data), "]\n") {
		t.Errorf("expected trailing newline after array, got %q", data)
	}

	var raw []map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("file is not a JSON array: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("array length: got %d, want 1", len(raw))
	}
	want := map[string]interface{}{
		"id":          "7d9f0c3e-2b1a-4c55-9a0e-1f3b6c2d8e41",
		"name":        "Buy milk",
		"description": "2%",
		"date":        "2024-01-01T00:00:00Z",
		"isCompleted": false,
	}
	for k, v := range want {
		if raw[0][k] != v {
			t.Errorf("%s: got %v, want %v", k, raw[0][k], v)
		}
	}
	if len(raw[0]) != len(want) {
		t.Errorf("unexpected keys: %v", raw[0])
	}
}

func TestSaveEmptyStoreWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := New(path).Save(nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("got %q, want []", data)
	}
}

func TestSaveCreatesDataDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", DefaultFileName)
	if err := New(path).Save(sampleTasks()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	g := New(path)

	if err := g.Save(sampleTasks()); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := g.Save(sampleTasks()[:1]); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := g.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Errorf("Tasks count: got %d, want 1", len(loaded))
	}
}

func TestAtomicSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	g := New(filepath.Join(dir, DefaultFileName), WithAtomicWrites(true))

	for i := 0; i < 3; i++ {
		if err := g.Save(sampleTasks()); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != DefaultFileName {
		var got []string
		for _, e := range entries {
			got = append(got, e.Name())
		}
		t.Errorf("dir entries: got %v, want [%s]", got, DefaultFileName)
	}
}

func TestSaveWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory in place of the file makes both write strategies fail.
	path := filepath.Join(dir, DefaultFileName)
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	for _, atomic := range []bool{true, false} {
		err := New(path, WithAtomicWrites(atomic)).Save(sampleTasks())
		if err == nil {
			t.Fatalf("atomic=%v: expected error", atomic)
		}
		if !errors.Is(err, ErrWrite) {
			t.Errorf("atomic=%v: expected ErrWrite, got %v", atomic, err)
		}
		var serr *Error
		if !errors.As(err, &serr) || serr.Op != "save" || serr.Path != path {
			t.Errorf("atomic=%v: unexpected error detail: %#v", atomic, serr)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	g := New(filepath.Join(t.TempDir(), "missing", DefaultFileName))
	tasks, err := g.Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", tasks)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated", `[{"id": "x", "name": `},
		{"not json", "hello"},
		{"empty file", ""},
		{"object instead of array", `{"tasks": []}`},
		{"bad date", `[{"id":"x","name":"a","description":"","date":"yesterday","isCompleted":false}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			tasks, err := New(path).Load()
			if err == nil {
				t.Fatalf("expected error, got tasks %v", tasks)
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("expected ErrDecode, got %v", err)
			}
		})
	}
}

func TestLoadNullIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	if err := os.WriteFile(path, []byte("null\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tasks, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(tasks))
	}
}

func TestLoadAcceptsSecondPrecisionDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	content := `[{"id":"7d9f0c3e-2b1a-4c55-9a0e-1f3b6c2d8e41","name":"a","description":"","date":"2024-01-01T10:00:00Z","isCompleted":true}]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tasks, err := New(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if len(tasks) != 1 || !tasks[0].Date.Equal(want) || !tasks[0].IsCompleted {
		t.Errorf("got %+v", tasks)
	}
}

func TestLoadReadFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := New(path).Load()
	if !errors.Is(err, ErrRead) {
		t.Errorf("expected ErrRead, got %v", err)
	}
}
