package task

import (
	"testing"
	"time"
)

func threeTasks() *Store {
	s := NewStore()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Add("first", "", day)
	s.Add("second", "", day.AddDate(0, 0, 1))
	s.Add("third", "", day.AddDate(0, 0, 2))
	return s
}

func names(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAdd(t *testing.T) {
	s := NewStore()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	added := s.Add("Buy milk", "2%", date)

	if s.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", s.Len())
	}
	got, ok := s.At(0)
	if !ok {
		t.Fatal("At(0): not found")
	}
	if got.ID != added.ID {
		t.Errorf("ID: got %q, want %q", got.ID, added.ID)
	}
	if got.Name != "Buy milk" || got.Description != "2%" || !got.Date.Equal(date) {
		t.Errorf("fields: got %+v", got)
	}
	if got.IsCompleted {
		t.Error("IsCompleted: got true, want false")
	}
}

func TestAddAllowsEmptyFields(t *testing.T) {
	s := NewStore()
	s.Add("", "", time.Time{})
	if s.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", s.Len())
	}
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := threeTasks()
	want := []string{"first", "second", "third"}
	if got := names(s.All()); !equalStrings(got, want) {
		t.Errorf("All: got %v, want %v", got, want)
	}
}

func TestDeleteAt(t *testing.T) {
	tests := []struct {
		name        string
		offsets     []int
		wantRemoved int
		want        []string
	}{
		{"first", []int{0}, 1, []string{"second", "third"}},
		{"middle", []int{1}, 1, []string{"first", "third"}},
		{"last", []int{2}, 1, []string{"first", "second"}},
		{"multi select", []int{0, 2}, 2, []string{"second"}},
		{"multi select unordered", []int{2, 0}, 2, []string{"second"}},
		{"all", []int{0, 1, 2}, 3, []string{}},
		{"duplicate offsets", []int{1, 1}, 1, []string{"first", "third"}},
		{"out of range ignored", []int{3, -1, 99}, 0, []string{"first", "second", "third"}},
		{"mixed valid and invalid", []int{-1, 0, 7}, 1, []string{"second", "third"}},
		{"no offsets", nil, 0, []string{"first", "second", "third"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := threeTasks()
			removed := s.DeleteAt(tt.offsets...)
			if removed != tt.wantRemoved {
				t.Errorf("removed: got %d, want %d", removed, tt.wantRemoved)
			}
			if got := names(s.All()); !equalStrings(got, tt.want) {
				t.Errorf("remaining: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDeleteAtEmptyStore(t *testing.T) {
	s := NewStore()
	if removed := s.DeleteAt(0); removed != 0 {
		t.Errorf("removed: got %d, want 0", removed)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	s := threeTasks()
	all := s.All()
	all[0].Name = "mutated"

	got, _ := s.At(0)
	if got.Name != "first" {
		t.Errorf("store mutated through All(): got %q", got.Name)
	}
}

func TestReplace(t *testing.T) {
	s := threeTasks()
	s.Replace([]Task{{ID: "x", Name: "only"}})

	if s.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", s.Len())
	}
	if _, ok := s.At(1); ok {
		t.Error("At(1): expected not found")
	}
}
