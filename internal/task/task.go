package task

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single entry in the task list.
type Task struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	IsCompleted bool      `json:"isCompleted"`
}

// New creates a task with a fresh identifier.
// Name and description are not validated.
func New(name, description string, date time.Time) Task {
	return Task{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Date:        date,
	}
}

// IsOverdue reports whether the due date is strictly before now.
// A task due exactly at now is not overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Date.Before(now)
}

// Equal compares all fields. Dates compare by instant, ignoring location.
func (t Task) Equal(other Task) bool {
	return t.ID == other.ID &&
		t.Name == other.Name &&
		t.Description == other.Description &&
		t.Date.Equal(other.Date) &&
		t.IsCompleted == other.IsCompleted
}
