package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestParseTaskStatus(t *testing.T) {
	valid := []string{"pending", "onHold", "inProgress", "underReview", "completed"}
	for _, s := range valid {
		status, ok := ParseTaskStatus(s)
		if !ok {
			t.Errorf("ParseTaskStatus(%q) rejected a valid status", s)
		}
		if string(status) != s {
			t.Errorf("ParseTaskStatus(%q) = %q", s, status)
		}
	}

	invalid := []string{"", "Pending", "done", "on_hold", "COMPLETED"}
	for _, s := range invalid {
		if _, ok := ParseTaskStatus(s); ok {
			t.Errorf("ParseTaskStatus(%q) accepted an invalid status", s)
		}
	}
}

func TestTaskBelongsTo(t *testing.T) {
	projectID := NewProjectID(uuid.New())
	otherID := NewProjectID(uuid.New())
	task := &Task{ID: NewTaskID(uuid.New()), ProjectID: projectID}

	if !task.BelongsTo(projectID) {
		t.Error("task should belong to its own project")
	}
	if task.BelongsTo(otherID) {
		t.Error("task should not belong to a different project")
	}
}
