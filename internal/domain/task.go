package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// TaskStatus is one of the five workflow states. Any enumerated status is a
// legal successor of any other; there is no transition graph.
type TaskStatus string

const (
	StatusPending     TaskStatus = "pending"
	StatusOnHold      TaskStatus = "onHold"
	StatusInProgress  TaskStatus = "inProgress"
	StatusUnderReview TaskStatus = "underReview"
	StatusCompleted   TaskStatus = "completed"
)

// ParseTaskStatus validates membership in the status enumeration.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case StatusPending, StatusOnHold, StatusInProgress, StatusUnderReview, StatusCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

// Task belongs to exactly one project. Status changes append to an immutable
// history recorded as TaskStatusEvents.
type Task struct {
	ID          TaskID
	ProjectID   ProjectID
	Name        string
	Description string
	Status      TaskStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BelongsTo reports whether the task is part of the given project.
func (t *Task) BelongsTo(projectID ProjectID) bool {
	return t.ProjectID == projectID
}

// TaskStatusEvent is one append-only history entry: who moved the task and to
// which status.
type TaskStatusEvent struct {
	ID        uuid.UUID
	TaskID    TaskID
	User      UserRef
	Status    TaskStatus
	CreatedAt time.Time
}
