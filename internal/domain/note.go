package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoteID is a value object for note identity.
type NoteID struct{ uuid.UUID }

// NewNoteID creates a new NoteID from uuid.
func NewNoteID(id uuid.UUID) NoteID { return NoteID{UUID: id} }

// String returns the canonical string form.
func (n NoteID) String() string { return n.UUID.String() }

// Note is attached to a task. Only its author may delete it.
type Note struct {
	ID        NoteID
	TaskID    TaskID
	CreatedBy UserRef
	Content   string
	CreatedAt time.Time
}

// AuthoredBy reports whether the user wrote the note.
func (n *Note) AuthoredBy(userID UserID) bool {
	return n.CreatedBy.ID == userID
}
