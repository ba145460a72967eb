package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// Project is owned by its manager; team members are collaborators with read
// and task-creation rights but no ownership rights.
type Project struct {
	ID          ProjectID
	Name        string
	ClientName  string
	Description string
	ManagerID   UserID
	Team        []UserID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsManager reports whether the user owns the project.
func (p *Project) IsManager(userID UserID) bool {
	return p.ManagerID == userID
}

// HasCollaborator reports whether the user is on the team (manager excluded).
func (p *Project) HasCollaborator(userID UserID) bool {
	for _, id := range p.Team {
		if id == userID {
			return true
		}
	}
	return false
}

// IsMember reports whether the user may see the project: its manager or any
// team collaborator.
func (p *Project) IsMember(userID UserID) bool {
	return p.IsManager(userID) || p.HasCollaborator(userID)
}
