package ports

import (
	"context"
	"time"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

// UserRepository defines persistence for accounts. Lookups return (nil, nil)
// when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID domain.UserID, name, email string) error
	UpdatePassword(ctx context.Context, userID domain.UserID, passwordHash string) error
	SetConfirmed(ctx context.Context, userID domain.UserID) error
}

// TokenRepository stores one-time tokens by hash. GetByHash excludes expired
// rows; Delete consumes a token.
type TokenRepository interface {
	Create(ctx context.Context, userID domain.UserID, purpose domain.TokenPurpose, tokenHash string, expiresAt time.Time) error
	GetByHash(ctx context.Context, tokenHash string, purpose domain.TokenPurpose) (*domain.OneTimeToken, error)
	Delete(ctx context.Context, tokenHash string) error
}

// ProjectRepository defines persistence for projects and their teams.
// Delete cascades to the project's tasks, their history and their notes
// within one transaction.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	ListForUser(ctx context.Context, userID domain.UserID) ([]*domain.Project, error)
	GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, projectID domain.ProjectID) error
	AddMember(ctx context.Context, projectID domain.ProjectID, userID domain.UserID) error
	RemoveMember(ctx context.Context, projectID domain.ProjectID, userID domain.UserID) error
	ListMembers(ctx context.Context, projectID domain.ProjectID) ([]domain.UserRef, error)
}

// TaskRepository defines persistence for tasks and their status history.
// UpdateStatus writes the new status and its history event atomically; Delete
// cascades to the task's notes and history within one transaction.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error)
	GetByID(ctx context.Context, taskID domain.TaskID) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	UpdateStatus(ctx context.Context, taskID domain.TaskID, userID domain.UserID, status domain.TaskStatus) error
	Delete(ctx context.Context, taskID domain.TaskID) error
	ListStatusEvents(ctx context.Context, taskID domain.TaskID) ([]*domain.TaskStatusEvent, error)
}

// NoteRepository defines persistence for task notes.
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.Note, error)
	GetByID(ctx context.Context, noteID domain.NoteID) (*domain.Note, error)
	Delete(ctx context.Context, noteID domain.NoteID) error
}
