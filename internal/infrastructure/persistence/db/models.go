package db

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Token struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	Purpose   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Project struct {
	ID          uuid.UUID
	Name        string
	ClientName  string
	Description string
	ManagerID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProjectMember struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
}

type Task struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type TaskStatusEvent struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	UserID    uuid.UUID
	Status    string
	CreatedAt time.Time
}

type Note struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	CreatedBy uuid.UUID
	Content   string
	CreatedAt time.Time
}
