package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createTask = `
INSERT INTO tasks (id, project_id, name, description, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
`

type CreateTaskParams struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	Description string
	Status      string
}

func (q *Queries) CreateTask(ctx context.Context, arg CreateTaskParams) error {
	_, err := q.db.Exec(ctx, createTask,
		arg.ID, arg.ProjectID, arg.Name, arg.Description, arg.Status)
	return err
}

const listTasksByProject = `
SELECT id, project_id, name, description, status, created_at, updated_at
FROM tasks WHERE project_id = $1
ORDER BY created_at
`

func (q *Queries) ListTasksByProject(ctx context.Context, projectID uuid.UUID) ([]Task, error) {
	rows, err := q.db.Query(ctx, listTasksByProject, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

const getTaskByID = `
SELECT id, project_id, name, description, status, created_at, updated_at
FROM tasks WHERE id = $1
`

func (q *Queries) GetTaskByID(ctx context.Context, id uuid.UUID) (Task, error) {
	row := q.db.QueryRow(ctx, getTaskByID, id)
	var t Task
	err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

const updateTask = `
UPDATE tasks SET name = $2, description = $3, updated_at = NOW() WHERE id = $1
`

type UpdateTaskParams struct {
	ID          uuid.UUID
	Name        string
	Description string
}

func (q *Queries) UpdateTask(ctx context.Context, arg UpdateTaskParams) error {
	_, err := q.db.Exec(ctx, updateTask, arg.ID, arg.Name, arg.Description)
	return err
}

const updateTaskStatus = `
UPDATE tasks SET status = $2, updated_at = NOW() WHERE id = $1
`

type UpdateTaskStatusParams struct {
	ID     uuid.UUID
	Status string
}

func (q *Queries) UpdateTaskStatus(ctx context.Context, arg UpdateTaskStatusParams) error {
	_, err := q.db.Exec(ctx, updateTaskStatus, arg.ID, arg.Status)
	return err
}

const deleteTask = `
DELETE FROM tasks WHERE id = $1
`

func (q *Queries) DeleteTask(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteTask, id)
	return err
}

const deleteTasksByProject = `
DELETE FROM tasks WHERE project_id = $1
`

func (q *Queries) DeleteTasksByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteTasksByProject, projectID)
	return err
}

const createTaskStatusEvent = `
INSERT INTO task_status_events (id, task_id, user_id, status, created_at)
VALUES ($1, $2, $3, $4, NOW())
`

type CreateTaskStatusEventParams struct {
	ID     uuid.UUID
	TaskID uuid.UUID
	UserID uuid.UUID
	Status string
}

func (q *Queries) CreateTaskStatusEvent(ctx context.Context, arg CreateTaskStatusEventParams) error {
	_, err := q.db.Exec(ctx, createTaskStatusEvent,
		arg.ID, arg.TaskID, arg.UserID, arg.Status)
	return err
}

const listTaskStatusEvents = `
SELECT e.id, e.task_id, e.user_id, u.name, u.email, e.status, e.created_at
FROM task_status_events e
JOIN users u ON u.id = e.user_id
WHERE e.task_id = $1
ORDER BY e.created_at
`

type ListTaskStatusEventsRow struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	UserID    uuid.UUID
	UserName  string
	UserEmail string
	Status    string
	CreatedAt time.Time
}

func (q *Queries) ListTaskStatusEvents(ctx context.Context, taskID uuid.UUID) ([]ListTaskStatusEventsRow, error) {
	rows, err := q.db.Query(ctx, listTaskStatusEvents, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListTaskStatusEventsRow
	for rows.Next() {
		var r ListTaskStatusEventsRow
		if err := rows.Scan(&r.ID, &r.TaskID, &r.UserID, &r.UserName, &r.UserEmail, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const deleteStatusEventsByTask = `
DELETE FROM task_status_events WHERE task_id = $1
`

func (q *Queries) DeleteStatusEventsByTask(ctx context.Context, taskID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteStatusEventsByTask, taskID)
	return err
}

const deleteStatusEventsByProject = `
DELETE FROM task_status_events
WHERE task_id IN (SELECT id FROM tasks WHERE project_id = $1)
`

func (q *Queries) DeleteStatusEventsByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteStatusEventsByProject, projectID)
	return err
}
