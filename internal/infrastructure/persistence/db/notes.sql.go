package db

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const createNote = `
INSERT INTO notes (id, task_id, created_by, content, created_at)
VALUES ($1, $2, $3, $4, NOW())
`

type CreateNoteParams struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	CreatedBy uuid.UUID
	Content   string
}

func (q *Queries) CreateNote(ctx context.Context, arg CreateNoteParams) error {
	_, err := q.db.Exec(ctx, createNote, arg.ID, arg.TaskID, arg.CreatedBy, arg.Content)
	return err
}

const listNotesByTask = `
SELECT n.id, n.task_id, n.created_by, u.name, u.email, n.content, n.created_at
FROM notes n
JOIN users u ON u.id = n.created_by
WHERE n.task_id = $1
ORDER BY n.created_at
`

type ListNotesByTaskRow struct {
	ID          uuid.UUID
	TaskID      uuid.UUID
	CreatedBy   uuid.UUID
	AuthorName  string
	AuthorEmail string
	Content     string
	CreatedAt   time.Time
}

func (q *Queries) ListNotesByTask(ctx context.Context, taskID uuid.UUID) ([]ListNotesByTaskRow, error) {
	rows, err := q.db.Query(ctx, listNotesByTask, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListNotesByTaskRow
	for rows.Next() {
		var r ListNotesByTaskRow
		if err := rows.Scan(&r.ID, &r.TaskID, &r.CreatedBy, &r.AuthorName, &r.AuthorEmail, &r.Content, &r.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const getNoteByID = `
SELECT n.id, n.task_id, n.created_by, u.name, u.email, n.content, n.created_at
FROM notes n
JOIN users u ON u.id = n.created_by
WHERE n.id = $1
`

type GetNoteByIDRow struct {
	ID          uuid.UUID
	TaskID      uuid.UUID
	CreatedBy   uuid.UUID
	AuthorName  string
	AuthorEmail string
	Content     string
	CreatedAt   time.Time
}

func (q *Queries) GetNoteByID(ctx context.Context, id uuid.UUID) (GetNoteByIDRow, error) {
	row := q.db.QueryRow(ctx, getNoteByID, id)
	var r GetNoteByIDRow
	err := row.Scan(&r.ID, &r.TaskID, &r.CreatedBy, &r.AuthorName, &r.AuthorEmail, &r.Content, &r.CreatedAt)
	return r, err
}

const deleteNote = `
DELETE FROM notes WHERE id = $1
`

func (q *Queries) DeleteNote(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteNote, id)
	return err
}

const deleteNotesByTask = `
DELETE FROM notes WHERE task_id = $1
`

func (q *Queries) DeleteNotesByTask(ctx context.Context, taskID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteNotesByTask, taskID)
	return err
}

const deleteNotesByProject = `
DELETE FROM notes
WHERE task_id IN (SELECT id FROM tasks WHERE project_id = $1)
`

func (q *Queries) DeleteNotesByProject(ctx context.Context, projectID uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteNotesByProject, projectID)
	return err
}
