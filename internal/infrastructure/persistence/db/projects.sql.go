package db

import (
	"context"

	"github.com/google/uuid"
)

const createProject = `
INSERT INTO projects (id, name, client_name, description, manager_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
`

type CreateProjectParams struct {
	ID          uuid.UUID
	Name        string
	ClientName  string
	Description string
	ManagerID   uuid.UUID
}

func (q *Queries) CreateProject(ctx context.Context, arg CreateProjectParams) error {
	_, err := q.db.Exec(ctx, createProject,
		arg.ID, arg.Name, arg.ClientName, arg.Description, arg.ManagerID)
	return err
}

const getProjectByID = `
SELECT id, name, client_name, description, manager_id, created_at, updated_at
FROM projects WHERE id = $1
`

func (q *Queries) GetProjectByID(ctx context.Context, id uuid.UUID) (Project, error) {
	row := q.db.QueryRow(ctx, getProjectByID, id)
	var p Project
	err := row.Scan(&p.ID, &p.Name, &p.ClientName, &p.Description, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

const listProjectsForUser = `
SELECT p.id, p.name, p.client_name, p.description, p.manager_id, p.created_at, p.updated_at
FROM projects p
WHERE p.manager_id = $1
   OR EXISTS (SELECT 1 FROM project_members m WHERE m.project_id = p.id AND m.user_id = $1)
ORDER BY p.created_at
`

func (q *Queries) ListProjectsForUser(ctx context.Context, userID uuid.UUID) ([]Project, error) {
	rows, err := q.db.Query(ctx, listProjectsForUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientName, &p.Description, &p.ManagerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updateProject = `
UPDATE projects SET name = $2, client_name = $3, description = $4, updated_at = NOW()
WHERE id = $1
`

type UpdateProjectParams struct {
	ID          uuid.UUID
	Name        string
	ClientName  string
	Description string
}

func (q *Queries) UpdateProject(ctx context.Context, arg UpdateProjectParams) error {
	_, err := q.db.Exec(ctx, updateProject, arg.ID, arg.Name, arg.ClientName, arg.Description)
	return err
}

const deleteProject = `
DELETE FROM projects WHERE id = $1
`

func (q *Queries) DeleteProject(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.Exec(ctx, deleteProject, id)
	return err
}

const addProjectMember = `
INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING
`

type AddProjectMemberParams struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
}

func (q *Queries) AddProjectMember(ctx context.Context, arg AddProjectMemberParams) error {
	_, err := q.db.Exec(ctx, addProjectMember, arg.ProjectID, arg.UserID)
	return err
}

const removeProjectMember = `
DELETE FROM project_members WHERE project_id = $1 AND user_id = $2
`

type RemoveProjectMemberParams struct {
	ProjectID uuid.UUID
	UserID    uuid.UUID
}

func (q *Queries) RemoveProjectMember(ctx context.Context, arg RemoveProjectMemberParams) error {
	_, err := q.db.Exec(ctx, removeProjectMember, arg.ProjectID, arg.UserID)
	return err
}

const listProjectMemberIDs = `
SELECT user_id FROM project_members WHERE project_id = $1
`

func (q *Queries) ListProjectMemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := q.db.Query(ctx, listProjectMemberIDs, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		items = append(items, id)
	}
	return items, rows.Err()
}

const listProjectMembers = `
SELECT u.id, u.name, u.email
FROM project_members m
JOIN users u ON u.id = m.user_id
WHERE m.project_id = $1
ORDER BY u.name
`

type ListProjectMembersRow struct {
	ID    uuid.UUID
	Name  string
	Email string
}

func (q *Queries) ListProjectMembers(ctx context.Context, projectID uuid.UUID) ([]ListProjectMembersRow, error) {
	rows, err := q.db.Query(ctx, listProjectMembers, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListProjectMembersRow
	for rows.Next() {
		var r ListProjectMembersRow
		if err := rows.Scan(&r.ID, &r.Name, &r.Email); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
