package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/db"
)

// ProjectRepository implements ports.ProjectRepository. Delete runs the full
// cascade (notes, status history, tasks, memberships, project) in one
// transaction so a failed step leaves nothing orphaned.
type ProjectRepository struct {
	q    *db.Queries
	pool TxBeginner
}

func NewProjectRepository(q *db.Queries, pool TxBeginner) *ProjectRepository {
	return &ProjectRepository{q: q, pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.q.CreateProject(ctx, db.CreateProjectParams{
		ID:          project.ID.UUID,
		Name:        project.Name,
		ClientName:  project.ClientName,
		Description: project.Description,
		ManagerID:   project.ManagerID.UUID,
	})
}

func (r *ProjectRepository) ListForUser(ctx context.Context, userID domain.UserID) ([]*domain.Project, error) {
	rows, err := r.q.ListProjectsForUser(ctx, userID.UUID)
	if err != nil {
		return nil, err
	}
	projects := make([]*domain.Project, 0, len(rows))
	for _, p := range rows {
		memberIDs, err := r.q.ListProjectMemberIDs(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		projects = append(projects, dbProjectToDomain(p, memberIDs))
	}
	return projects, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	p, err := r.q.GetProjectByID(ctx, projectID.UUID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	memberIDs, err := r.q.ListProjectMemberIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return dbProjectToDomain(p, memberIDs), nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.q.UpdateProject(ctx, db.UpdateProjectParams{
		ID:          project.ID.UUID,
		Name:        project.Name,
		ClientName:  project.ClientName,
		Description: project.Description,
	})
}

func (r *ProjectRepository) Delete(ctx context.Context, projectID domain.ProjectID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	qtx := r.q.WithTx(tx)
	if err := qtx.DeleteNotesByProject(ctx, projectID.UUID); err != nil {
		return err
	}
	if err := qtx.DeleteStatusEventsByProject(ctx, projectID.UUID); err != nil {
		return err
	}
	if err := qtx.DeleteTasksByProject(ctx, projectID.UUID); err != nil {
		return err
	}
	if err := qtx.DeleteProject(ctx, projectID.UUID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProjectRepository) AddMember(ctx context.Context, projectID domain.ProjectID, userID domain.UserID) error {
	return r.q.AddProjectMember(ctx, db.AddProjectMemberParams{
		ProjectID: projectID.UUID,
		UserID:    userID.UUID,
	})
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID domain.ProjectID, userID domain.UserID) error {
	return r.q.RemoveProjectMember(ctx, db.RemoveProjectMemberParams{
		ProjectID: projectID.UUID,
		UserID:    userID.UUID,
	})
}

func (r *ProjectRepository) ListMembers(ctx context.Context, projectID domain.ProjectID) ([]domain.UserRef, error) {
	rows, err := r.q.ListProjectMembers(ctx, projectID.UUID)
	if err != nil {
		return nil, err
	}
	members := make([]domain.UserRef, 0, len(rows))
	for _, m := range rows {
		members = append(members, domain.UserRef{
			ID:    domain.NewUserID(m.ID),
			Name:  m.Name,
			Email: m.Email,
		})
	}
	return members, nil
}

func dbProjectToDomain(p db.Project, memberIDs []uuid.UUID) *domain.Project {
	team := make([]domain.UserID, 0, len(memberIDs))
	for _, id := range memberIDs {
		team = append(team, domain.NewUserID(id))
	}
	return &domain.Project{
		ID:          domain.NewProjectID(p.ID),
		Name:        p.Name,
		ClientName:  p.ClientName,
		Description: p.Description,
		ManagerID:   domain.NewUserID(p.ManagerID),
		Team:        team,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// Ensure ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)
