package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/db"
)

// TaskRepository implements ports.TaskRepository. Status changes write the
// task row and its history event in one transaction; Delete cascades to the
// task's notes and history the same way.
type TaskRepository struct {
	q    *db.Queries
	pool TxBeginner
}

func NewTaskRepository(q *db.Queries, pool TxBeginner) *TaskRepository {
	return &TaskRepository{q: q, pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	return r.q.CreateTask(ctx, db.CreateTaskParams{
		ID:          task.ID.UUID,
		ProjectID:   task.ProjectID.UUID,
		Name:        task.Name,
		Description: task.Description,
		Status:      string(task.Status),
	})
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	rows, err := r.q.ListTasksByProject(ctx, projectID.UUID)
	if err != nil {
		return nil, err
	}
	tasks := make([]*domain.Task, 0, len(rows))
	for _, t := range rows {
		tasks = append(tasks, dbTaskToDomain(t))
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID domain.TaskID) (*domain.Task, error) {
	t, err := r.q.GetTaskByID(ctx, taskID.UUID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbTaskToDomain(t), nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	return r.q.UpdateTask(ctx, db.UpdateTaskParams{
		ID:          task.ID.UUID,
		Name:        task.Name,
		Description: task.Description,
	})
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID domain.TaskID, userID domain.UserID, status domain.TaskStatus) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	qtx := r.q.WithTx(tx)
	if err := qtx.UpdateTaskStatus(ctx, db.UpdateTaskStatusParams{
		ID:     taskID.UUID,
		Status: string(status),
	}); err != nil {
		return err
	}
	if err := qtx.CreateTaskStatusEvent(ctx, db.CreateTaskStatusEventParams{
		ID:     uuid.New(),
		TaskID: taskID.UUID,
		UserID: userID.UUID,
		Status: string(status),
	}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TaskRepository) Delete(ctx context.Context, taskID domain.TaskID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	qtx := r.q.WithTx(tx)
	if err := qtx.DeleteNotesByTask(ctx, taskID.UUID); err != nil {
		return err
	}
	if err := qtx.DeleteStatusEventsByTask(ctx, taskID.UUID); err != nil {
		return err
	}
	if err := qtx.DeleteTask(ctx, taskID.UUID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TaskRepository) ListStatusEvents(ctx context.Context, taskID domain.TaskID) ([]*domain.TaskStatusEvent, error) {
	rows, err := r.q.ListTaskStatusEvents(ctx, taskID.UUID)
	if err != nil {
		return nil, err
	}
	events := make([]*domain.TaskStatusEvent, 0, len(rows))
	for _, e := range rows {
		events = append(events, &domain.TaskStatusEvent{
			ID:     e.ID,
			TaskID: domain.NewTaskID(e.TaskID),
			User: domain.UserRef{
				ID:    domain.NewUserID(e.UserID),
				Name:  e.UserName,
				Email: e.UserEmail,
			},
			Status:    domain.TaskStatus(e.Status),
			CreatedAt: e.CreatedAt,
		})
	}
	return events, nil
}

func dbTaskToDomain(t db.Task) *domain.Task {
	return &domain.Task{
		ID:          domain.NewTaskID(t.ID),
		ProjectID:   domain.NewProjectID(t.ProjectID),
		Name:        t.Name,
		Description: t.Description,
		Status:      domain.TaskStatus(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)
