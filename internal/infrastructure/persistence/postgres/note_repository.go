package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
	"github.com/DiegoRoNa/uptask-api/internal/infrastructure/persistence/db"
)

type NoteRepository struct {
	q *db.Queries
}

func NewNoteRepository(q *db.Queries) *NoteRepository {
	return &NoteRepository{q: q}
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) error {
	return r.q.CreateNote(ctx, db.CreateNoteParams{
		ID:        note.ID.UUID,
		TaskID:    note.TaskID.UUID,
		CreatedBy: note.CreatedBy.ID.UUID,
		Content:   note.Content,
	})
}

func (r *NoteRepository) ListByTask(ctx context.Context, taskID domain.TaskID) ([]*domain.Note, error) {
	rows, err := r.q.ListNotesByTask(ctx, taskID.UUID)
	if err != nil {
		return nil, err
	}
	notes := make([]*domain.Note, 0, len(rows))
	for _, n := range rows {
		notes = append(notes, &domain.Note{
			ID:     domain.NewNoteID(n.ID),
			TaskID: domain.NewTaskID(n.TaskID),
			CreatedBy: domain.UserRef{
				ID:    domain.NewUserID(n.CreatedBy),
				Name:  n.AuthorName,
				Email: n.AuthorEmail,
			},
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
		})
	}
	return notes, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, noteID domain.NoteID) (*domain.Note, error) {
	n, err := r.q.GetNoteByID(ctx, noteID.UUID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &domain.Note{
		ID:     domain.NewNoteID(n.ID),
		TaskID: domain.NewTaskID(n.TaskID),
		CreatedBy: domain.UserRef{
			ID:    domain.NewUserID(n.CreatedBy),
			Name:  n.AuthorName,
			Email: n.AuthorEmail,
		},
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}, nil
}

func (r *NoteRepository) Delete(ctx context.Context, noteID domain.NoteID) error {
	return r.q.DeleteNote(ctx, noteID.UUID)
}

// Ensure NoteRepository implements ports.NoteRepository.
var _ ports.NoteRepository = (*NoteRepository)(nil)
