package handlers

import (
	"time"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

// JSON views returned by the API. IDs are serialized as canonical uuid
// strings; trimmed user identity (id, name, email) is embedded where the
// client needs attribution.

type userView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserView(u *domain.User) userView {
	return userView{ID: u.ID.String(), Name: u.Name, Email: u.Email}
}

func newUserRefView(ref domain.UserRef) userView {
	return userView{ID: ref.ID.String(), Name: ref.Name, Email: ref.Email}
}

type projectView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ClientName  string    `json:"client_name"`
	Description string    `json:"description"`
	Manager     string    `json:"manager"`
	Team        []string  `json:"team"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProjectView(p *domain.Project) projectView {
	team := make([]string, 0, len(p.Team))
	for _, id := range p.Team {
		team = append(team, id.String())
	}
	return projectView{
		ID:          p.ID.String(),
		Name:        p.Name,
		ClientName:  p.ClientName,
		Description: p.Description,
		Manager:     p.ManagerID.String(),
		Team:        team,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

type projectDetailView struct {
	projectView
	Tasks []taskView `json:"tasks"`
}

type taskView struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskView(t *domain.Task) taskView {
	return taskView{
		ID:          t.ID.String(),
		ProjectID:   t.ProjectID.String(),
		Name:        t.Name,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskViews(tasks []*domain.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}
	return views
}

type statusEventView struct {
	ID        string    `json:"id"`
	User      userView  `json:"user"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type taskDetailView struct {
	taskView
	CompletedBy []statusEventView `json:"completed_by"`
	Notes       []noteView        `json:"notes"`
}

type noteView struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedBy userView  `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func newNoteView(n *domain.Note) noteView {
	return noteView{
		ID:        n.ID.String(),
		Content:   n.Content,
		CreatedBy: newUserRefView(n.CreatedBy),
		CreatedAt: n.CreatedAt,
	}
}
