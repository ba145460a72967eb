package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

type stubProjects struct {
	project *domain.Project
}

func (s stubProjects) Create(ctx context.Context, project *domain.Project) error { return nil }

func (s stubProjects) ListForUser(ctx context.Context, userID domain.UserID) ([]*domain.Project, error) {
	return nil, nil
}

func (s stubProjects) GetByID(ctx context.Context, projectID domain.ProjectID) (*domain.Project, error) {
	if s.project != nil && s.project.ID == projectID {
		return s.project, nil
	}
	return nil, nil
}

func (s stubProjects) Update(ctx context.Context, project *domain.Project) error { return nil }

func (s stubProjects) Delete(ctx context.Context, projectID domain.ProjectID) error { return nil }

func (s stubProjects) AddMember(ctx context.Context, projectID domain.ProjectID, userID domain.UserID) error {
	return nil
}

func (s stubProjects) RemoveMember(ctx context.Context, projectID domain.ProjectID, userID domain.UserID) error {
	return nil
}

func (s stubProjects) ListMembers(ctx context.Context, projectID domain.ProjectID) ([]domain.UserRef, error) {
	return nil, nil
}

type stubTasks struct {
	task *domain.Task
}

func (s stubTasks) Create(ctx context.Context, task *domain.Task) error { return nil }

func (s stubTasks) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	return nil, nil
}

func (s stubTasks) GetByID(ctx context.Context, taskID domain.TaskID) (*domain.Task, error) {
	if s.task != nil && s.task.ID == taskID {
		return s.task, nil
	}
	return nil, nil
}

func (s stubTasks) Update(ctx context.Context, task *domain.Task) error { return nil }

func (s stubTasks) UpdateStatus(ctx context.Context, taskID domain.TaskID, userID domain.UserID, status domain.TaskStatus) error {
	return nil
}

func (s stubTasks) Delete(ctx context.Context, taskID domain.TaskID) error { return nil }

func (s stubTasks) ListStatusEvents(ctx context.Context, taskID domain.TaskID) ([]*domain.TaskStatusEvent, error) {
	return nil, nil
}

func serveProject(resolver *ProjectResolver, path string, extra ...func(http.Handler) http.Handler) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Route("/projects/{projectId}", func(r chi.Router) {
		r.Use(resolver.Handler)
		for _, mw := range extra {
			r.Use(mw)
		}
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestProjectResolverInvalidID(t *testing.T) {
	resolver := NewProjectResolver(stubProjects{})
	rec := serveProject(resolver, "/projects/not-a-uuid")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("got %d, want 400", rec.Code)
	}
}

func TestProjectResolverUnknownProject(t *testing.T) {
	resolver := NewProjectResolver(stubProjects{})
	rec := serveProject(resolver, "/projects/"+uuid.NewString())
	if rec.Code != http.StatusNotFound {
		t.Errorf("got %d, want 404", rec.Code)
	}
}

func TestProjectResolverFound(t *testing.T) {
	project := &domain.Project{ID: domain.NewProjectID(uuid.New())}
	resolver := NewProjectResolver(stubProjects{project: project})
	rec := serveProject(resolver, "/projects/"+project.ID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("got %d, want 200", rec.Code)
	}
}

func withUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

func TestRequireManager(t *testing.T) {
	manager := &domain.User{ID: domain.NewUserID(uuid.New())}
	collaborator := &domain.User{ID: domain.NewUserID(uuid.New())}
	project := &domain.Project{
		ID:        domain.NewProjectID(uuid.New()),
		ManagerID: manager.ID,
		Team:      []domain.UserID{collaborator.ID},
	}
	resolver := NewProjectResolver(stubProjects{project: project})
	path := "/projects/" + project.ID.String()

	rec := serveProject(resolver, path, withUser(manager), RequireManager)
	if rec.Code != http.StatusOK {
		t.Errorf("manager: got %d, want 200", rec.Code)
	}

	rec = serveProject(resolver, path, withUser(collaborator), RequireManager)
	if rec.Code != http.StatusForbidden {
		t.Errorf("collaborator: got %d, want 403", rec.Code)
	}
}

func TestRequireMembership(t *testing.T) {
	collaborator := &domain.User{ID: domain.NewUserID(uuid.New())}
	stranger := &domain.User{ID: domain.NewUserID(uuid.New())}
	project := &domain.Project{
		ID:        domain.NewProjectID(uuid.New()),
		ManagerID: domain.NewUserID(uuid.New()),
		Team:      []domain.UserID{collaborator.ID},
	}
	resolver := NewProjectResolver(stubProjects{project: project})
	path := "/projects/" + project.ID.String()

	rec := serveProject(resolver, path, withUser(collaborator), RequireMembership)
	if rec.Code != http.StatusOK {
		t.Errorf("collaborator: got %d, want 200", rec.Code)
	}

	rec = serveProject(resolver, path, withUser(stranger), RequireMembership)
	if rec.Code != http.StatusForbidden {
		t.Errorf("stranger: got %d, want 403", rec.Code)
	}
}

func TestTaskResolver(t *testing.T) {
	project := &domain.Project{ID: domain.NewProjectID(uuid.New())}
	otherProject := &domain.Project{ID: domain.NewProjectID(uuid.New())}
	task := &domain.Task{
		ID:        domain.NewTaskID(uuid.New()),
		ProjectID: project.ID,
		Status:    domain.StatusPending,
	}

	projects := stubProjects{project: project}
	serve := func(projectResolver *ProjectResolver, taskID string) *httptest.ResponseRecorder {
		r := chi.NewRouter()
		r.Route("/projects/{projectId}/tasks/{taskId}", func(r chi.Router) {
			r.Use(projectResolver.Handler)
			r.Use(NewTaskResolver(stubTasks{task: task}).Handler)
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				if TaskFromContext(req.Context()) == nil {
					t.Error("task should be in context")
				}
				w.WriteHeader(http.StatusOK)
			})
		})
		rec := httptest.NewRecorder()
		path := "/projects/" + project.ID.String() + "/tasks/" + taskID
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	rec := serve(NewProjectResolver(projects), task.ID.String())
	if rec.Code != http.StatusOK {
		t.Errorf("got %d, want 200", rec.Code)
	}

	rec = serve(NewProjectResolver(projects), uuid.NewString())
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown task: got %d, want 404", rec.Code)
	}

	// Task addressed under a project it does not belong to.
	task.ProjectID = otherProject.ID
	rec = serve(NewProjectResolver(projects), task.ID.String())
	if rec.Code != http.StatusForbidden {
		t.Errorf("foreign task: got %d, want 403", rec.Code)
	}
	task.ProjectID = project.ID
}
