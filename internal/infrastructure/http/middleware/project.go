package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/application/ports"
	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

// ProjectResolver loads the project named by the {projectId} path segment and
// puts it in context. Unknown ids terminate the pipeline with 404.
type ProjectResolver struct {
	projects ports.ProjectRepository
}

func NewProjectResolver(projects ports.ProjectRepository) *ProjectResolver {
	return &ProjectResolver{projects: projects}
}

func (m *ProjectResolver) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "projectId"))
		if err != nil {
			writeErr(w, http.StatusBadRequest, "invalid project id")
			return
		}
		project, err := m.projects.GetByID(r.Context(), domain.NewProjectID(id))
		if err != nil {
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		if project == nil {
			writeErr(w, http.StatusNotFound, "project not found")
			return
		}
		ctx := WithProject(r.Context(), project)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireMembership rejects users who are neither the project's manager nor
// on its team.
func RequireMembership(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		project := ProjectFromContext(r.Context())
		if user == nil || project == nil {
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !project.IsMember(user.ID) {
			writeErr(w, http.StatusForbidden, "invalid action")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireManager rejects everyone but the project's manager. Runs after
// SessionValidator and ProjectResolver.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFromContext(r.Context())
		project := ProjectFromContext(r.Context())
		if user == nil || project == nil {
			writeErr(w, http.StatusInternalServerError, "internal error")
			return
		}
		if !project.IsManager(user.ID) {
			writeErr(w, http.StatusForbidden, "invalid action")
			return
		}
		next.ServeHTTP(w, r)
	})
}
